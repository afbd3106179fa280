// Package userservice contains request and response contracts for the user
// record service
package userservice

import (
	"time"

	"github.com/sruthi7877/user-management-api/domain/model"
	"github.com/sruthi7877/user-management-api/usecase"
)

// CreateUserRequest represents the request payload for creating a new user.
// Field formats (mobile, PAN, UUID) are enforced by the usecase; the tags
// here only gate required-ness and gross shape.
type CreateUserRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	MobNum    string `json:"mob_num" validate:"required"`
	PanNum    string `json:"pan_num" validate:"required"`
	ManagerID string `json:"manager_id" validate:"required"`
}

// GetUsersRequest represents the optional lookup filters; all fields may be
// omitted to list every active user.
type GetUsersRequest struct {
	UserID    string `json:"user_id,omitempty"`
	MobNum    string `json:"mob_num,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

// DeleteUserRequest identifies the user to delete; at least one of the two
// fields must be provided (enforced by the usecase so the error message
// matches the delete semantics).
type DeleteUserRequest struct {
	UserID string `json:"user_id,omitempty"`
	MobNum string `json:"mob_num,omitempty"`
}

// UpdateData is the field set applied identically to every bulk-update
// target. Pointers distinguish "absent" from a provided empty value.
type UpdateData struct {
	FullName  *string `json:"full_name,omitempty"`
	MobNum    *string `json:"mob_num,omitempty"`
	PanNum    *string `json:"pan_num,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}

// UpdateUsersRequest represents the bulk update payload.
type UpdateUsersRequest struct {
	UserIDs    []string   `json:"user_ids" validate:"required,min=1"`
	UpdateData UpdateData `json:"update_data"`
}

// UserResponse represents the response payload for a user
type UserResponse struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	MobNum    string `json:"mob_num"`
	PanNum    string `json:"pan_num"`
	ManagerID string `json:"manager_id"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UsersListResponse wraps the result of a lookup.
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
}

// CreateUserRequestToInput converts CreateUserRequest to a usecase input
func CreateUserRequestToInput(req *CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		FullName:  req.FullName,
		MobNum:    req.MobNum,
		PanNum:    req.PanNum,
		ManagerID: req.ManagerID,
	}
}

// GetUsersRequestToInput converts GetUsersRequest to a usecase input
func GetUsersRequestToInput(req *GetUsersRequest) usecase.GetUsersInput {
	return usecase.GetUsersInput{
		UserID:    req.UserID,
		MobNum:    req.MobNum,
		ManagerID: req.ManagerID,
	}
}

// DeleteUserRequestToInput converts DeleteUserRequest to a usecase input
func DeleteUserRequestToInput(req *DeleteUserRequest) usecase.DeleteUserInput {
	return usecase.DeleteUserInput{
		UserID: req.UserID,
		MobNum: req.MobNum,
	}
}

// UpdateDataToUsecase converts the contract field set to the usecase one
func UpdateDataToUsecase(data UpdateData) usecase.UpdateData {
	return usecase.UpdateData{
		FullName:  data.FullName,
		MobNum:    data.MobNum,
		PanNum:    data.PanNum,
		ManagerID: data.ManagerID,
	}
}

// UserModelToResponse converts model.User to UserResponse
func UserModelToResponse(user *model.User) *UserResponse {
	return &UserResponse{
		UserID:    user.UserID,
		FullName:  user.FullName,
		MobNum:    user.MobNum,
		PanNum:    user.PanNum,
		ManagerID: user.ManagerID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

// UserModelsToResponses converts a slice of model.User to UserResponse values
func UserModelsToResponses(users []*model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserModelToResponse(user)
	}
	return responses
}
