// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sruthi7877/user-management-api/contracts/userservice"
	"github.com/sruthi7877/user-management-api/domain"
	"github.com/sruthi7877/user-management-api/pkg/api"
	"github.com/sruthi7877/user-management-api/pkg/logger"
	"github.com/sruthi7877/user-management-api/pkg/validator"
	"github.com/sruthi7877/user-management-api/usecase"
)

// UserHandler handles HTTP requests for user record operations. Every
// operation is a POST with a JSON body, mirroring the upstream API surface.
type UserHandler struct {
	// UserUseCase contains business logic for user operations
	UserUseCase usecase.UserUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userUseCase usecase.UserUseCase, appLogger logger.LoggerInterface) *UserHandler {
	return &UserHandler{
		UserUseCase: userUseCase,
		Logger:      appLogger,
		API:         api.New(),
	}
}

// decodeBody decodes the JSON request body into dst. An empty body is
// tolerated (dst keeps its zero value) so filter-less lookups work.
func (h *UserHandler) decodeBody(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.WarnContext(ctx, "Invalid request body", "path", r.URL.Path, "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return false
	}
	return true
}

// handleUserError translates usecase failures into responses. Domain errors
// carry their status code; anything else is a persistence-class failure.
func (h *UserHandler) handleUserError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case http.StatusNotFound:
			h.API.NotFound(ctx, w, appErr.Message)
		case http.StatusBadRequest:
			h.API.BadRequest(ctx, w, appErr.Message)
		default:
			h.API.Error(ctx, w, appErr.Code, &api.Error{
				Code:    "REQUEST_FAILED",
				Message: appErr.Message,
			})
		}
		return
	}
	h.Logger.ErrorContext(ctx, "Unexpected error", "error", err)
	h.API.InternalServerError(ctx, w, err.Error())
}

// validationDetails converts pkg/validator output into response details.
func validationDetails(validationErrors map[string]string) []api.ErrorDetail {
	details := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		details = append(details, api.ErrorDetail{Field: field, Message: message})
	}
	return details
}

// CreateUserHandler handles POST /create_user.
// Returns 200 with {success:true} on success, 400 for invalid or missing
// fields and for an inactive manager, 500 for persistence failures.
func (h *UserHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create user handler called")

	var req userservice.CreateUserRequest
	if !h.decodeBody(ctx, w, r, &req) {
		return
	}

	if validationErrors := validator.ValidateStruct(&req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for user creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, validationDetails(validationErrors))
		return
	}

	user, err := h.UserUseCase.CreateUser(ctx, userservice.CreateUserRequestToInput(&req))
	if err != nil {
		h.handleUserError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "User created successfully in handler", "user_id", user.UserID)
	h.API.Success(ctx, w, map[string]any{
		"success": true,
		"message": "User created successfully",
		"user_id": user.UserID,
	})
}

// GetUsersHandler handles POST /get_users. All filters are optional and an
// empty body lists every active user.
// Returns 200 with {users:[...]}, 400 for invalid filters, 500 otherwise.
func (h *UserHandler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get users handler called")

	var req userservice.GetUsersRequest
	if !h.decodeBody(ctx, w, r, &req) {
		return
	}

	users, err := h.UserUseCase.GetUsers(ctx, userservice.GetUsersRequestToInput(&req))
	if err != nil {
		h.handleUserError(ctx, w, err)
		return
	}

	h.API.Success(ctx, w, userservice.UsersListResponse{
		Users: userservice.UserModelsToResponses(users),
	})
}

// DeleteUserHandler handles POST /delete_user.
// Returns 200 with {success:true}, 400 when neither criterion is provided or
// a criterion is malformed, 404 when no row matched.
func (h *UserHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Delete user handler called")

	var req userservice.DeleteUserRequest
	if !h.decodeBody(ctx, w, r, &req) {
		return
	}

	if err := h.UserUseCase.DeleteUser(ctx, userservice.DeleteUserRequestToInput(&req)); err != nil {
		h.handleUserError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "User deleted successfully in handler", "user_id", req.UserID, "mob_num", req.MobNum)
	h.API.Success(ctx, w, map[string]any{
		"success": true,
		"message": "User deleted successfully",
	})
}

// UpdateUserHandler handles POST /update_user (bulk update).
// Returns 200 with {success:true}, 400 for invalid ids/fields or the
// unsupported manager_id-with-other-fields mix, 500 when a target's write
// fails (earlier targets may already have been updated).
func (h *UserHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update users handler called")

	var req userservice.UpdateUsersRequest
	if !h.decodeBody(ctx, w, r, &req) {
		return
	}

	if validationErrors := validator.ValidateStruct(&req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for bulk update", "errors", validationErrors)
		h.API.ValidationError(ctx, w, validationDetails(validationErrors))
		return
	}

	err := h.UserUseCase.BulkUpdateUsers(ctx, req.UserIDs, userservice.UpdateDataToUsecase(req.UpdateData))
	if err != nil {
		h.handleUserError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Users updated successfully in handler", "targets", len(req.UserIDs))
	h.API.Success(ctx, w, map[string]any{
		"success": true,
		"message": "Users updated successfully",
	})
}
