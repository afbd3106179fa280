// Package usecase contains business logic for user record operations
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sruthi7877/user-management-api/domain"
	"github.com/sruthi7877/user-management-api/domain/model"
	"github.com/sruthi7877/user-management-api/domain/repository"
	"github.com/sruthi7877/user-management-api/domain/validation"
	"github.com/sruthi7877/user-management-api/pkg/logger"
)

// CreateUserInput carries the four required fields for user creation.
type CreateUserInput struct {
	FullName  string
	MobNum    string
	PanNum    string
	ManagerID string
}

// GetUsersInput carries the optional lookup filters. Empty fields are
// treated as absent.
type GetUsersInput struct {
	UserID    string
	MobNum    string
	ManagerID string
}

// DeleteUserInput identifies the user to delete. At least one field is
// required; UserID takes precedence when both are given.
type DeleteUserInput struct {
	UserID string
	MobNum string
}

// UpdateData is the optional field set applied to every target of a bulk
// update. Nil pointers mean "leave unchanged".
type UpdateData struct {
	FullName  *string
	MobNum    *string
	PanNum    *string
	ManagerID *string
}

func (u UpdateData) isEmpty() bool {
	return u.FullName == nil && u.MobNum == nil && u.PanNum == nil && u.ManagerID == nil
}

// managerOnly reports whether manager_id is the single present field, which
// routes the update through the reassignment protocol.
func (u UpdateData) managerOnly() bool {
	return u.ManagerID != nil && u.FullName == nil && u.MobNum == nil && u.PanNum == nil
}

// UserUseCase defines the orchestration surface over the user repository.
// Every operation validates its input before touching storage.
type UserUseCase interface {
	// CreateUser validates all fields, checks the manager is active,
	// generates an identifier and inserts the user. Returns the stored row
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	// GetUsers validates and normalizes the provided filters, then lists
	// matching active users (AND semantics)
	GetUsers(ctx context.Context, in GetUsersInput) ([]*model.User, error)
	// DeleteUser hard-deletes by user_id or mob_num
	DeleteUser(ctx context.Context, in DeleteUserInput) error
	// BulkUpdateUsers applies one update set to every target id. Validation
	// is all-or-nothing and happens before any write; execution is
	// per-target and sequential, so a later target's failure does not undo
	// an earlier target's success
	BulkUpdateUsers(ctx context.Context, userIDs []string, update UpdateData) error
}

// EventPublisher is the slice of the Kafka client the usecase needs.
type EventPublisher interface {
	Produce(ctx context.Context, topic string, value []byte) error
}

// userUseCase implements the UserUseCase interface
type userUseCase struct {
	userRepo    repository.User
	managerRepo repository.Manager
	events      EventPublisher
	eventsTopic string
	logger      logger.LoggerInterface
}

// NewUserUseCase creates a new instance of userUseCase
func NewUserUseCase(userRepo repository.User, managerRepo repository.Manager, events EventPublisher, eventsTopic string, appLogger logger.LoggerInterface) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		managerRepo: managerRepo,
		events:      events,
		eventsTopic: eventsTopic,
		logger:      appLogger,
	}
}

// requireActiveManager fails with ErrManagerNotActive when the referenced
// manager is absent or inactive.
func (uc *userUseCase) requireActiveManager(ctx context.Context, managerID string) error {
	active, err := uc.managerRepo.IsActive(ctx, managerID)
	if err != nil {
		return fmt.Errorf("error checking manager: %w", err)
	}
	if !active {
		uc.logger.WarnContext(ctx, "Manager not active or does not exist", "manager_id", managerID)
		return domain.ErrManagerNotActive
	}
	return nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	uc.logger.InfoContext(ctx, "Creating user in usecase", "manager_id", in.ManagerID)

	if in.FullName == "" || in.MobNum == "" || in.PanNum == "" || in.ManagerID == "" {
		return nil, domain.NewValidationError("missing required keys: full_name, mob_num, pan_num and manager_id are required")
	}
	if !validation.ValidateFullName(in.FullName) {
		return nil, domain.NewValidationError("invalid full_name")
	}
	if !validation.ValidateMobile(in.MobNum) {
		return nil, domain.NewValidationError("invalid mob_num")
	}
	if !validation.ValidatePAN(in.PanNum) {
		return nil, domain.NewValidationError("invalid pan_num")
	}
	if !validation.ValidateUUID(in.ManagerID) {
		return nil, domain.NewValidationError("invalid manager_id")
	}

	if err := uc.requireActiveManager(ctx, in.ManagerID); err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		FullName:  in.FullName,
		MobNum:    validation.NormalizeMobile(in.MobNum),
		PanNum:    validation.NormalizePAN(in.PanNum),
		ManagerID: in.ManagerID,
		IsActive:  true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, userEvent{Event: EventUserCreated, UserID: user.UserID, ManagerID: user.ManagerID})
	uc.logger.InfoContext(ctx, "User created successfully in usecase", "user_id", user.UserID)
	return user, nil
}

func (uc *userUseCase) GetUsers(ctx context.Context, in GetUsersInput) ([]*model.User, error) {
	if in.UserID != "" && !validation.ValidateUUID(in.UserID) {
		return nil, domain.NewValidationError("invalid user_id filter")
	}
	if in.MobNum != "" && !validation.ValidateMobile(in.MobNum) {
		return nil, domain.NewValidationError("invalid mob_num filter")
	}
	if in.ManagerID != "" && !validation.ValidateUUID(in.ManagerID) {
		return nil, domain.NewValidationError("invalid manager_id filter")
	}

	filter := model.UserFilter{
		UserID:    in.UserID,
		ManagerID: in.ManagerID,
	}
	if in.MobNum != "" {
		filter.MobNum = validation.NormalizeMobile(in.MobNum)
	}

	return uc.userRepo.Find(ctx, filter)
}

func (uc *userUseCase) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	if in.UserID == "" && in.MobNum == "" {
		return domain.ErrMissingDeleteKey
	}
	if in.UserID != "" && !validation.ValidateUUID(in.UserID) {
		return domain.NewValidationError("invalid user_id")
	}
	if in.MobNum != "" && !validation.ValidateMobile(in.MobNum) {
		return domain.NewValidationError("invalid mob_num")
	}

	filter := model.UserFilter{}
	if in.UserID != "" {
		filter.UserID = in.UserID
	} else {
		filter.MobNum = validation.NormalizeMobile(in.MobNum)
	}

	if _, err := uc.userRepo.Delete(ctx, filter); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	uc.publishEvent(ctx, userEvent{Event: EventUserDeleted, UserID: in.UserID, MobNum: filter.MobNum})
	uc.logger.InfoContext(ctx, "User deleted successfully in usecase", "user_id", in.UserID, "mob_num", filter.MobNum)
	return nil
}

func (uc *userUseCase) BulkUpdateUsers(ctx context.Context, userIDs []string, update UpdateData) error {
	uc.logger.InfoContext(ctx, "Bulk updating users in usecase", "targets", len(userIDs))

	// Validation is all-or-nothing: nothing below writes until every target
	// id and every present field has passed.
	if len(userIDs) == 0 {
		return domain.NewValidationError("user_ids must be a non-empty list")
	}
	if update.isEmpty() {
		return domain.ErrNoUpdateData
	}
	for _, id := range userIDs {
		if !validation.ValidateUUID(id) {
			return domain.NewValidationError("invalid user_id: " + id)
		}
	}
	if update.FullName != nil && !validation.ValidateFullName(*update.FullName) {
		return domain.NewValidationError("invalid full_name")
	}
	if update.MobNum != nil && !validation.ValidateMobile(*update.MobNum) {
		return domain.NewValidationError("invalid mob_num")
	}
	if update.PanNum != nil && !validation.ValidatePAN(*update.PanNum) {
		return domain.NewValidationError("invalid pan_num")
	}
	if update.ManagerID != nil {
		if !validation.ValidateUUID(*update.ManagerID) {
			return domain.NewValidationError("invalid manager_id")
		}
		// Mixing a manager change with other field changes is unsupported;
		// rejected here, before any target has been written.
		if !update.managerOnly() {
			return domain.ErrManagerUpdateMix
		}
		if err := uc.requireActiveManager(ctx, *update.ManagerID); err != nil {
			return err
		}
		return uc.reassignManagers(ctx, userIDs, *update.ManagerID)
	}

	return uc.updateFields(ctx, userIDs, update)
}

// reassignManagers applies the reassignment protocol to each target in turn.
func (uc *userUseCase) reassignManagers(ctx context.Context, userIDs []string, managerID string) error {
	for _, id := range userIDs {
		newID, err := uc.userRepo.ReassignManager(ctx, id, managerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("user %s not found or already inactive", id)
			}
			return fmt.Errorf("reassigning manager for user %s: %w", id, err)
		}
		uc.publishEvent(ctx, userEvent{Event: EventManagerReassigned, UserID: id, NewUserID: newID, ManagerID: managerID})
		uc.logger.InfoContext(ctx, "Manager reassigned in usecase", "old_user_id", id, "new_user_id", newID)
	}
	return nil
}

// updateFields applies the non-manager field set to each target in turn.
func (uc *userUseCase) updateFields(ctx context.Context, userIDs []string, update UpdateData) error {
	fields := model.UserUpdate{FullName: update.FullName}
	if update.MobNum != nil {
		normalized := validation.NormalizeMobile(*update.MobNum)
		fields.MobNum = &normalized
	}
	if update.PanNum != nil {
		normalized := validation.NormalizePAN(*update.PanNum)
		fields.PanNum = &normalized
	}

	for _, id := range userIDs {
		if err := uc.userRepo.UpdateFields(ctx, id, fields); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("user %s not found or inactive", id)
			}
			return fmt.Errorf("updating user %s: %w", id, err)
		}
	}
	return nil
}
