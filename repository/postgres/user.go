// Package postgres provides PostgreSQL implementations of the repositories
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sruthi7877/user-management-api/domain"
	"github.com/sruthi7877/user-management-api/domain/model"
	"github.com/sruthi7877/user-management-api/domain/repository"
	"github.com/sruthi7877/user-management-api/pkg/logger"
)

// userRepository implements the User repository interface using PostgreSQL
type userRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB, logger logger.LoggerInterface) repository.User {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new active user row.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.logger.InfoContext(ctx, "Creating user", "user_id", user.UserID, "manager_id", user.ManagerID)

	user.IsActive = true
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create user", "user_id", user.UserID, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Find returns all active rows matching every provided filter field.
func (r *userRepository) Find(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	r.logger.InfoContext(ctx, "Finding users", "user_id", filter.UserID, "mob_num", filter.MobNum, "manager_id", filter.ManagerID)

	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.MobNum != "" {
		query = query.Where("mob_num = ?", filter.MobNum)
	}
	if filter.ManagerID != "" {
		query = query.Where("manager_id = ?", filter.ManagerID)
	}

	var users []*model.User
	if err := query.Find(&users).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to find users", "error", err)
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	r.logger.InfoContext(ctx, "Users found", "count", len(users))
	return users, nil
}

// Delete hard-deletes by exactly one criterion; user_id wins when both are
// present. Inactive rows are deleted too.
func (r *userRepository) Delete(ctx context.Context, filter model.UserFilter) (int64, error) {
	query := r.db.WithContext(ctx)
	switch {
	case filter.UserID != "":
		r.logger.InfoContext(ctx, "Deleting user by id", "user_id", filter.UserID)
		query = query.Where("user_id = ?", filter.UserID)
	case filter.MobNum != "":
		r.logger.InfoContext(ctx, "Deleting user by mobile", "mob_num", filter.MobNum)
		query = query.Where("mob_num = ?", filter.MobNum)
	default:
		return 0, domain.ErrMissingDeleteKey
	}

	res := query.Delete(&model.User{})
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to delete user", "error", res.Error)
		return 0, fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "No user rows matched for deletion", "user_id", filter.UserID, "mob_num", filter.MobNum)
		return 0, domain.ErrNotFound
	}

	r.logger.InfoContext(ctx, "User rows deleted", "count", res.RowsAffected)
	return res.RowsAffected, nil
}

// UpdateFields updates the provided subset of fields on the active row with
// the given id. updated_at is always refreshed.
func (r *userRepository) UpdateFields(ctx context.Context, userID string, update model.UserUpdate) error {
	if update.IsEmpty() {
		return domain.ErrNoUpdateData
	}

	values := map[string]any{"updated_at": time.Now().UTC()}
	if update.FullName != nil {
		values["full_name"] = *update.FullName
	}
	if update.MobNum != nil {
		values["mob_num"] = *update.MobNum
	}
	if update.PanNum != nil {
		values["pan_num"] = *update.PanNum
	}
	if update.ManagerID != nil {
		values["manager_id"] = *update.ManagerID
	}

	r.logger.InfoContext(ctx, "Updating user fields", "user_id", userID, "fields", len(values)-1)

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(values)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to update user", "user_id", userID, "error", res.Error)
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.logger.WarnContext(ctx, "User not found or inactive for update", "user_id", userID)
		return domain.ErrNotFound
	}
	return nil
}

// ReassignManager deactivates the current active row for userID and inserts a
// new active row with a fresh id, carrying over full_name/mob_num/pan_num and
// pointing at newManagerID. The deactivate/read/insert sequence runs in one
// transaction so a failure after deactivation restores the original row.
func (r *userRepository) ReassignManager(ctx context.Context, userID, newManagerID string) (string, error) {
	r.logger.InfoContext(ctx, "Reassigning manager", "user_id", userID, "new_manager_id", newManagerID)

	var newID string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
		if res.Error != nil {
			return fmt.Errorf("failed to deactivate user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		var old model.User
		if err := tx.Where("user_id = ?", userID).First(&old).Error; err != nil {
			return fmt.Errorf("failed to read user for reassignment: %w", err)
		}

		next := model.User{
			UserID:    uuid.NewString(),
			FullName:  old.FullName,
			MobNum:    old.MobNum,
			PanNum:    old.PanNum,
			ManagerID: newManagerID,
			IsActive:  true,
		}
		if err := tx.Create(&next).Error; err != nil {
			return fmt.Errorf("failed to insert reassigned user: %w", err)
		}

		newID = next.UserID
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.logger.WarnContext(ctx, "User not found or already inactive for reassignment", "user_id", userID)
		} else {
			r.logger.ErrorContext(ctx, "Manager reassignment failed", "user_id", userID, "error", err)
		}
		return "", err
	}

	r.logger.InfoContext(ctx, "Manager reassigned", "old_user_id", userID, "new_user_id", newID, "manager_id", newManagerID)
	return newID, nil
}
