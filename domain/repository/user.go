// Package repository defines the interfaces for the data access layer
package repository

import (
	"context"

	"github.com/sruthi7877/user-management-api/domain/model"
)

// User defines the contract for user-related database operations.
// All inputs are assumed validated and normalized by the caller.
type User interface {
	// Create inserts a new active user row
	Create(ctx context.Context, user *model.User) error
	// Find returns all active rows matching every provided filter field;
	// an empty filter returns all active users
	Find(ctx context.Context, filter model.UserFilter) ([]*model.User, error)
	// Delete hard-deletes the row(s) matching exactly one criterion
	// (UserID takes precedence over MobNum), regardless of active flag.
	// Returns domain.ErrNotFound when zero rows were removed and the number
	// of rows removed otherwise
	Delete(ctx context.Context, filter model.UserFilter) (int64, error)
	// UpdateFields updates the provided subset of fields on the active row
	// with the given id, refreshing updated_at. Returns domain.ErrNotFound
	// when no active row matched
	UpdateFields(ctx context.Context, userID string, update model.UserUpdate) error
	// ReassignManager runs the manager reassignment protocol in a single
	// transaction: deactivate the active row, then insert a new active row
	// with a fresh id carrying over name/mobile/PAN and the new manager.
	// Returns the new row's id
	ReassignManager(ctx context.Context, userID, newManagerID string) (string, error)
}

// Manager defines the read-only lookup against manager records.
type Manager interface {
	// IsActive reports whether the manager exists and is active. A missing
	// record is "not active", not an error
	IsActive(ctx context.Context, managerID string) (bool, error)
}
