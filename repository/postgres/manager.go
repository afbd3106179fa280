package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sruthi7877/user-management-api/domain/model"
	"github.com/sruthi7877/user-management-api/domain/repository"
	"github.com/sruthi7877/user-management-api/pkg/logger"
)

// managerRepository implements the Manager repository interface using PostgreSQL
type managerRepository struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewManagerRepository creates a new instance of managerRepository
func NewManagerRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Manager {
	return &managerRepository{
		db:     db,
		logger: logger,
	}
}

// IsActive reports whether the manager exists and is active. Callers cannot
// distinguish "no such manager" from "inactive manager"; both are false.
func (r *managerRepository) IsActive(ctx context.Context, managerID string) (bool, error) {
	var manager model.Manager
	err := r.db.WithContext(ctx).
		Select("is_active").
		Where("manager_id = ?", managerID).
		First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		r.logger.ErrorContext(ctx, "Failed to look up manager", "manager_id", managerID, "error", err)
		return false, fmt.Errorf("failed to look up manager: %w", err)
	}
	return manager.IsActive, nil
}
