package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sruthi7877/user-management-api/pkg/logger"
)

func TestManagerRepository_IsActive(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
	}{
		{name: "active manager", isActive: true},
		{name: "deactivated manager", isActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock := newMockDB(t)
			repo := NewManagerRepository(gormDB, logger.NoOpLogger())

			rows := sqlmock.NewRows([]string{"is_active"}).AddRow(tt.isActive)
			mock.ExpectQuery(`SELECT is_active FROM "managers" WHERE manager_id = \$1`).
				WillReturnRows(rows)

			active, err := repo.IsActive(context.Background(), "f0a4b2d2-33aa-4f5e-a6b5-97c4a32c0a11")
			require.NoError(t, err)
			assert.Equal(t, tt.isActive, active)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManagerRepository_IsActive_Unknown(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewManagerRepository(gormDB, logger.NoOpLogger())

	mock.ExpectQuery(`SELECT is_active FROM "managers" WHERE manager_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}))

	active, err := repo.IsActive(context.Background(), "f0a4b2d2-33aa-4f5e-a6b5-97c4a32c0a11")
	require.NoError(t, err, "An unknown manager is reported as inactive, not as a failure")
	assert.False(t, active)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_IsActive_StorageFailure(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewManagerRepository(gormDB, logger.NoOpLogger())

	mock.ExpectQuery(`SELECT is_active FROM "managers"`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.IsActive(context.Background(), "f0a4b2d2-33aa-4f5e-a6b5-97c4a32c0a11")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
