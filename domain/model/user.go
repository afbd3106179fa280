// Package model contains data models for the application
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents one active-or-historical version of a user record.
//
// UserID is NOT a stable long-term key for a person: reassigning a user's
// manager deactivates the current row and inserts a new row with a fresh
// UserID. Callers holding an old id must re-resolve it after a reassignment.
type User struct {
	// UserID is the unique identifier for this version of the user
	UserID string `gorm:"column:user_id;type:char(36);primaryKey" json:"user_id"`
	// FullName is the user's full name
	FullName string `gorm:"column:full_name;not null" json:"full_name"`
	// MobNum is the normalized 10-digit mobile number (not unique)
	MobNum string `gorm:"column:mob_num;type:char(10);not null;index" json:"mob_num"`
	// PanNum is the uppercase PAN (5 letters, 4 digits, 1 letter)
	PanNum string `gorm:"column:pan_num;type:char(10);not null" json:"pan_num"`
	// ManagerID references the manager that was active when the reference was
	// established; a manager's later deactivation does not touch this row
	ManagerID string `gorm:"column:manager_id;type:char(36);not null;index" json:"manager_id"`
	// IsActive marks the single live row of an identity lineage; inactive
	// rows are retained as history and never returned or updated
	IsActive bool `gorm:"column:is_active;not null" json:"is_active"`
	// CreatedAt is the timestamp when the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	// UpdatedAt is refreshed on every mutating update
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// Manager is read-only from this service's perspective; manager records are
// provisioned externally.
type Manager struct {
	ManagerID string `gorm:"column:manager_id;type:char(36);primaryKey" json:"manager_id"`
	IsActive  bool   `gorm:"column:is_active;not null" json:"is_active"`
}

// UserFilter narrows user lookups. Empty fields are ignored; provided fields
// combine with AND semantics. Values must already be validated and normalized
// by the caller.
type UserFilter struct {
	UserID    string
	MobNum    string
	ManagerID string
}

// UserUpdate carries the optional field set of a partial update. Nil pointers
// mean "leave unchanged" so legitimate falsy values are never mistaken for
// absent ones.
type UserUpdate struct {
	FullName *string
	MobNum   *string
	PanNum   *string
	// ManagerID is rejected by the orchestration layer, which routes manager
	// changes through the reassignment protocol instead; it exists here so
	// the repository surface stays complete
	ManagerID *string
}

// IsEmpty reports whether no field is present.
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil && u.MobNum == nil && u.PanNum == nil && u.ManagerID == nil
}
