package domain

import "errors"

// AppError carries a user-visible message plus the HTTP status code the
// transport maps it to.
type AppError struct {
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return e.Message
}

// Custom error types
var (
	ErrUserNotFound = &AppError{
		Message: "user not found",
		Code:    404, // StatusNotFound
	}
	ErrUserInactive = &AppError{
		Message: "user not found or already inactive",
		Code:    404, // StatusNotFound
	}
	ErrManagerNotActive = &AppError{
		Message: "manager not active or does not exist",
		Code:    400, // StatusBadRequest
	}
	ErrMissingDeleteKey = &AppError{
		Message: "provide user_id or mob_num for deletion",
		Code:    400, // StatusBadRequest
	}
	ErrNoUpdateData = &AppError{
		Message: "no update data provided",
		Code:    400, // StatusBadRequest
	}
	ErrManagerUpdateMix = &AppError{
		Message: "updating manager_id along with other fields is not supported; update manager_id separately",
		Code:    400, // StatusBadRequest
	}
)

// NewValidationError builds a 400-class error for a malformed or missing
// input field.
func NewValidationError(message string) *AppError {
	return &AppError{
		Message: message,
		Code:    400, // StatusBadRequest
	}
}

// Standard error types for repositories
var (
	ErrNotFound = errors.New("not found")
)
