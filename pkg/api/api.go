// Package api provides the standard JSON response envelope for HTTP handlers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format
type Response struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
}

// New creates a new instance of the API response handler
func New() Api {
	return &api{}
}

// buildResponse creates the response envelope, picking up the chi request id
// from the context when present.
func (a *api) buildResponse(ctx context.Context, status string, data any, apiErr *Error) Response {
	response := Response{
		RequestID: middleware.GetReqID(ctx),
		Status:    status,
	}

	if data != nil {
		response.Data = data
	}
	if apiErr != nil {
		response.Error = apiErr
	}

	return response
}

func (a *api) write(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	// Encoding failures past this point cannot be reported to the client
	_ = json.NewEncoder(w).Encode(response)
}

// Success sends a 200 response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, nil))
}

// Error sends an error response with the given status code
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.write(w, statusCode, a.buildResponse(ctx, StatusError, nil, apiErr))
}

// BadRequest sends a 400 error response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// NotFound sends a 404 error response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{
		Code:    "NOT_FOUND",
		Message: message,
	})
}

// InternalServerError sends a 500 error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: message,
	})
}

// ValidationError sends a 400 error response with per-field details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Input validation failed",
		Details: details,
	})
}
