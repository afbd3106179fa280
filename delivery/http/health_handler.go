package http

import (
	"net/http"

	"github.com/sruthi7877/user-management-api/pkg/api"
	"github.com/sruthi7877/user-management-api/pkg/logger"
)

// HealthHandler handles HTTP requests for health check operations
type HealthHandler struct {
	Logger logger.LoggerInterface
	API    api.Api
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		Logger: appLogger,
		API:    api.New(),
	}
}

// HealthCheckHandler returns a 200 with basic service status.
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.API.Success(ctx, w, map[string]any{
		"status":  "healthy",
		"message": "Service is running",
	})
}
