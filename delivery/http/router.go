package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sruthi7877/user-management-api/pkg/logger"
)

type Router struct {
	UserHandler   *UserHandler
	HealthHandler *HealthHandler
	AppLogger     logger.LoggerInterface
}

func NewRouter(userHandler *UserHandler, healthHandler *HealthHandler, appLogger logger.LoggerInterface) *Router {
	return &Router{
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
		AppLogger:     appLogger,
	}
}

// SetupRoutes wires the four record operations. Each one is a POST with a
// JSON body, matching the upstream API this service replaces.
func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))

	// Health check endpoint
	router.Get("/health", r.HealthHandler.HealthCheckHandler)

	router.Post("/create_user", r.UserHandler.CreateUserHandler)
	router.Post("/get_users", r.UserHandler.GetUsersHandler)
	router.Post("/delete_user", r.UserHandler.DeleteUserHandler)
	router.Post("/update_user", r.UserHandler.UpdateUserHandler)

	return router
}
