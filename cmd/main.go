// Package main is the entry point for the application
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sruthi7877/user-management-api/config"
	httpDelivery "github.com/sruthi7877/user-management-api/delivery/http"
	"github.com/sruthi7877/user-management-api/domain/model"
	pgRepository "github.com/sruthi7877/user-management-api/repository/postgres"
	"github.com/sruthi7877/user-management-api/repository/rediscache"
	"github.com/sruthi7877/user-management-api/usecase"

	"github.com/sruthi7877/user-management-api/pkg/kafka"
	"github.com/sruthi7877/user-management-api/pkg/logger"
	"github.com/sruthi7877/user-management-api/pkg/postgres"
	"github.com/sruthi7877/user-management-api/pkg/redis"
)

func main() {
	// configure logger
	appLogger := logger.NewJSONDefault()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize PostgreSQL client
	postgresClient, err := postgres.NewPostgresClient(postgres.Config{
		Host:            cfg.Infrastructure.Postgres.Host,
		Port:            cfg.Infrastructure.Postgres.Port,
		User:            cfg.Infrastructure.Postgres.User,
		Password:        cfg.Infrastructure.Postgres.Password,
		DBName:          cfg.Infrastructure.Postgres.DBName,
		Schema:          cfg.Infrastructure.Postgres.Schema,
		SSLMode:         cfg.Infrastructure.Postgres.SSLMode,
		MaxIdleConns:    cfg.Infrastructure.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Infrastructure.Postgres.MaxOpenConns,
		ConnMaxIdleTime: cfg.Infrastructure.Postgres.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Infrastructure.Postgres.ConnMaxLifetime,
		Debug:           cfg.Infrastructure.Postgres.Debug,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.Infrastructure.Postgres.IsUseMigrate {
		// The managers table is provisioned and populated externally; the
		// migration only ensures both tables exist with the expected shape.
		err = postgresClient.Migrate(
			&model.User{},
			&model.Manager{},
		)
		if err != nil {
			appLogger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize Redis client
	redisClient, redisErr := redis.New(
		redis.WithAddrs(cfg.Infrastructure.Redis.Addrs),
		redis.WithUsername(cfg.Infrastructure.Redis.Username),
		redis.WithPassword(cfg.Infrastructure.Redis.Password),
		redis.WithDB(cfg.Infrastructure.Redis.DB),
		redis.WithPoolSize(cfg.Infrastructure.Redis.PoolSize),
	)
	if redisErr != nil {
		appLogger.Error("Failed to initialize Redis client", "error", redisErr)
		os.Exit(1)
	}

	// Initialize Kafka client
	kafkaClient, kafkaErr := kafka.New(
		kafka.WithBrokers(cfg.Infrastructure.Kafka.Brokers...),
	)
	if kafkaErr != nil {
		appLogger.Error("Failed to initialize Kafka client", "error", kafkaErr)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := pgRepository.NewUserRepository(postgresClient.GetDB(), appLogger)
	managerRepo := pgRepository.NewManagerRepository(postgresClient.GetDB(), appLogger)
	cachedManagerRepo := rediscache.NewManagerCache(
		managerRepo,
		redisClient,
		time.Duration(cfg.Infrastructure.Redis.ManagerCacheTTL)*time.Second,
		appLogger,
	)

	// Initialize usecase
	userUsecase := usecase.NewUserUseCase(
		userRepo,
		cachedManagerRepo,
		kafkaClient,
		cfg.Infrastructure.Kafka.Topics.UserEvents,
		appLogger,
	)

	// Initialize handlers and router
	userHandler := httpDelivery.NewUserHandler(userUsecase, appLogger)
	healthHandler := httpDelivery.NewHealthHandler(appLogger)
	router := httpDelivery.NewRouter(userHandler, healthHandler, appLogger)

	// Start server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := kafkaClient.Close(); err != nil {
		appLogger.Warn("Error closing Kafka client", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warn("Error closing Redis client", "error", err)
	}
	if err := postgresClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}

	appLogger.Info("Server exited")
}
