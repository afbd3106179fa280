package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresClient defines the interface for PostgreSQL database operations
type PostgresClient interface {
	// Migrate runs auto-migration for the given models
	Migrate(dst ...any) error
	// GetDB returns the underlying gorm.DB instance for repository use
	GetDB() *gorm.DB
	// Close closes the database connection
	Close() error
}

// postgresClient manages the database connection
type postgresClient struct {
	DB *gorm.DB
}

// NewPostgresClient opens a connection with the configured pool settings and
// verifies it with a ping.
func NewPostgresClient(cfg Config) (PostgresClient, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s search_path=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.Schema, cfg.SSLMode)
	if cfg.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &postgresClient{
		DB: db,
	}, nil
}

// Migrate runs auto-migration for the given models
func (c *postgresClient) Migrate(dst ...any) error {
	if err := c.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

// GetDB returns the underlying gorm.DB instance
func (c *postgresClient) GetDB() *gorm.DB {
	return c.DB
}

// Close closes the database connection
func (c *postgresClient) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
