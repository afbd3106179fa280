// Package config handles application configuration loading and management
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // in seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // in seconds
	// ShutdownTimeout defines how long the server waits for active connections during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // in seconds
}

// InfrastructureConfig holds the infrastructure configuration
type InfrastructureConfig struct {
	// Postgres contains PostgreSQL-specific settings
	Postgres PostgresConfig `mapstructure:"postgres"`
	// Redis contains Redis configuration
	Redis RedisConfig `mapstructure:"redis"`
	// Kafka contains Kafka configuration
	Kafka KafkaConfig `mapstructure:"kafka"`
}

// PostgresConfig holds the PostgreSQL database configuration
type PostgresConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// Schema specifies the database schema
	Schema string `mapstructure:"schema"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // in minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // in minutes
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate specifies whether to run schema auto-migration on startup
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	// Addrs specifies the Redis server addresses
	Addrs []string `mapstructure:"addrs"`
	// Username specifies the Redis username
	Username string `mapstructure:"username"`
	// Password specifies the Redis password
	Password string `mapstructure:"password"`
	// DB specifies the Redis database number
	DB int `mapstructure:"db"`
	// PoolSize specifies the maximum number of socket connections
	PoolSize int `mapstructure:"pool_size"`
	// ManagerCacheTTL specifies how long a positive manager-activity lookup is cached, in seconds
	ManagerCacheTTL int `mapstructure:"manager_cache_ttl"` // in seconds
}

// KafkaConfig holds the Kafka configuration
type KafkaConfig struct {
	// Brokers specifies the Kafka broker addresses
	Brokers []string `mapstructure:"brokers"`
	// Topics contains specific topic names for different message types
	Topics KafkaTopics `mapstructure:"topics"`
}

// KafkaTopics holds specific topic names for different message types
type KafkaTopics struct {
	// UserEvents specifies the topic name for user lifecycle events
	UserEvents string `mapstructure:"user_events"`
}

// LoadConfig loads the application configuration from a user.yaml file in the
// configs directory, falling back to environment variables and defaults.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("user")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("configs")

	// Set default values
	viper.SetDefault("application.name", "User Record Service")
	viper.SetDefault("application.version", "1.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 15)     // seconds
	viper.SetDefault("server.write_timeout", 15)    // seconds
	viper.SetDefault("server.shutdown_timeout", 30) // seconds
	viper.SetDefault("infrastructure.postgres.host", "localhost")
	viper.SetDefault("infrastructure.postgres.port", 5432)
	// No defaults for user and password - they must be provided
	viper.SetDefault("infrastructure.postgres.dbname", "user_management")
	viper.SetDefault("infrastructure.postgres.schema", "public")
	viper.SetDefault("infrastructure.postgres.sslmode", "disable")
	viper.SetDefault("infrastructure.postgres.max_idle_conns", 10)
	viper.SetDefault("infrastructure.postgres.max_open_conns", 100)
	viper.SetDefault("infrastructure.postgres.conn_max_idle_time", 5) // minutes
	viper.SetDefault("infrastructure.postgres.conn_max_lifetime", 60) // minutes
	viper.SetDefault("infrastructure.postgres.debug", false)
	viper.SetDefault("infrastructure.postgres.is_use_migrate", true)
	viper.SetDefault("infrastructure.redis.addrs", []string{"localhost:6379"})
	viper.SetDefault("infrastructure.redis.username", "")
	viper.SetDefault("infrastructure.redis.password", "")
	viper.SetDefault("infrastructure.redis.db", 0)
	viper.SetDefault("infrastructure.redis.pool_size", 10)
	viper.SetDefault("infrastructure.redis.manager_cache_ttl", 60) // seconds
	viper.SetDefault("infrastructure.kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("infrastructure.kafka.topics.user_events", "user.events")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("Config file not found, using environment variables and defaults")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate required settings
	if config.Infrastructure.Postgres.User == "" {
		return nil, errors.New("database user is required")
	}
	if config.Infrastructure.Postgres.Password == "" {
		return nil, errors.New("database password is required")
	}

	return &config, nil
}

// GetConfigPath returns the path of the loaded config file
// If no config file was loaded, it returns an empty string
func GetConfigPath() string {
	return viper.ConfigFileUsed()
}
