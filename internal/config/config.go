package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage driver names
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Auth mode names
const (
	AuthModeMock  = "mock"
	AuthModeLocal = "local"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		// Path is the base directory of the file driver
		Path string `yaml:"path" env:"STORAGE_PATH"`
		// Prefix namespaces every collection key
		Prefix   string `yaml:"prefix" env:"STORAGE_PREFIX"`
		RedisURL string `yaml:"redis_url" env:"STORAGE_REDIS_URL"`

		Postgres struct {
			Host            string `yaml:"host" env:"DB_HOST"`
			Port            string `yaml:"port" env:"DB_PORT"`
			User            string `yaml:"user" env:"DB_USER"`
			Password        string `yaml:"password" env:"DB_PASSWORD"`
			DBName          string `yaml:"dbname" env:"DB_NAME"`
			SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
			MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
			MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Auth struct {
		Mode            string `yaml:"mode" env:"AUTH_MODE"`
		TokenSecret     string `yaml:"token_secret" env:"AUTH_TOKEN_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
		TokenIssuer     string `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Storage defaults
	config.Storage.Driver = DriverFile
	config.Storage.Path = "data"
	config.Storage.Prefix = "@alumni_app_"
	config.Storage.RedisURL = "redis://localhost:6379/0"
	config.Storage.Postgres.Host = "localhost"
	config.Storage.Postgres.Port = "5432"
	config.Storage.Postgres.User = "postgres"
	config.Storage.Postgres.Password = "postgres"
	config.Storage.Postgres.DBName = "alumnihub"
	config.Storage.Postgres.SSLMode = "disable"
	config.Storage.Postgres.MaxIdleConns = 2
	config.Storage.Postgres.MaxOpenConns = 10
	config.Storage.Postgres.ConnMaxLifetime = "1h"

	// Auth defaults
	config.Auth.Mode = AuthModeLocal
	config.Auth.TokenExpiration = "720h"
	config.Auth.TokenIssuer = "alumnihub.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case DriverFile, DriverMemory, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.Driver == DriverFile && config.Storage.Path == "" {
		return fmt.Errorf("storage path is required for the file driver")
	}

	if config.Storage.Prefix == "" {
		return fmt.Errorf("storage prefix is required")
	}

	switch config.Auth.Mode {
	case AuthModeMock, AuthModeLocal:
	default:
		return fmt.Errorf("unknown auth mode %q", config.Auth.Mode)
	}

	if config.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret is required")
	}

	if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
		return fmt.Errorf("invalid auth token expiration format: %w", err)
	}

	return nil
}

// TokenExpiration returns the parsed session token lifetime
func (c *Config) TokenExpiration() time.Duration {
	d, err := time.ParseDuration(c.Auth.TokenExpiration)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Storage.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Storage.Postgres.User,
		c.Storage.Postgres.Password,
		c.Storage.Postgres.Host,
		c.Storage.Postgres.Port,
		c.Storage.Postgres.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(GetEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	if valueStr == "true" || valueStr == "1" || valueStr == "yes" {
		return true
	}
	if valueStr == "false" || valueStr == "0" || valueStr == "no" {
		return false
	}
	return defaultValue
}
