package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Storage struct {
		// Driver selects the blob storage backend: "firebase" or "local"
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`

		Local struct {
			BasePath string `yaml:"base_path" env:"STORAGE_LOCAL_BASE_PATH"`
			BaseURL  string `yaml:"base_url" env:"STORAGE_LOCAL_BASE_URL"`
		} `yaml:"local"`

		Firebase struct {
			Bucket        string `yaml:"bucket" env:"FIREBASE_BUCKET"`
			Endpoint      string `yaml:"endpoint" env:"FIREBASE_ENDPOINT"`
			AuthToken     string `yaml:"auth_token" env:"FIREBASE_AUTH_TOKEN"`
			UploadTimeout string `yaml:"upload_timeout" env:"FIREBASE_UPLOAD_TIMEOUT"`
			MaxAttempts   int    `yaml:"max_attempts" env:"FIREBASE_MAX_ATTEMPTS"`
		} `yaml:"firebase"`
	} `yaml:"storage"`

	Developer struct {
		AuthEnabled  bool   `yaml:"auth_enabled" env:"DEVELOPER_AUTH_ENABLED"`
		PasswordHash string `yaml:"password_hash" env:"DEVELOPER_PASSWORD_HASH"`
	} `yaml:"developer"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; environment variables alone are enough
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "4000"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "notesphere"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Storage defaults
	config.Storage.Driver = "local"
	config.Storage.Local.BasePath = "uploads"
	config.Storage.Local.BaseURL = ""
	config.Storage.Firebase.Endpoint = "https://firebasestorage.googleapis.com"
	config.Storage.Firebase.UploadTimeout = "30s"
	config.Storage.Firebase.MaxAttempts = 3

	// Developer dashboard defaults: open, matching the public surface
	config.Developer.AuthEnabled = false

	// JWT defaults
	config.JWT.TokenExpiration = "12h"
	config.JWT.Issuer = "notesphere.app"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	switch config.Storage.Driver {
	case "local":
		if config.Storage.Local.BasePath == "" {
			return fmt.Errorf("local storage base path is required")
		}
	case "firebase":
		if config.Storage.Firebase.Bucket == "" {
			return fmt.Errorf("firebase storage bucket is required")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if _, err := time.ParseDuration(config.Storage.Firebase.UploadTimeout); err != nil {
		return fmt.Errorf("invalid storage upload timeout format: %w", err)
	}

	if config.Developer.AuthEnabled {
		if config.JWT.Secret == "" {
			return fmt.Errorf("JWT secret is required when developer auth is enabled")
		}
		if config.Developer.PasswordHash == "" {
			return fmt.Errorf("developer password hash is required when developer auth is enabled")
		}
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
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
	switch valueStr {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
