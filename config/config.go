// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Login   LoginConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StorageConfig holds the file store configuration.
type StorageConfig struct {
	DataDir string
}

// JWTConfig holds bearer token configuration.
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// CORSConfig holds cross-origin configuration.
type CORSConfig struct {
	AllowedOrigins []string
}

// LoginConfig holds login rate-limiting configuration.
type LoginConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-me-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Login: LoginConfig{
			MaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			Window:      getEnvAsDuration("LOGIN_RATE_WINDOW", 1*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
