// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is rejected in
// production.
const DefaultJWTSecret = "dev-secret-change-me"

// Config holds every setting the server reads at startup.
type Config struct {
	Environment string
	Port        int
	CORSEnabled bool

	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
	BusyTimeout  time.Duration
}

// AuthConfig configures tokens and verification codes.
type AuthConfig struct {
	JWTSecret           string
	TokenDuration       time.Duration
	VerificationCodeTTL time.Duration
}

// LogConfig configures pkg/logging.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file from the working directory and then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	busyTimeout, err := getEnvDuration("DB_BUSY_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	tokenDuration, err := getEnvDuration("TOKEN_DURATION", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	codeTTL, err := getEnvDuration("VERIFICATION_CODE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: getEnvString("ENVIRONMENT", "development"),
		Port:        getEnvInt("PORT", 8080),
		CORSEnabled: getEnvBool("CORS_ENABLED", true),
		Database: DatabaseConfig{
			Path:         getEnvString("DB_PATH", "./data/totalmanager.db"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 1),
			BusyTimeout:  busyTimeout,
		},
		Auth: AuthConfig{
			JWTSecret:           getEnvString("JWT_SECRET", DefaultJWTSecret),
			TokenDuration:       tokenDuration,
			VerificationCodeTTL: codeTTL,
		},
		Log: LogConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.Environment == "production" && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Auth.TokenDuration <= 0 {
		return fmt.Errorf("TOKEN_DURATION must be positive, got %s", c.Auth.TokenDuration)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
