package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cleantab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Profile  ProfileConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional profile-store connection settings. An
// empty URL disables persistence.
type DatabaseConfig struct {
	URL string
}

// ProfileConfig holds default profiling parameters
type ProfileConfig struct {
	MaxCategories   int
	MinMissingRatio float64
}

// Load reads configuration from the environment (and .env when present)
// and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Profile: ProfileConfig{
			MaxCategories:   getEnvIntOrDefault("MAX_CATEGORIES", 10),
			MinMissingRatio: getEnvFloatOrDefault("MIN_MISSING_RATIO", 0.05),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(c *Config) error {
	if c.Profile.MaxCategories < 0 {
		return errors.ConfigInvalid("MAX_CATEGORIES must be a non-negative integer")
	}
	if c.Profile.MinMissingRatio < 0 || c.Profile.MinMissingRatio > 1 {
		return errors.ConfigInvalid("MIN_MISSING_RATIO must be between 0 and 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
