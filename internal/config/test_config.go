package config

import (
	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration for integration tests.
// Variables are read with the TEST_ prefix (TEST_UPLOADS_DIR, TEST_LOG_LEVEL, ...);
// anything unset falls back to the regular defaults.
func LoadTestConfig() (*Config, error) {
	// Optional, try both possible paths
	_ = godotenv.Load("./../../configs/.env")
	_ = godotenv.Load()

	return load("TEST_")
}
