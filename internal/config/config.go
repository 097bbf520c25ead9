// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
	Rewards   RewardsConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
	// BaseURL is advertised in the API docs; empty means the request host
	BaseURL string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// StorageConfig holds upload storage settings
type StorageConfig struct {
	UploadsDir      string
	MaxUploadSizeMB int64
	// SeedSampleVideos registers the two sample videos at startup
	SeedSampleVideos bool
}

// RateLimitConfig holds per-IP rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// RewardsConfig holds token engine settings
type RewardsConfig struct {
	// AnnouncementDelay spaces the announcements of rewards earned by one action
	AnnouncementDelay time.Duration
}

// MaxUploadBytes returns the upload limit in bytes
func (c StorageConfig) MaxUploadBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return load("")
}

// load builds the configuration from variables named prefix+NAME
func load(prefix string) (*Config, error) {
	env := envReader{prefix: prefix}
	cfg := &Config{}

	cfg.Server.Port = env.getInt("SERVER_PORT", 3001)
	cfg.Server.BaseURL = strings.TrimRight(env.getString("BASE_URL", ""), "/")
	cfg.Logging.Level = env.getString("LOG_LEVEL", "info")
	cfg.CORS.AllowedOrigins = parseOrigins(env.getString("CORS_ALLOWED_ORIGINS", ""))
	cfg.Storage.UploadsDir = env.getString("UPLOADS_DIR", "uploads")
	cfg.Storage.MaxUploadSizeMB = int64(env.getInt("MAX_UPLOAD_SIZE_MB", 500))
	cfg.Storage.SeedSampleVideos = env.getBool("SEED_SAMPLE_VIDEOS", true)
	cfg.RateLimit.RequestsPerMinute = env.getInt("RATE_LIMIT_PER_MINUTE", 100)
	cfg.Rewards.AnnouncementDelay = env.getDuration("BONUS_ANNOUNCEMENT_DELAY", 1500*time.Millisecond)

	if len(env.errs) > 0 {
		return nil, errors.Join(env.errs...)
	}
	if cfg.Storage.MaxUploadSizeMB <= 0 {
		return nil, fmt.Errorf("invalid %sMAX_UPLOAD_SIZE_MB: must be positive", prefix)
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("invalid %sRATE_LIMIT_PER_MINUTE: must be positive", prefix)
	}
	return cfg, nil
}

// parseOrigins splits a comma-separated origin list, defaulting to all origins
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// envReader reads optional variables and collects parse errors
type envReader struct {
	prefix string
	errs   []error
}

func (r *envReader) lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(r.prefix + name)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (r *envReader) getString(name, fallback string) string {
	if value, ok := r.lookup(name); ok {
		return value
	}
	return fallback
}

func (r *envReader) getInt(name string, fallback int) int {
	value, ok := r.lookup(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s%s: %w", r.prefix, name, err))
		return fallback
	}
	return n
}

func (r *envReader) getBool(name string, fallback bool) bool {
	value, ok := r.lookup(name)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s%s: %w", r.prefix, name, err))
		return fallback
	}
	return b
}

func (r *envReader) getDuration(name string, fallback time.Duration) time.Duration {
	value, ok := r.lookup(name)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s%s: %w", r.prefix, name, err))
		return fallback
	}
	return d
}
