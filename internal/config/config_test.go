package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, name := range []string{
		"SERVER_PORT", "BASE_URL", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "UPLOADS_DIR",
		"MAX_UPLOAD_SIZE_MB", "SEED_SAMPLE_VIDEOS", "RATE_LIMIT_PER_MINUTE", "BONUS_ANNOUNCEMENT_DELAY",
	} {
		t.Setenv(name, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "uploads", cfg.Storage.UploadsDir)
	assert.Equal(t, int64(500), cfg.Storage.MaxUploadSizeMB)
	assert.Equal(t, int64(500*1024*1024), cfg.Storage.MaxUploadBytes())
	assert.True(t, cfg.Storage.SeedSampleVideos)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 1500*time.Millisecond, cfg.Rewards.AnnouncementDelay)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("BASE_URL", "https://api.blockseblock.dev/")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, ,https://blockseblock.dev")
	t.Setenv("UPLOADS_DIR", "/var/lib/videos")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "50")
	t.Setenv("SEED_SAMPLE_VIDEOS", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")
	t.Setenv("BONUS_ANNOUNCEMENT_DELAY", "2s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "https://api.blockseblock.dev", cfg.Server.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"http://localhost:3000", "https://blockseblock.dev"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "/var/lib/videos", cfg.Storage.UploadsDir)
	assert.Equal(t, int64(50<<20), cfg.Storage.MaxUploadBytes())
	assert.False(t, cfg.Storage.SeedSampleVideos)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 2*time.Second, cfg.Rewards.AnnouncementDelay)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port", key: "SERVER_PORT", value: "abc"},
		{name: "upload size", key: "MAX_UPLOAD_SIZE_MB", value: "0"},
		{name: "seed flag", key: "SEED_SAMPLE_VIDEOS", value: "maybe"},
		{name: "rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "-1"},
		{name: "delay", key: "BONUS_ANNOUNCEMENT_DELAY", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadTestConfig_UsesPrefix(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPLOADS_DIR", "ignored")
	t.Setenv("TEST_UPLOADS_DIR", "test-uploads")
	t.Setenv("TEST_SEED_SAMPLE_VIDEOS", "false")

	cfg, err := LoadTestConfig()

	require.NoError(t, err)
	assert.Equal(t, "test-uploads", cfg.Storage.UploadsDir)
	assert.False(t, cfg.Storage.SeedSampleVideos)
	assert.Equal(t, 3001, cfg.Server.Port)
}
