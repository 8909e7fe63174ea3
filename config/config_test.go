package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("VINOLENS_SERVER_PORT")
		os.Unsetenv("VINOLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("VINOLENS_VISION_ENABLED")
		os.Unsetenv("VINOLENS_VISION_API_KEY")
		os.Unsetenv("VINOLENS_VISION_BASE_URL")
		os.Unsetenv("VINOLENS_CACHE_TYPE")
		os.Unsetenv("VINOLENS_CACHE_REDIS_URL")
		os.Unsetenv("VINOLENS_CACHE_TTL")
		os.Unsetenv("VINOLENS_SCAN_MAX_BATCH_SIZE")
		os.Unsetenv("VINOLENS_SCAN_DEBUG")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Vision.Enabled {
			t.Error("Vision.Enabled = true, want false by default")
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 168*time.Hour {
			t.Errorf("Cache.TTL = %v, want 168h", cfg.Cache.TTL)
		}
		if cfg.Scan.MaxBatchSize != 20 {
			t.Errorf("Scan.MaxBatchSize = %d, want 20", cfg.Scan.MaxBatchSize)
		}
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_SERVER_PORT", "9090")
		os.Setenv("VINOLENS_SCAN_MAX_BATCH_SIZE", "5")
		os.Setenv("VINOLENS_SCAN_DEBUG", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Scan.MaxBatchSize != 5 {
			t.Errorf("Scan.MaxBatchSize = %d, want 5", cfg.Scan.MaxBatchSize)
		}
		if !cfg.Scan.Debug {
			t.Error("Scan.Debug = false, want true")
		}
	})

	t.Run("vision enabled requires an API key", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_VISION_ENABLED", "true")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error without vision API key")
		}
	})

	t.Run("vision enabled with key passes", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_VISION_ENABLED", "true")
		os.Setenv("VINOLENS_VISION_API_KEY", "test-key")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Vision.APIKey != "test-key" {
			t.Errorf("Vision.APIKey = %s, want test-key", cfg.Vision.APIKey)
		}
	})

	t.Run("invalid cache type rejected", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_CACHE_TYPE", "memcached")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for unknown cache type")
		}
	})

	t.Run("redis cache requires a URL", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_CACHE_TYPE", "redis")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for redis without URL")
		}
	})

	t.Run("zero batch size rejected", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("VINOLENS_SCAN_MAX_BATCH_SIZE", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for zero batch size")
		}
	})
}
