package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("LABELCHECK_SERVER_PORT")
		os.Unsetenv("LABELCHECK_SERVER_ENVIRONMENT")
		os.Unsetenv("LABELCHECK_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("LABELCHECK_VISION_API_KEY")
		os.Unsetenv("LABELCHECK_VISION_MODEL")
		os.Unsetenv("LABELCHECK_STORE_PATH")
		os.Unsetenv("LABELCHECK_RATELIMIT_PER_IP")
		os.Unsetenv("LABELCHECK_VERIFY_ENABLE_DEBUG_LOGGING")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("LABELCHECK_VISION_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Vision.Model != "gemini-2.0-flash" {
			t.Errorf("Vision.Model = %s, want gemini-2.0-flash", cfg.Vision.Model)
		}
		if cfg.Store.Path != "labelcheck.db" {
			t.Errorf("Store.Path = %s, want labelcheck.db", cfg.Store.Path)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Verify.EnableDebugLogging {
			t.Error("Verify.EnableDebugLogging = true, want false")
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABELCHECK_SERVER_PORT", "9090")
		os.Setenv("LABELCHECK_SERVER_ENVIRONMENT", "production")
		os.Setenv("LABELCHECK_VISION_API_KEY", "custom-api-key")
		os.Setenv("LABELCHECK_VISION_MODEL", "gemini-2.5-pro")
		os.Setenv("LABELCHECK_STORE_PATH", "/var/lib/labelcheck/store.db")
		os.Setenv("LABELCHECK_RATELIMIT_PER_IP", "200")
		os.Setenv("LABELCHECK_VERIFY_ENABLE_DEBUG_LOGGING", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Vision.APIKey != "custom-api-key" {
			t.Errorf("Vision.APIKey = %s, want custom-api-key", cfg.Vision.APIKey)
		}
		if cfg.Vision.Model != "gemini-2.5-pro" {
			t.Errorf("Vision.Model = %s, want gemini-2.5-pro", cfg.Vision.Model)
		}
		if cfg.Store.Path != "/var/lib/labelcheck/store.db" {
			t.Errorf("Store.Path = %s, want /var/lib/labelcheck/store.db", cfg.Store.Path)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if !cfg.Verify.EnableDebugLogging {
			t.Error("Verify.EnableDebugLogging = false, want true")
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: vision API key is required (set LABELCHECK_VISION_API_KEY)" {
			t.Errorf("Load() error = %v, want 'vision API key is required'", err)
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABELCHECK_VISION_API_KEY", "test-key")
		os.Setenv("LABELCHECK_RATELIMIT_PER_IP", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for non-positive rate limit")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("validates successfully with all required fields", func(t *testing.T) {
		cfg := &Config{
			Vision: VisionConfig{
				APIKey: "test-key",
				Model:  "gemini-2.0-flash",
			},
			Store: StoreConfig{
				Path: "labelcheck.db",
			},
			RateLimit: RateLimitConfig{
				PerIP: 100,
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := &Config{
			Vision: VisionConfig{
				APIKey: "",
			},
			Store: StoreConfig{
				Path: "labelcheck.db",
			},
			RateLimit: RateLimitConfig{
				PerIP: 100,
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails when store path is empty", func(t *testing.T) {
		cfg := &Config{
			Vision: VisionConfig{
				APIKey: "test-key",
			},
			Store: StoreConfig{
				Path: "",
			},
			RateLimit: RateLimitConfig{
				PerIP: 100,
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty store path")
		}
	})

	t.Run("fails for negative rate limit", func(t *testing.T) {
		cfg := &Config{
			Vision: VisionConfig{
				APIKey: "test-key",
			},
			Store: StoreConfig{
				Path: "labelcheck.db",
			},
			RateLimit: RateLimitConfig{
				PerIP: -1,
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for negative rate limit")
		}
	})
}
