package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("CARTFINDER_SERVER_PORT")
		os.Unsetenv("CARTFINDER_SERVER_ENVIRONMENT")
		os.Unsetenv("CARTFINDER_GOOGLE_API_KEY")
		os.Unsetenv("CARTFINDER_GOOGLE_BASE_URL")
		os.Unsetenv("CARTFINDER_GOOGLE_TIMEOUT")
		os.Unsetenv("CARTFINDER_SEARCH_MAX_DISTANCE_KM")
		os.Unsetenv("CARTFINDER_SEARCH_FALLBACK_LAT")
		os.Unsetenv("CARTFINDER_SEARCH_FALLBACK_LNG")
		os.Unsetenv("CARTFINDER_CACHE_TTL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("CARTFINDER_GOOGLE_API_KEY", "test-key")
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
		if cfg.Google.BaseURL != "https://maps.googleapis.com/maps/api" {
			t.Errorf("Google.BaseURL = %s, want https://maps.googleapis.com/maps/api", cfg.Google.BaseURL)
		}
		if cfg.Google.Timeout != 10*time.Second {
			t.Errorf("Google.Timeout = %v, want 10s", cfg.Google.Timeout)
		}
		if cfg.Search.FallbackLat != 45.698 || cfg.Search.FallbackLng != 9.677 {
			t.Errorf("Search fallback = (%f, %f), want (45.698, 9.677)",
				cfg.Search.FallbackLat, cfg.Search.FallbackLng)
		}
		if cfg.Search.MaxDistanceKm != 5.0 {
			t.Errorf("Search.MaxDistanceKm = %f, want 5.0", cfg.Search.MaxDistanceKm)
		}
		if cfg.Search.MinLiveResults != 3 {
			t.Errorf("Search.MinLiveResults = %d, want 3", cfg.Search.MinLiveResults)
		}
		if cfg.Search.MaxFallbackStores != 6 {
			t.Errorf("Search.MaxFallbackStores = %d, want 6", cfg.Search.MaxFallbackStores)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTFINDER_SERVER_PORT", "9090")
		os.Setenv("CARTFINDER_SERVER_ENVIRONMENT", "production")
		os.Setenv("CARTFINDER_GOOGLE_API_KEY", "custom-api-key")
		os.Setenv("CARTFINDER_GOOGLE_BASE_URL", "https://maps.example.com/api")
		os.Setenv("CARTFINDER_GOOGLE_TIMEOUT", "5s")
		os.Setenv("CARTFINDER_SEARCH_MAX_DISTANCE_KM", "10")
		os.Setenv("CARTFINDER_CACHE_TTL", "1h")
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
		if cfg.Google.APIKey != "custom-api-key" {
			t.Errorf("Google.APIKey = %s, want custom-api-key", cfg.Google.APIKey)
		}
		if cfg.Google.BaseURL != "https://maps.example.com/api" {
			t.Errorf("Google.BaseURL = %s, want https://maps.example.com/api", cfg.Google.BaseURL)
		}
		if cfg.Google.Timeout != 5*time.Second {
			t.Errorf("Google.Timeout = %v, want 5s", cfg.Google.Timeout)
		}
		if cfg.Search.MaxDistanceKm != 10.0 {
			t.Errorf("Search.MaxDistanceKm = %f, want 10.0", cfg.Search.MaxDistanceKm)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
	})

	t.Run("fails when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want API key validation error")
		}
	})

	t.Run("fails on non-positive max distance", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTFINDER_GOOGLE_API_KEY", "test-key")
		os.Setenv("CARTFINDER_SEARCH_MAX_DISTANCE_KM", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want max distance validation error")
		}
	})

	t.Run("fails on non-positive timeout", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTFINDER_GOOGLE_API_KEY", "test-key")
		os.Setenv("CARTFINDER_GOOGLE_TIMEOUT", "0s")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want timeout validation error")
		}
	})
}
