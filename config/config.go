package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	Google GoogleConfig
	Search SearchConfig
	Cache  CacheConfig
}

// Server holds server-related configuration
type Server struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GoogleConfig holds Google Maps API configuration. The API key is never
// embedded in code; it must come from the environment or a config file.
type GoogleConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"` // requests per second
}

// SearchConfig holds the search pipeline tuning knobs.
type SearchConfig struct {
	FallbackLat       float64 `mapstructure:"fallback_lat"`
	FallbackLng       float64 `mapstructure:"fallback_lng"`
	MaxDistanceKm     float64 `mapstructure:"max_distance_km"`
	MinLiveResults    int     `mapstructure:"min_live_results"`
	MaxFallbackStores int     `mapstructure:"max_fallback_stores"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cartfinder/")

	// Environment variable settings
	v.SetEnvPrefix("CARTFINDER")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Google defaults. The empty api_key default registers the key so
	// the env var binds; validation still rejects a missing key.
	v.SetDefault("google.api_key", "")
	v.SetDefault("google.base_url", "https://maps.googleapis.com/maps/api")
	v.SetDefault("google.timeout", "10s")
	v.SetDefault("google.rate_limit", 10.0)

	// Search defaults. The fallback coordinate is Bergamo, the safe
	// origin used when geocoding degrades.
	v.SetDefault("search.fallback_lat", 45.698)
	v.SetDefault("search.fallback_lng", 9.677)
	v.SetDefault("search.max_distance_km", 5.0)
	v.SetDefault("search.min_live_results", 3)
	v.SetDefault("search.max_fallback_stores", 6)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Google.APIKey == "" {
		return fmt.Errorf("Google API key is required (set CARTFINDER_GOOGLE_API_KEY)")
	}

	if config.Google.Timeout <= 0 {
		return fmt.Errorf("Google API timeout must be positive, got: %s", config.Google.Timeout)
	}

	if config.Search.MaxDistanceKm <= 0 {
		return fmt.Errorf("max distance must be positive, got: %f", config.Search.MaxDistanceKm)
	}

	if config.Search.MinLiveResults < 0 || config.Search.MaxFallbackStores < 0 {
		return fmt.Errorf("search thresholds cannot be negative")
	}

	return nil
}
