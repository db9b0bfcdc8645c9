package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cartfinder/backend/config"
	httpDelivery "github.com/cartfinder/backend/internal/delivery/http"
	"github.com/cartfinder/backend/internal/infrastructure/cache"
	"github.com/cartfinder/backend/internal/infrastructure/google"
	"github.com/cartfinder/backend/internal/infrastructure/metrics"
	"github.com/cartfinder/backend/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Cartfinder Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Geocode cache TTL: %s", cfg.Cache.TTL)

	googleClient := google.NewClient(cfg.Google.APIKey, cfg.Google.BaseURL, cfg.Google.Timeout, cfg.Google.RateLimit)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		googleClient.SetDebug(true)
		log.Printf("Google client debug mode enabled")
	}

	log.Printf("Google Maps API configured: %s (key: %s...)", cfg.Google.BaseURL, cfg.Google.APIKey[:min(8, len(cfg.Google.APIKey))])

	m := metrics.New()

	// The availability oracle and fallback generator each get their own
	// seeded source; *rand.Rand is not safe for shared use.
	oracle := usecase.NewAvailabilityEstimator(rand.New(rand.NewSource(time.Now().UnixNano())))
	fallbackGen := usecase.NewFallbackGenerator(
		rand.New(rand.NewSource(time.Now().UnixNano()+1)),
		oracle,
		cfg.Search.MaxFallbackStores,
	)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		googleClient,
		googleClient,
		oracle,
		memoryCache,
		fallbackGen,
		m,
		usecase.SearchServiceConfig{
			FallbackPoint:        orb.Point{cfg.Search.FallbackLng, cfg.Search.FallbackLat},
			DefaultMaxDistanceKm: cfg.Search.MaxDistanceKm,
			MinLiveResults:       cfg.Search.MinLiveResults,
			CacheTTL:             cfg.Cache.TTL,
		},
	)

	log.Printf("Search: max_distance=%.1fkm, min_live_results=%d, max_fallback_stores=%d",
		cfg.Search.MaxDistanceKm,
		cfg.Search.MinLiveResults,
		cfg.Search.MaxFallbackStores)

	// Create HTTP handler with dependencies
	resultStore := usecase.NewResultStore()
	handler := httpDelivery.NewHandler(searchService, resultStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, m)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
