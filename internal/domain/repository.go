package domain

import (
	"context"
	"time"

	"github.com/paulmach/orb"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// GeocodingClient resolves free-text locations into coordinates.
type GeocodingClient interface {
	Geocode(ctx context.Context, address string) (orb.Point, error)
}

// PlacesClient defines the two query modes of the places lookup service.
type PlacesClient interface {
	NearbySearch(ctx context.Context, origin orb.Point, radiusMeters int, keyword string) ([]Place, error)
	TextSearch(ctx context.Context, query string) ([]Place, error)
}

// AvailabilityOracle decides which requested items a store carries.
// The shipped implementation is a stochastic simulation; the interface
// exists so a real inventory source can be swapped in without touching
// aggregation or presentation.
type AvailabilityOracle interface {
	AvailableItems(storeName string, items []string) []string
}
