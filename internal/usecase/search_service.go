package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/cartfinder/backend/internal/geo"
	googleinfra "github.com/cartfinder/backend/internal/infrastructure/google"
	"github.com/cartfinder/backend/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// textSearchChains is how many chain names from the reference list are
// tried via text search when nearby search comes back sparse.
const textSearchChains = 3

// SearchServiceConfig holds configuration for the search service.
type SearchServiceConfig struct {
	FallbackPoint        orb.Point // origin used when geocoding degrades
	DefaultMaxDistanceKm float64
	MinLiveResults       int
	CacheTTL             time.Duration
}

// SearchService runs the full store search pipeline: geocode the location,
// query places, estimate availability per store, then aggregate into a
// ranked result set with summary statistics. Every upstream failure
// degrades to a safe default; the search always completes or reports an
// explicit no-stores condition.
type SearchService struct {
	geocoder domain.GeocodingClient
	places   domain.PlacesClient
	oracle   domain.AvailabilityOracle
	cache    domain.CacheRepository
	fallback *FallbackGenerator
	metrics  *metrics.Metrics

	fallbackPoint  orb.Point
	defaultMaxKm   float64
	minLiveResults int
	cacheTTL       time.Duration
}

// NewSearchService creates a search service with its dependencies.
func NewSearchService(
	geocoder domain.GeocodingClient,
	places domain.PlacesClient,
	oracle domain.AvailabilityOracle,
	cache domain.CacheRepository,
	fallback *FallbackGenerator,
	m *metrics.Metrics,
	config SearchServiceConfig,
) *SearchService {
	defaultMaxKm := config.DefaultMaxDistanceKm
	if defaultMaxKm <= 0 {
		defaultMaxKm = 5
	}
	minLive := config.MinLiveResults
	if minLive <= 0 {
		minLive = 3
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &SearchService{
		geocoder:       geocoder,
		places:         places,
		oracle:         oracle,
		cache:          cache,
		fallback:       fallback,
		metrics:        m,
		fallbackPoint:  config.FallbackPoint,
		defaultMaxKm:   defaultMaxKm,
		minLiveResults: minLive,
		cacheTTL:       cacheTTL,
	}
}

// Search executes one search action end to end.
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	items := request.Items
	if len(items) == 0 {
		items = ParseShoppingList(request.ListText)
	}
	location := strings.TrimSpace(request.Location)
	if len(items) == 0 || location == "" {
		return nil, domain.ErrInvalidRequest
	}

	maxDistanceKm := request.MaxDistanceKm
	if maxDistanceKm <= 0 {
		maxDistanceKm = s.defaultMaxKm
	}

	start := time.Now()
	s.metrics.IncSearch()

	var warnings []string

	// Resolve the origin. Geocoding failures never abort the search.
	origin, warning := s.resolveLocation(ctx, location)
	if warning != "" {
		warnings = append(warnings, warning)
	}

	// Nearby search, widened with text-search queries for known chains
	// when results are sparse.
	places, warning := s.collectPlaces(ctx, origin, location, maxDistanceKm, request.SearchType)
	if warning != "" {
		warnings = append(warnings, warning)
	}

	// Aggregate: dedup by name, filter by radius, estimate availability.
	stores := s.aggregate(origin, places, items, maxDistanceKm)

	// Top up sparse results with synthesized records.
	if len(stores) < s.minLiveResults && s.fallback != nil {
		generated := s.fallback.Generate(origin, items, maxDistanceKm)
		if len(generated) > 0 {
			stores = append(stores, generated...)
			s.metrics.AddFallbackStores(len(generated))
			warnings = append(warnings,
				fmt.Sprintf("added %d estimated stores because live results were sparse", len(generated)))
		}
	}

	s.metrics.ObserveSearchDuration(time.Since(start))

	if len(stores) == 0 {
		return nil, domain.ErrNoStoresFound
	}

	return &domain.SearchResult{
		ID:        uuid.NewString(),
		Location:  location,
		Origin:    origin,
		OriginLat: origin.Lat(),
		OriginLng: origin.Lon(),
		Items:     items,
		Stores:    stores,
		Summary:   Summarize(stores, len(items)),
		Warnings:  warnings,
		Timestamp: time.Now(),
	}, nil
}

// resolveLocation geocodes the location text, consulting the cache first.
// On any failure it returns the fixed fallback coordinate plus a warning
// instead of propagating the error.
func (s *SearchService) resolveLocation(ctx context.Context, location string) (orb.Point, string) {
	cacheKey := "geocode:" + normalizeToken(location)

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, cacheKey); err == nil {
			if point, ok := value.(orb.Point); ok {
				return point, ""
			}
		}
	}

	point, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		log.Printf("[search] geocoding %q failed, using fallback coordinate: %v", location, err)
		s.metrics.IncUpstream("geocode", "error")
		s.metrics.IncGeocodeFallback()
		return s.fallbackPoint, fmt.Sprintf("could not locate %q, using default area", location)
	}
	s.metrics.IncUpstream("geocode", "ok")

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, point, s.cacheTTL); err != nil {
			// A failed cache write never fails the search.
			log.Printf("[search] caching geocode result failed: %v", err)
		}
	}

	return point, ""
}

// collectPlaces runs nearby search and, when the result set has fewer than
// minLiveResults entries, supplements it with text-search queries for the
// first chains in the reference list. Duplicates are left to the
// aggregation step.
func (s *SearchService) collectPlaces(ctx context.Context, origin orb.Point, location string, maxDistanceKm float64, searchType string) ([]domain.Place, string) {
	var warning string

	places, err := s.places.NearbySearch(ctx, origin, int(maxDistanceKm*1000), SearchKeyword(searchType))
	if err != nil {
		log.Printf("[search] nearby search failed: %v", err)
		s.metrics.IncUpstream("nearby", "error")
		warning = "store lookup is degraded, results may be incomplete"
		places = nil
	} else {
		s.metrics.IncUpstream("nearby", "ok")
	}

	if len(places) < s.minLiveResults {
		for _, chain := range commonStores[:textSearchChains] {
			results, err := s.places.TextSearch(ctx, chain+" "+location)
			if err != nil {
				// Degrades to an empty contribution for this chain.
				log.Printf("[search] text search for %q failed: %v", chain, err)
				s.metrics.IncUpstream("text", "error")
				continue
			}
			s.metrics.IncUpstream("text", "ok")
			places = append(places, results...)
		}
	}

	return places, warning
}

// aggregate folds the raw place list into deduplicated, radius-filtered
// store records with estimated availability.
func (s *SearchService) aggregate(origin orb.Point, places []domain.Place, items []string, maxDistanceKm float64) []domain.StoreRecord {
	stores := make([]domain.StoreRecord, 0, len(places))
	seen := make(map[string]struct{}, len(places))

	for i := range places {
		place := &places[i]

		if _, dup := seen[place.Name]; dup {
			continue
		}
		seen[place.Name] = struct{}{}

		distance := geo.DistanceKm(origin, googleinfra.PlacePoint(place))
		if distance > maxDistanceKm {
			continue
		}

		itemsFound := s.oracle.AvailableItems(place.Name, items)

		stores = append(stores, newStoreRecord(
			place.PlaceID,
			place.Name,
			googleinfra.PlaceAddress(place),
			distance,
			googleinfra.PlaceRating(place),
			googleinfra.PlaceRatingsTotal(place),
			itemsFound,
			len(items),
			googleinfra.PlaceOpenNow(place),
			false,
		))
	}

	return stores
}

// Summarize folds a store record set into aggregate statistics. Returns
// nil for an empty set: the summary is undefined without stores.
func Summarize(stores []domain.StoreRecord, totalItems int) *domain.SearchSummary {
	if len(stores) == 0 {
		return nil
	}

	var (
		fullMatches int
		sumMatched  int
		sumDistance float64
		sumRating   float64
		maxMatched  = stores[0].MatchedCount
		minMatched  = stores[0].MatchedCount
	)

	for _, store := range stores {
		if store.HasAllItems {
			fullMatches++
		}
		sumMatched += store.MatchedCount
		sumDistance += store.DistanceKm
		sumRating += store.Rating
		if store.MatchedCount > maxMatched {
			maxMatched = store.MatchedCount
		}
		if store.MatchedCount < minMatched {
			minMatched = store.MatchedCount
		}
	}

	n := float64(len(stores))
	return &domain.SearchSummary{
		TotalStores:        len(stores),
		TotalItems:         totalItems,
		StoresWithAllItems: fullMatches,
		AvgItemsPerStore:   round1(float64(sumMatched) / n),
		MaxItemsInStore:    maxMatched,
		MinItemsInStore:    minMatched,
		AvgDistanceKm:      round1(sumDistance / n),
		AvgRating:          round1(sumRating / n),
	}
}

// SearchKeyword maps the user-facing search-type selector onto the
// nearby-search keyword. Unknown or empty values keep the historical
// default.
func SearchKeyword(searchType string) string {
	switch normalizeToken(searchType) {
	case "grocery_stores":
		return "grocery store"
	case "all_stores":
		return ""
	default:
		return "supermarket"
	}
}
