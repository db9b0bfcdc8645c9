package usecase

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/cartfinder/backend/internal/geo"
	"github.com/paulmach/orb"
)

// Coordinate perturbation and rating/review ranges for synthesized stores.
const (
	fallbackJitterDegrees = 0.05
	fallbackRatingMin     = 3.8
	fallbackRatingMax     = 4.6
	fallbackReviewsMin    = 100
	fallbackReviewsMax    = 1500 // exclusive
)

// FallbackGenerator synthesizes plausible store records from the chain
// reference list when the live API returns too few results. Generation is
// random: perturbed coordinates can land outside the radius, so fewer than
// maxStores records may come back.
type FallbackGenerator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	oracle    domain.AvailabilityOracle
	maxStores int
}

// NewFallbackGenerator creates a generator producing at most maxStores
// records per call.
func NewFallbackGenerator(rng *rand.Rand, oracle domain.AvailabilityOracle, maxStores int) *FallbackGenerator {
	if maxStores <= 0 || maxStores > len(commonStores) {
		maxStores = 6
	}
	return &FallbackGenerator{rng: rng, oracle: oracle, maxStores: maxStores}
}

// Generate builds up to maxStores synthesized records around the origin.
// Records whose perturbed coordinate exceeds maxDistanceKm are dropped.
func (g *FallbackGenerator) Generate(origin orb.Point, items []string, maxDistanceKm float64) []domain.StoreRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	records := make([]domain.StoreRecord, 0, g.maxStores)

	for i, storeName := range commonStores[:g.maxStores] {
		point := orb.Point{
			origin.Lon() + g.uniform(-fallbackJitterDegrees, fallbackJitterDegrees),
			origin.Lat() + g.uniform(-fallbackJitterDegrees, fallbackJitterDegrees),
		}

		distance := geo.DistanceKm(origin, point)
		if distance > maxDistanceKm {
			continue
		}

		rating := round1(g.uniform(fallbackRatingMin, fallbackRatingMax))
		reviews := fallbackReviewsMin + g.rng.Intn(fallbackReviewsMax-fallbackReviewsMin)
		itemsFound := g.oracle.AvailableItems(storeName, items)
		open := true

		records = append(records, newStoreRecord(
			fmt.Sprintf("fallback-%d", i),
			storeName,
			domain.AddressUnavailable,
			distance,
			rating,
			reviews,
			itemsFound,
			len(items),
			&open,
			true,
		))
	}

	return records
}

func (g *FallbackGenerator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
