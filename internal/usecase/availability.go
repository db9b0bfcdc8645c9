package usecase

import (
	"math/rand"
	"strings"
	"sync"
)

// Availability probabilities by store profile. These are heuristics over
// the store name, not real inventory data: the whole estimator is a
// stochastic simulation standing in for an inventory feed, kept behind
// domain.AvailabilityOracle so a real source can replace it.
const (
	probDefault    = 0.7
	probDiscount   = 0.6  // hard-discount chains stock fewer niche items
	probOrganic    = 0.8  // organic/specialty stores
	probSuperstore = 0.75 // large full-range chains

	probSpecialtyItemAtOrganic = 0.9 // organic/dietary item in an organic store
	probSpecialtyItemElsewhere = 0.4
)

// Store-name keyword groups, checked in this order.
var (
	discountKeywords   = []string{"lidl", "eurospin", "md", "discount"}
	organicKeywords    = []string{"naturasì", "bio", "naturale", "fresco"}
	superstoreKeywords = []string{"esselunga", "carrefour", "coop", "iper"}

	// Items carrying these words are specialty products whose odds
	// depend on the store being an organic one.
	specialtyItemKeywords = []string{"bio", "naturale", "vegano", "integrale"}
)

// AvailabilityEstimator implements domain.AvailabilityOracle with a
// per-item uniform draw against a keyword-derived probability.
type AvailabilityEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAvailabilityEstimator creates an estimator driven by the given
// source. Tests pass a seeded source for reproducibility; production
// seeding comes from the wiring layer.
func NewAvailabilityEstimator(rng *rand.Rand) *AvailabilityEstimator {
	return &AvailabilityEstimator{rng: rng}
}

// AvailableItems returns the subset of items the store is estimated to
// carry. Each item is an independent draw, so results vary between calls
// with the same inputs unless the source is re-seeded.
func (e *AvailabilityEstimator) AvailableItems(storeName string, items []string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	available := make([]string, 0, len(items))
	for _, item := range items {
		p := itemProbability(storeName, item)
		if e.rng.Float64() < p {
			available = append(available, item)
		}
	}
	return available
}

// itemProbability derives the availability probability for one item at
// one store from name keywords. Deterministic; only the draw is random.
func itemProbability(storeName, item string) float64 {
	store := normalizeToken(storeName)

	p := probDefault
	switch {
	case containsAny(store, discountKeywords):
		p = probDiscount
	case containsAny(store, organicKeywords):
		p = probOrganic
	case containsAny(store, superstoreKeywords):
		p = probSuperstore
	}

	if containsAny(normalizeToken(item), specialtyItemKeywords) {
		if containsAny(store, organicKeywords) {
			p = probSpecialtyItemAtOrganic
		} else {
			p = probSpecialtyItemElsewhere
		}
	}

	return p
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
