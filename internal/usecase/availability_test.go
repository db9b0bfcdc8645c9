package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemProbability_StoreProfiles(t *testing.T) {
	tests := []struct {
		name  string
		store string
		item  string
		want  float64
	}{
		{"default store", "Alimentari Rossi", "pasta", probDefault},
		{"discount chain", "Lidl", "pasta", probDiscount},
		{"discount keyword in longer name", "Eurospin Bergamo", "pasta", probDiscount},
		{"organic store", "NaturaSì", "pasta", probOrganic},
		{"superstore", "Esselunga", "pasta", probSuperstore},
		{"superstore carrefour", "Carrefour Market", "pasta", probSuperstore},
		{"case insensitive", "ESSELUNGA", "pasta", probSuperstore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemProbability(tt.store, tt.item))
		})
	}
}

func TestItemProbability_SpecialtyItems(t *testing.T) {
	// Specialty items override the store profile: high odds at organic
	// stores, low everywhere else.
	assert.Equal(t, probSpecialtyItemAtOrganic, itemProbability("NaturaSì", "latte bio"))
	assert.Equal(t, probSpecialtyItemElsewhere, itemProbability("Lidl", "latte bio"))
	assert.Equal(t, probSpecialtyItemElsewhere, itemProbability("Esselunga", "pane integrale"))
	assert.Equal(t, probSpecialtyItemElsewhere, itemProbability("Conad", "burger vegano"))
	assert.Equal(t, probSpecialtyItemAtOrganic, itemProbability("Bio Market", "yogurt naturale"))
}

func TestAvailableItems_SubsetAndOrder(t *testing.T) {
	estimator := NewAvailabilityEstimator(rand.New(rand.NewSource(42)))
	items := []string{"pasta", "latte", "pane", "olio", "riso"}

	found := estimator.AvailableItems("Esselunga", items)

	assert.LessOrEqual(t, len(found), len(items))
	// Found items must be a subsequence of the request list.
	i := 0
	for _, item := range items {
		if i < len(found) && found[i] == item {
			i++
		}
	}
	assert.Equal(t, len(found), i)
}

func TestAvailableItems_SeededReproducibility(t *testing.T) {
	items := []string{"pasta", "latte", "pane", "olio"}

	a := NewAvailabilityEstimator(rand.New(rand.NewSource(7)))
	b := NewAvailabilityEstimator(rand.New(rand.NewSource(7)))

	assert.Equal(t, a.AvailableItems("Conad", items), b.AvailableItems("Conad", items))
}

func TestAvailableItems_EmptyList(t *testing.T) {
	estimator := NewAvailabilityEstimator(rand.New(rand.NewSource(1)))

	assert.Empty(t, estimator.AvailableItems("Conad", nil))
}

func TestAvailableItems_RatesTrackProbability(t *testing.T) {
	// Over many draws the hit rate should sit near the configured
	// probability; loose bounds keep this stable across rand versions.
	estimator := NewAvailabilityEstimator(rand.New(rand.NewSource(99)))

	const trials = 5000
	hits := 0
	for i := 0; i < trials; i++ {
		if len(estimator.AvailableItems("Lidl", []string{"pasta"})) == 1 {
			hits++
		}
	}

	rate := float64(hits) / trials
	assert.InDelta(t, probDiscount, rate, 0.05)
}
