package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	p := orb.Point{9.0, 45.0}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := orb.Point{9.677, 45.698}
	b := orb.Point{9.19, 45.4642}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-12)
}

func TestDistanceKm_SmallOffsetApproachesZero(t *testing.T) {
	a := orb.Point{9.0, 45.0}

	prev := math.Inf(1)
	for _, eps := range []float64{1e-2, 1e-4, 1e-6, 1e-8} {
		b := orb.Point{9.0 + eps, 45.0 + eps}
		d := DistanceKm(a, b)
		assert.Less(t, d, prev)
		prev = d
	}
	assert.Less(t, prev, 1e-3)
}

func TestDistanceKm_KnownValue(t *testing.T) {
	// One hundredth of a degree in both axes near 45N is roughly 1.4 km.
	a := orb.Point{9.0, 45.0}
	b := orb.Point{9.01, 45.01}

	d := DistanceKm(a, b)
	assert.Greater(t, d, 1.3)
	assert.Less(t, d, 1.6)
}

func TestDistanceKm_BergamoMilan(t *testing.T) {
	bergamo := orb.Point{9.677, 45.698}
	milan := orb.Point{9.19, 45.4642}

	d := DistanceKm(bergamo, milan)
	assert.InDelta(t, 45.8, d, 1.5)
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.44, 1.4},
		{1.45, 1.5},
		{0.0, 0.0},
		{12.349, 12.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundKm(tt.in))
	}
}
