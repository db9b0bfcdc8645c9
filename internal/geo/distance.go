// Package geo provides the great-circle math used to rank stores by
// distance from the searched location.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometers between two
// points. orb.Point is [lng, lat].
func DistanceKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180.0
	lat2 := b.Lat() * math.Pi / 180.0
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180.0
	dLng := (b.Lon() - a.Lon()) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal, the precision shown on
// store cards and used in summaries.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
