package google

import (
	"strings"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/paulmach/orb"
)

// Defaults applied when the places API omits a field.
const (
	DefaultRating       = 4.0
	DefaultRatingsTotal = 100
)

// PlacePoint extracts a place location as an orb.Point ([lng, lat]).
func PlacePoint(place *domain.Place) orb.Point {
	loc := place.Geometry.Location
	return orb.Point{loc.Lng, loc.Lat}
}

// PlaceAddress returns the best available address for a place, falling
// back to the explicit unavailable sentinel. Nearby search fills
// vicinity, text search fills formatted_address.
func PlaceAddress(place *domain.Place) string {
	address := place.Vicinity
	if strings.TrimSpace(address) == "" {
		address = place.FormattedAddress
	}
	if strings.TrimSpace(address) == "" {
		return domain.AddressUnavailable
	}
	return address
}

// PlaceRating returns the rating, or the default when the API omits it.
func PlaceRating(place *domain.Place) float64 {
	if place.Rating == nil {
		return DefaultRating
	}
	return *place.Rating
}

// PlaceRatingsTotal returns the review count, or the default when the
// API omits it.
func PlaceRatingsTotal(place *domain.Place) int {
	if place.UserRatingsTotal == nil {
		return DefaultRatingsTotal
	}
	return *place.UserRatingsTotal
}

// PlaceOpenNow returns the tri-state opening flag: nil when the API has
// no opening hours for the place.
func PlaceOpenNow(place *domain.Place) *bool {
	if place.OpeningHours == nil {
		return nil
	}
	return place.OpeningHours.OpenNow
}
