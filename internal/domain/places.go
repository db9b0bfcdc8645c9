package domain

// Wire types for the Google Geocoding and Places web services. Only the
// fields this service reads are declared.

// GeocodeResponse is the geocoding API envelope.
type GeocodeResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

// GeocodeResult is one entry of a geocoding response.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

// PlacesResponse is the envelope shared by nearby search and text search.
type PlacesResponse struct {
	Status  string  `json:"status"`
	Results []Place `json:"results"`
}

// Place is one place object from nearby or text search.
type Place struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Geometry         Geometry      `json:"geometry"`
	Vicinity         string        `json:"vicinity,omitempty"`
	FormattedAddress string        `json:"formatted_address,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Types            []string      `json:"types,omitempty"`
}

// Geometry wraps a place location.
type Geometry struct {
	Location Location `json:"location"`
}

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours carries the open-now flag when the API provides it.
type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}
