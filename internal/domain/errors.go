package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGeocodeFailure is returned when the geocoding API cannot resolve a location
	ErrGeocodeFailure = errors.New("geocoding request failed")

	// ErrPlacesAPIFailure is returned when a places API request fails
	ErrPlacesAPIFailure = errors.New("places API request failed")

	// ErrNoStoresFound is returned when a search yields no store records at all
	ErrNoStoresFound = errors.New("no stores found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrNoResult is returned when no search result has been stored yet
	ErrNoResult = errors.New("no search result available")
)
