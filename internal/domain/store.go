package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// AddressUnavailable is the sentinel address used when the places API
// returns no usable address for a store.
const AddressUnavailable = "address unavailable"

// StoreRecord represents one store evaluated against a shopping list.
// MatchedCount+MissingCount always equals TotalItems, and MatchPercentage
// is MatchedCount/TotalItems*100 rounded to one decimal.
type StoreRecord struct {
	PlaceID          string   `json:"placeId"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	DistanceKm       float64  `json:"distanceKm"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"userRatingsTotal"`
	ItemsFound       []string `json:"itemsFound"`
	MatchedCount     int      `json:"matchedCount"`
	MissingCount     int      `json:"missingCount"`
	TotalItems       int      `json:"totalItems"`
	MatchPercentage  float64  `json:"matchPercentage"`
	HasAllItems      bool     `json:"hasAllItems"`
	// OpenNow is a tri-state: true (open), false (closed), nil (unknown).
	OpenNow *bool `json:"openNow,omitempty"`
	// Fallback marks records synthesized when the live API returned
	// too few results.
	Fallback bool `json:"fallback,omitempty"`
}

// SearchSummary holds aggregate statistics over one result set.
type SearchSummary struct {
	TotalStores        int     `json:"totalStores"`
	TotalItems         int     `json:"totalItems"`
	StoresWithAllItems int     `json:"storesWithAllItems"`
	AvgItemsPerStore   float64 `json:"avgItemsPerStore"`
	MaxItemsInStore    int     `json:"maxItemsInStore"`
	MinItemsInStore    int     `json:"minItemsInStore"`
	AvgDistanceKm      float64 `json:"avgDistanceKm"`
	AvgRating          float64 `json:"avgRating"`
}

// SearchResult is the full outcome of one search action. It replaces any
// previous result; nothing is persisted beyond process memory.
type SearchResult struct {
	ID        string         `json:"id"`
	Location  string         `json:"location"`
	Origin    orb.Point      `json:"-"` // orb.Point is [lng, lat]
	OriginLat float64        `json:"originLat"`
	OriginLng float64        `json:"originLng"`
	Items     []string       `json:"items"`
	Stores    []StoreRecord  `json:"stores"`
	Summary   *SearchSummary `json:"summary,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// SearchRequest represents a store search request.
type SearchRequest struct {
	Items         []string `json:"items"`
	ListText      string   `json:"listText,omitempty"`
	Location      string   `json:"location" binding:"required"`
	MaxDistanceKm float64  `json:"maxDistanceKm,omitempty"`
	SearchType    string   `json:"searchType,omitempty"`
}
