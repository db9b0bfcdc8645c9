package http

import (
	"fmt"
	"sort"
	"time"

	"github.com/cartfinder/backend/internal/domain"
)

// Chart colors shared with the dashboard frontend.
const (
	colorFull        = "#10B981"
	colorMissingOne  = "#F59E0B"
	colorMissingTwo  = "#EF4444"
	colorMissingMany = "#6B7280"
)

// SearchView is the response payload for one search: summary metrics,
// pre-computed chart series, and store cards split into the fully
// matching group and the rest.
type SearchView struct {
	ID          string                `json:"id"`
	Location    string                `json:"location"`
	OriginLat   float64               `json:"originLat"`
	OriginLng   float64               `json:"originLng"`
	Items       []string              `json:"items"`
	Summary     *domain.SearchSummary `json:"summary,omitempty"`
	Warnings    []string              `json:"warnings,omitempty"`
	Charts      ChartsView            `json:"charts"`
	Recommended []StoreCard           `json:"recommended"`
	Others      []StoreCard           `json:"others"`
	Timestamp   time.Time             `json:"timestamp"`
}

// ChartsView bundles the three dashboard figures as plain data series.
type ChartsView struct {
	MissingBuckets []PieSlice     `json:"missingBuckets"`
	RatingDistance []ScatterPoint `json:"ratingDistance"`
	ReviewBars     []Bar          `json:"reviewBars"`
}

// PieSlice is one bucket of the stores-by-missing-items pie chart.
type PieSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// ScatterPoint is one store on the rating-vs-distance scatter plot,
// colored by match band and sized by matched-item count.
type ScatterPoint struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	DistanceKm   float64 `json:"distanceKm"`
	MatchedCount int     `json:"matchedCount"`
	Band         string  `json:"band"`
	Color        string  `json:"color"`
	Size         int     `json:"size"`
}

// Bar is one store on the review-count bar chart.
type Bar struct {
	Label   string `json:"label"`
	Reviews int    `json:"reviews"`
}

// StoreCard is the rendered form of one store record.
type StoreCard struct {
	domain.StoreRecord
	Status string `json:"status"` // open, closed, or unknown
	Badge  string `json:"badge"`  // e.g. "3/5 items"
}

// BuildSearchView assembles the response view from a search result.
func BuildSearchView(result *domain.SearchResult) SearchView {
	recommended := make([]StoreCard, 0)
	others := make([]StoreCard, 0)

	for _, store := range result.Stores {
		card := newStoreCard(store)
		if store.HasAllItems {
			recommended = append(recommended, card)
		} else {
			others = append(others, card)
		}
	}

	// Partial matches are ranked by how much of the list they cover.
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].MatchedCount > others[j].MatchedCount
	})

	return SearchView{
		ID:          result.ID,
		Location:    result.Location,
		OriginLat:   result.OriginLat,
		OriginLng:   result.OriginLng,
		Items:       result.Items,
		Summary:     result.Summary,
		Warnings:    result.Warnings,
		Charts:      buildCharts(result.Stores),
		Recommended: recommended,
		Others:      others,
		Timestamp:   result.Timestamp,
	}
}

func newStoreCard(store domain.StoreRecord) StoreCard {
	return StoreCard{
		StoreRecord: store,
		Status:      openStatus(store.OpenNow),
		Badge:       fmt.Sprintf("%d/%d items", store.MatchedCount, store.TotalItems),
	}
}

// openStatus formats the tri-state opening flag.
func openStatus(openNow *bool) string {
	switch {
	case openNow == nil:
		return "unknown"
	case *openNow:
		return "open"
	default:
		return "closed"
	}
}

func buildCharts(stores []domain.StoreRecord) ChartsView {
	return ChartsView{
		MissingBuckets: missingBuckets(stores),
		RatingDistance: ratingDistance(stores),
		ReviewBars:     reviewBars(stores),
	}
}

// missingBuckets groups stores by how many requested items they miss.
func missingBuckets(stores []domain.StoreRecord) []PieSlice {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, store := range stores {
		label := bucketLabel(store.MissingCount)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	slices := make([]PieSlice, 0, len(order))
	for _, label := range order {
		slices = append(slices, PieSlice{
			Label: label,
			Count: counts[label],
			Color: bucketColorByLabel(label),
		})
	}
	return slices
}

func bucketLabel(missing int) string {
	switch missing {
	case 0:
		return "all items"
	case 1:
		return "1 item missing"
	default:
		return fmt.Sprintf("%d items missing", missing)
	}
}

func bucketColorByLabel(label string) string {
	switch label {
	case "all items":
		return colorFull
	case "1 item missing":
		return colorMissingOne
	case "2 items missing":
		return colorMissingTwo
	default:
		return colorMissingMany
	}
}

func ratingDistance(stores []domain.StoreRecord) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(stores))
	for _, store := range stores {
		band, color := matchBand(store.MissingCount)
		points = append(points, ScatterPoint{
			Name:         store.Name,
			Rating:       store.Rating,
			DistanceKm:   store.DistanceKm,
			MatchedCount: store.MatchedCount,
			Band:         band,
			Color:        color,
			Size:         store.MatchedCount * 20,
		})
	}
	return points
}

func matchBand(missing int) (string, string) {
	switch missing {
	case 0:
		return "full", colorFull
	case 1:
		return "missing-1", colorMissingOne
	case 2:
		return "missing-2", colorMissingTwo
	default:
		return "missing-many", colorMissingMany
	}
}

func reviewBars(stores []domain.StoreRecord) []Bar {
	bars := make([]Bar, 0, len(stores))
	for _, store := range stores {
		bars = append(bars, Bar{
			Label:   fmt.Sprintf("%s (%s)", truncate(store.Name, 15), truncate(store.Address, 10)),
			Reviews: store.UserRatingsTotal,
		})
	}
	return bars
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
