package usecase

import (
	"math"

	"github.com/cartfinder/backend/internal/domain"
)

// commonStores is the fixed reference list of regional grocery chains.
// The first three are used to widen sparse nearby-search results via text
// search; the first six seed the fallback generator.
var commonStores = []string{
	"Esselunga", "Conad", "Coop", "Carrefour", "Lidl", "Eurospin",
	"Pam", "MD", "Tigros", "Iper", "Iperal", "Sigma", "Selex",
	"Despar", "Fresco", "NaturaSì", "U2", "Bennet",
}

// newStoreRecord assembles a StoreRecord and its derived counts. It is
// the single place where the matched+missing==total invariant and the
// one-decimal match percentage are established.
func newStoreRecord(
	placeID, name, address string,
	distanceKm, rating float64,
	ratingsTotal int,
	itemsFound []string,
	totalItems int,
	openNow *bool,
	fallback bool,
) domain.StoreRecord {
	matched := len(itemsFound)

	return domain.StoreRecord{
		PlaceID:          placeID,
		Name:             name,
		Address:          address,
		DistanceKm:       round1(distanceKm),
		Rating:           rating,
		UserRatingsTotal: ratingsTotal,
		ItemsFound:       itemsFound,
		MatchedCount:     matched,
		MissingCount:     totalItems - matched,
		TotalItems:       totalItems,
		MatchPercentage:  round1(float64(matched) / float64(totalItems) * 100),
		HasAllItems:      matched == totalItems,
		OpenNow:          openNow,
		Fallback:         fallback,
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
