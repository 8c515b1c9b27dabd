package itinerary

import (
	"math"
	"sort"
)

// FilterPriced drops itineraries with no surviving price option. They have
// nothing to sort or display on.
func FilterPriced(items []Itinerary) []Itinerary {
	out := make([]Itinerary, 0, len(items))
	for _, it := range items {
		if len(it.PriceOptions) > 0 {
			out = append(out, it)
		}
	}
	return out
}

// SortByPrice orders itineraries by their first price option, cheapest
// first. The order is total: NaN sorts after every finite value, so the
// result is deterministic whatever the provider sends.
func SortByPrice(items []Itinerary) {
	sort.SliceStable(items, func(i, j int) bool {
		return priceLess(items[i].PriceOptions[0], items[j].PriceOptions[0])
	})
}

func priceLess(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a < b
}
