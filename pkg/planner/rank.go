package planner

import (
	"slices"

	"github.com/travigo/navigator/pkg/ctdf"
)

// Rank orders by total duration. Equal durations keep their input order.
func Rank(itineraries []ctdf.Itinerary) []ctdf.Itinerary {
	ranked := slices.Clone(itineraries)

	slices.SortStableFunc(ranked, func(a, b ctdf.Itinerary) int {
		switch {
		case a.Duration < b.Duration:
			return -1
		case a.Duration > b.Duration:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
