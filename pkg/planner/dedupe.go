package planner

import "github.com/travigo/navigator/pkg/ctdf"

// Deduplicate drops itineraries whose signature was already seen, keeping the first one
func Deduplicate(itineraries []ctdf.Itinerary) []ctdf.Itinerary {
	seen := map[string]struct{}{}
	unique := make([]ctdf.Itinerary, 0, len(itineraries))

	for _, itinerary := range itineraries {
		signature := itinerary.Signature()

		if _, exists := seen[signature]; exists {
			continue
		}

		seen[signature] = struct{}{}
		unique = append(unique, itinerary)
	}

	return unique
}
