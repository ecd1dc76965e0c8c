package planner

import (
	"strings"
	"time"

	"github.com/travigo/navigator/pkg/ctdf"
)

const (
	DefaultMaxTransfers = 3
	DefaultResultCount  = 5
)

type Bounds struct {
	MaxTransfers int
	ResultCount  int
}

func DefaultBounds() Bounds {
	return Bounds{
		MaxTransfers: DefaultMaxTransfers,
		ResultCount:  DefaultResultCount,
	}
}

func (b Bounds) normalised() Bounds {
	if b.MaxTransfers < 0 {
		b.MaxTransfers = DefaultMaxTransfers
	}
	if b.ResultCount <= 0 {
		b.ResultCount = DefaultResultCount
	}

	return b
}

// Limits overrides the planner bounds for a single request. A nil MaxTransfers or a
// zero ResultCount keeps the planner's own value for that field.
type Limits struct {
	MaxTransfers *int
	ResultCount  int
}

func (l Limits) apply(bounds Bounds) Bounds {
	if l.MaxTransfers != nil {
		bounds.MaxTransfers = *l.MaxTransfers
	}
	if l.ResultCount > 0 {
		bounds.ResultCount = l.ResultCount
	}

	return bounds
}

type variant struct {
	name  string
	modes []ctdf.TransportMode
}

// Every transit mode needs its own entry here, the list is sent as-is on every search
var variants = buildVariantTable()

func buildVariantTable() []variant {
	table := []variant{
		{name: "transit", modes: []ctdf.TransportMode{ctdf.TransportModeTransit, ctdf.TransportModeWalk}},
		{name: "walk", modes: []ctdf.TransportMode{ctdf.TransportModeWalk}},
	}

	for _, mode := range ctdf.AllTransitModes {
		table = append(table, variant{
			name:  strings.ToLower(string(mode)),
			modes: []ctdf.TransportMode{mode, ctdf.TransportModeWalk},
		})
	}

	return append(table,
		variant{name: "bus-subway", modes: []ctdf.TransportMode{ctdf.TransportModeBus, ctdf.TransportModeSubway, ctdf.TransportModeWalk}},
		variant{name: "subway-tram", modes: []ctdf.TransportMode{ctdf.TransportModeSubway, ctdf.TransportModeTram, ctdf.TransportModeWalk}},
	)
}

func VariantCount() int {
	return len(variants)
}

// BuildVariants returns the fixed battery of trip queries for one search round.
// Nothing is built when either endpoint is missing.
func BuildVariants(origin *ctdf.Location, destination *ctdf.Location, at time.Time, bounds Bounds) []ctdf.TripQuery {
	if origin == nil || destination == nil {
		return []ctdf.TripQuery{}
	}

	bounds = bounds.normalised()

	queries := make([]ctdf.TripQuery, 0, len(variants))
	for _, v := range variants {
		queries = append(queries, ctdf.TripQuery{
			Name:         v.name,
			Origin:       *origin,
			Destination:  *destination,
			DateTime:     at,
			MaxTransfers: bounds.MaxTransfers,
			ResultCount:  bounds.ResultCount,
			Modes:        append([]ctdf.TransportMode(nil), v.modes...),
		})
	}

	return queries
}
