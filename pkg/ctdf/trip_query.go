package ctdf

import "time"

// TripQuery is one mode-constrained request to the routing service.
// A fixed set of variants is built for every search round.
type TripQuery struct {
	Name string

	Origin      Location
	Destination Location

	DateTime time.Time

	MaxTransfers int
	ResultCount  int

	Modes []TransportMode
}

func (q TripQuery) AllowsMode(mode TransportMode) bool {
	for _, m := range q.Modes {
		if m == mode {
			return true
		}
	}

	return false
}
