package planner

import (
	"time"

	"github.com/travigo/navigator/pkg/ctdf"
)

func walkLeg(from string, to string) ctdf.Leg {
	return ctdf.Leg{
		Mode: ctdf.TransportModeWalk,
		From: ctdf.Place{Name: from},
		To:   ctdf.Place{Name: to},
	}
}

func transitLeg(mode ctdf.TransportMode, routeID string, from string, fromStop string, to string, toStop string) ctdf.Leg {
	return ctdf.Leg{
		Mode:  mode,
		From:  ctdf.Place{Name: from, StopID: fromStop},
		To:    ctdf.Place{Name: to, StopID: toStop},
		Route: &ctdf.RouteRef{ID: routeID, ShortName: routeID},
	}
}

func itinerary(seconds int, legs ...ctdf.Leg) ctdf.Itinerary {
	return ctdf.Itinerary{
		Legs:     legs,
		Duration: time.Duration(seconds) * time.Second,
	}
}

func durations(itineraries []ctdf.Itinerary) []time.Duration {
	values := make([]time.Duration, 0, len(itineraries))
	for _, i := range itineraries {
		values = append(values, i.Duration)
	}

	return values
}
