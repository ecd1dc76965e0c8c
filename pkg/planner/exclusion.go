package planner

import (
	"fmt"

	"github.com/travigo/navigator/pkg/ctdf"
)

type ExclusionSet struct {
	Routes   map[string]struct{}
	Stations map[string]struct{}
}

func NewExclusionSet(criteria ctdf.ExclusionCriteria) ExclusionSet {
	set := ExclusionSet{
		Routes:   map[string]struct{}{},
		Stations: map[string]struct{}{},
	}

	for _, routeID := range criteria.RouteIDs {
		set.Routes[routeID] = struct{}{}
	}

	for _, station := range criteria.Stations {
		set.Stations[station.StopID] = struct{}{}
	}

	return set
}

func (s ExclusionSet) HasRoute(id string) bool {
	if id == "" {
		return false
	}

	_, ok := s.Routes[id]
	return ok
}

func (s ExclusionSet) HasStation(id string) bool {
	if id == "" {
		return false
	}

	_, ok := s.Stations[id]
	return ok
}

func (s ExclusionSet) IsEmpty() bool {
	return len(s.Routes) == 0 && len(s.Stations) == 0
}

// ExclusionPolicy reports whether a single leg disqualifies its itinerary
type ExclusionPolicy func(leg *ctdf.Leg, exclusions ExclusionSet) bool

// ObservedExclusionPolicy only honours a station exclusion when the leg also rides an
// excluded route, so a bare station exclusion never removes anything.
func ObservedExclusionPolicy(leg *ctdf.Leg, exclusions ExclusionSet) bool {
	routeExcluded := exclusions.HasRoute(leg.RouteID())
	stationExcluded := exclusions.HasStation(leg.From.StopID) || exclusions.HasStation(leg.To.StopID)

	return routeExcluded || (stationExcluded && routeExcluded)
}

// StationExclusionPolicy removes any leg that rides an excluded route or touches an
// excluded station
func StationExclusionPolicy(leg *ctdf.Leg, exclusions ExclusionSet) bool {
	if exclusions.HasRoute(leg.RouteID()) {
		return true
	}

	return exclusions.HasStation(leg.From.StopID) || exclusions.HasStation(leg.To.StopID)
}

func PolicyByName(name string) (ExclusionPolicy, error) {
	switch name {
	case "", "observed":
		return ObservedExclusionPolicy, nil
	case "station":
		return StationExclusionPolicy, nil
	default:
		return nil, fmt.Errorf("unknown exclusion policy %q", name)
	}
}

// Exclude keeps the itineraries where every leg passes the policy, preserving order
func Exclude(itineraries []ctdf.Itinerary, exclusions ExclusionSet, policy ExclusionPolicy) []ctdf.Itinerary {
	if policy == nil {
		policy = ObservedExclusionPolicy
	}

	kept := make([]ctdf.Itinerary, 0, len(itineraries))

	for _, itinerary := range itineraries {
		if exclusions.IsEmpty() || legsClear(itinerary.Legs, exclusions, policy) {
			kept = append(kept, itinerary)
		}
	}

	return kept
}

func legsClear(legs []ctdf.Leg, exclusions ExclusionSet, policy ExclusionPolicy) bool {
	for i := range legs {
		if policy(&legs[i], exclusions) {
			return false
		}
	}

	return true
}
