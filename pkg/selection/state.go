package selection

import (
	"fmt"
	"slices"
	"sync"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/util"
)

// State holds the cascading agency, route and station exclusion selections of one
// caller. Changing a level clears every level below it in the same update.
type State struct {
	mutex sync.RWMutex

	agencies []string
	routeIDs []string
	stations []ctdf.StationExclusion
}

func NewState() *State {
	return &State{}
}

func (s *State) SetAgencies(agencies []string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.agencies = util.RemoveDuplicateStrings(agencies, []string{})
	s.routeIDs = nil
	s.stations = nil
}

// SetRoutes replaces the route selection. Every route must belong to a selected agency.
func (s *State) SetRoutes(catalogue *ctdf.NetworkCatalogue, routeIDs []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	routeIDs = util.RemoveDuplicateStrings(routeIDs, []string{})
	available := RouteOptions(catalogue, s.agencies)

	for _, routeID := range routeIDs {
		if !slices.ContainsFunc(available, func(option RouteOption) bool { return option.RouteID == routeID }) {
			return fmt.Errorf("route %s is not served by a selected agency", routeID)
		}
	}

	s.routeIDs = routeIDs
	s.stations = nil

	return nil
}

// SetStations replaces the station selection. Every station must be served by the
// selected route it is paired with.
func (s *State) SetStations(catalogue *ctdf.NetworkCatalogue, stations []ctdf.StationExclusion) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, station := range stations {
		if !slices.Contains(s.routeIDs, station.RouteID) {
			return fmt.Errorf("station %s is paired with unselected route %s", station.StopID, station.RouteID)
		}

		if !routeServesStop(catalogue, station.RouteID, station.StopID) {
			return fmt.Errorf("route %s does not serve station %s", station.RouteID, station.StopID)
		}
	}

	s.stations = slices.Clone(stations)

	return nil
}

func (s *State) Criteria() ctdf.ExclusionCriteria {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return ctdf.ExclusionCriteria{
		Agencies: slices.Clone(s.agencies),
		RouteIDs: slices.Clone(s.routeIDs),
		Stations: slices.Clone(s.stations),
	}
}

func (s *State) RouteOptions(catalogue *ctdf.NetworkCatalogue) []RouteOption {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return RouteOptions(catalogue, s.agencies)
}

func (s *State) StationOptions(catalogue *ctdf.NetworkCatalogue) []StationOption {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return StationOptions(catalogue, s.routeIDs)
}

// Prune drops selections that no longer exist in a newer catalogue snapshot. Routes are
// only checked once the hierarchy has loaded.
func (s *State) Prune(catalogue *ctdf.NetworkCatalogue) {
	if !catalogue.IsLoaded(ctdf.CataloguePartHierarchy) {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	available := RouteOptions(catalogue, s.agencies)

	util.InPlaceFilter(&s.routeIDs, func(routeID string) bool {
		return slices.ContainsFunc(available, func(option RouteOption) bool { return option.RouteID == routeID })
	})

	util.InPlaceFilter(&s.stations, func(station ctdf.StationExclusion) bool {
		return slices.Contains(s.routeIDs, station.RouteID) && routeServesStop(catalogue, station.RouteID, station.StopID)
	})
}

func routeServesStop(catalogue *ctdf.NetworkCatalogue, routeID string, stopID string) bool {
	route, found := catalogue.FindRoute(routeID)
	if !found {
		return false
	}

	for _, pattern := range route.Patterns {
		for _, stop := range pattern.Stops {
			if stop.ID == stopID {
				return true
			}
		}
	}

	return false
}
