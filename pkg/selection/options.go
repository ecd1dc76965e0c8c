package selection

import (
	"cmp"
	"slices"
	"strings"

	"github.com/travigo/navigator/pkg/ctdf"
)

type RouteOption struct {
	AgencyName  string `groups:"basic"`
	RouteID     string `groups:"basic"`
	ShortName   string `groups:"basic"`
	LongName    string `groups:"basic"`
	DisplayName string `groups:"basic"`
}

type StationOption struct {
	AgencyName       string `groups:"basic"`
	RouteID          string `groups:"basic"`
	RouteDisplayName string `groups:"basic"`
	StopID           string `groups:"basic"`
	Name             string `groups:"basic"`
}

// RouteOptions lists the routes of the given agencies ordered by agency then short name.
// Names are compared as provided by the source.
func RouteOptions(catalogue *ctdf.NetworkCatalogue, agencies []string) []RouteOption {
	options := []RouteOption{}

	if catalogue == nil || len(agencies) == 0 {
		return options
	}

	for _, agency := range catalogue.Agencies {
		if !slices.Contains(agencies, agency.Name) {
			continue
		}

		for _, route := range agency.Routes {
			options = append(options, RouteOption{
				AgencyName:  agency.Name,
				RouteID:     route.ID,
				ShortName:   route.ShortName,
				LongName:    route.LongName,
				DisplayName: route.DisplayName(),
			})
		}
	}

	slices.SortStableFunc(options, func(a, b RouteOption) int {
		return cmp.Or(
			strings.Compare(a.AgencyName, b.AgencyName),
			strings.Compare(a.ShortName, b.ShortName),
		)
	})

	return options
}

// StationOptions lists the stops served by the given routes. A stop served by more than
// one selected route is listed once under the first route found.
func StationOptions(catalogue *ctdf.NetworkCatalogue, routeIDs []string) []StationOption {
	options := []StationOption{}

	if catalogue == nil || len(routeIDs) == 0 {
		return options
	}

	seen := map[string]struct{}{}

	for _, agency := range catalogue.Agencies {
		for _, route := range agency.Routes {
			if !slices.Contains(routeIDs, route.ID) {
				continue
			}

			for _, pattern := range route.Patterns {
				for _, stop := range pattern.Stops {
					// Stops without an id are only merged with same-named stops of their route
					key := stop.ID
					if key == "" {
						key = "\x00" + route.ID + "\x00" + stop.Name
					}

					if _, exists := seen[key]; exists {
						continue
					}
					seen[key] = struct{}{}

					options = append(options, StationOption{
						AgencyName:       agency.Name,
						RouteID:          route.ID,
						RouteDisplayName: route.DisplayName(),
						StopID:           stop.ID,
						Name:             stop.Name,
					})
				}
			}
		}
	}

	slices.SortStableFunc(options, func(a, b StationOption) int {
		return cmp.Or(
			strings.Compare(a.AgencyName, b.AgencyName),
			strings.Compare(a.RouteDisplayName, b.RouteDisplayName),
			strings.Compare(a.Name, b.Name),
		)
	})

	return options
}
