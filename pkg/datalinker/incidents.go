package datalinker

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
)

type UnresolvedIncident struct {
	Incident ctdf.IncidentRecord `groups:"basic"`
	Reason   string              `groups:"basic"`
}

type IncidentResult struct {
	Markers    []ctdf.IncidentMarker `groups:"basic"`
	Unresolved []UnresolvedIncident  `groups:"detailed"`
}

// IncidentsFromStations lists the stations currently reporting an incident
func IncidentsFromStations(stations []ctdf.Station) []ctdf.IncidentRecord {
	incidents := []ctdf.IncidentRecord{}

	for _, station := range stations {
		if station.Incident == "" {
			continue
		}

		incidents = append(incidents, ctdf.IncidentRecord{
			StationID:   station.ID,
			StationName: station.Name,
			Description: station.Incident,
			LineID:      station.LineID,
		})
	}

	return incidents
}

// stopKey identifies a stop by id, or by name and position for stops without one
func stopKey(stop ctdf.Stop) string {
	if stop.ID != "" {
		return stop.ID
	}

	return "\x00" + stop.Name + "@" + stop.Location.String()
}

// StopsFromHierarchy flattens the pattern stops of every route, each stop once
func StopsFromHierarchy(agencies []ctdf.Agency) []ctdf.StopGeometry {
	stops := []ctdf.StopGeometry{}
	seen := map[string]struct{}{}

	for _, agency := range agencies {
		for _, route := range agency.Routes {
			for _, pattern := range route.Patterns {
				for _, stop := range pattern.Stops {
					key := stopKey(stop)
					if _, exists := seen[key]; exists {
						continue
					}
					seen[key] = struct{}{}

					stops = append(stops, ctdf.StopGeometry{
						StopID:   stop.ID,
						Name:     stop.Name,
						Location: stop.Location,
					})
				}
			}
		}
	}

	return stops
}

// ReconcileIncidents places incidents on the stop sharing their normalized station name.
// When several stops share a name the first one is used. Incidents without a stop are
// returned as unresolved rather than as markers.
func ReconcileIncidents(incidents []ctdf.IncidentRecord, stops []ctdf.StopGeometry, lines []ctdf.Line, aliases *AliasTable) IncidentResult {
	result := IncidentResult{
		Markers:    []ctdf.IncidentMarker{},
		Unresolved: []UnresolvedIncident{},
	}

	stopsByName := map[string]ctdf.StopGeometry{}
	for _, stop := range stops {
		name := Normalize(stop.Name)
		if _, exists := stopsByName[name]; !exists && name != "" {
			stopsByName[name] = stop
		}
	}

	linesByID := map[int]ctdf.Line{}
	for _, line := range lines {
		linesByID[line.ID] = line
	}

	for _, incident := range incidents {
		stop, found := stopsByName[Normalize(incident.StationName)]
		if !found {
			log.Warn().
				Int("station", incident.StationID).
				Str("name", incident.StationName).
				Msg("No stop matches incident station, skipping")

			result.Unresolved = append(result.Unresolved, UnresolvedIncident{
				Incident: incident,
				Reason:   "no stop matches station name",
			})
			continue
		}

		marker := ctdf.IncidentMarker{
			Incident:      incident,
			Stop:          stop,
			TransportName: ctdf.UnknownTransportName,
		}

		if line, found := linesByID[incident.LineID]; found {
			marker.LineName = line.Name
			if line.Transport != "" {
				marker.TransportName = line.Transport
			}
		}

		if agency, found := aliases.ResolveAgency(marker.TransportName); found {
			marker.AgencyName = agency
		}

		result.Markers = append(result.Markers, marker)
	}

	return result
}

// ReconcileCatalogue reconciles the incidents of a catalogue snapshot
func ReconcileCatalogue(catalogue *ctdf.NetworkCatalogue, aliases *AliasTable) IncidentResult {
	return ReconcileIncidents(
		IncidentsFromStations(catalogue.Stations),
		StopsFromHierarchy(catalogue.Agencies),
		catalogue.Lines,
		aliases,
	)
}
