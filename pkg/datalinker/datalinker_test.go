package datalinker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/navigator/pkg/ctdf"
)

func aliases(t *testing.T) *AliasTable {
	t.Helper()

	table, err := DefaultAliasTable()
	require.NoError(t, err)

	return table
}

func TestReconcileIncidents(t *testing.T) {
	incidents := []ctdf.IncidentRecord{
		{StationID: 1, StationName: "Álamo", Description: "Escaleras fuera de servicio", LineID: 10},
		{StationID: 2, StationName: "Atlantis", Description: "Inundación", LineID: 10},
		{StationID: 3, StationName: "Bellas Artes", Description: "Cierre parcial", LineID: 99},
	}
	stops := []ctdf.StopGeometry{
		{StopID: "1:ALAMO", Name: "alamo ", Location: ctdf.Location{Latitude: 19.5, Longitude: -99.1}},
		{StopID: "2:ALAMO", Name: "ALAMO", Location: ctdf.Location{Latitude: 19.6, Longitude: -99.2}},
		{StopID: "1:BA", Name: "Bellas Artes", Location: ctdf.Location{Latitude: 19.43, Longitude: -99.14}},
	}
	lines := []ctdf.Line{{ID: 10, Name: "Línea 2", Transport: "Metro"}}

	result := ReconcileIncidents(incidents, stops, lines, aliases(t))

	require.Len(t, result.Markers, 2)

	alamo := result.Markers[0]
	assert.Equal(t, "1:ALAMO", alamo.Stop.StopID)
	assert.Equal(t, "Línea 2", alamo.LineName)
	assert.Equal(t, "Metro", alamo.TransportName)
	assert.Equal(t, "Sistema de Transporte Colectivo", alamo.AgencyName)

	bellas := result.Markers[1]
	assert.Equal(t, ctdf.UnknownTransportName, bellas.TransportName)
	assert.Equal(t, "", bellas.LineName)
	assert.Equal(t, "", bellas.AgencyName)

	require.Len(t, result.Unresolved, 1)
	assert.Equal(t, 2, result.Unresolved[0].Incident.StationID)
}

func TestReconcileIncidentsNothingToMatch(t *testing.T) {
	result := ReconcileIncidents([]ctdf.IncidentRecord{{StationName: "Atlantis"}}, nil, nil, nil)

	assert.Empty(t, result.Markers)
	assert.Len(t, result.Unresolved, 1)
}

func TestIncidentsFromStations(t *testing.T) {
	incidents := IncidentsFromStations([]ctdf.Station{
		{ID: 1, Name: "Zócalo", LineID: 2, Incident: "Cerrada por evento"},
		{ID: 2, Name: "Allende", LineID: 2},
	})

	assert.Equal(t, []ctdf.IncidentRecord{{StationID: 1, StationName: "Zócalo", Description: "Cerrada por evento", LineID: 2}}, incidents)
}

func TestStopsFromHierarchy(t *testing.T) {
	agencies := []ctdf.Agency{
		{Routes: []ctdf.Route{
			{Patterns: []ctdf.Pattern{
				{Stops: []ctdf.Stop{{ID: "a", Name: "Pino Suárez"}, {ID: "b", Name: "Zócalo"}}},
				{Stops: []ctdf.Stop{{ID: "b", Name: "Zócalo"}, {ID: "a", Name: "Pino Suárez"}}},
			}},
		}},
		{Routes: []ctdf.Route{
			{Patterns: []ctdf.Pattern{{Stops: []ctdf.Stop{{ID: "c", Name: "Pino Suárez"}}}}},
		}},
	}

	stops := StopsFromHierarchy(agencies)

	ids := []string{}
	for _, stop := range stops {
		ids = append(ids, stop.StopID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestStopsFromHierarchyWithoutIDs(t *testing.T) {
	agencies := []ctdf.Agency{
		{Routes: []ctdf.Route{
			{Patterns: []ctdf.Pattern{
				{Stops: []ctdf.Stop{
					{Name: "Pino Suárez", Location: ctdf.Location{Latitude: 19.425, Longitude: -99.133}},
					{Name: "Zócalo", Location: ctdf.Location{Latitude: 19.432, Longitude: -99.133}},
				}},
				{Stops: []ctdf.Stop{{Name: "Zócalo", Location: ctdf.Location{Latitude: 19.432, Longitude: -99.133}}}},
			}},
		}},
	}

	stops := StopsFromHierarchy(agencies)

	names := []string{}
	for _, stop := range stops {
		names = append(names, stop.Name)
	}
	assert.Equal(t, []string{"Pino Suárez", "Zócalo"}, names)

	result := ReconcileIncidents(
		[]ctdf.IncidentRecord{{StationName: "Zocalo", Description: "Acceso cerrado"}},
		stops, nil, aliases(t),
	)
	require.Len(t, result.Markers, 1)
	assert.Equal(t, "Zócalo", result.Markers[0].Stop.Name)
}

func TestReconcileCatalogue(t *testing.T) {
	catalogue := &ctdf.NetworkCatalogue{
		Agencies: []ctdf.Agency{{Routes: []ctdf.Route{{Patterns: []ctdf.Pattern{
			{Stops: []ctdf.Stop{{ID: "z", Name: "Zocalo"}}},
		}}}}},
		Stations: []ctdf.Station{{ID: 4, Name: "Zócalo", LineID: 2, Incident: "Marcha"}},
		Lines:    []ctdf.Line{{ID: 2, Name: "2", Transport: "Trolebús"}},
	}

	result := ReconcileCatalogue(catalogue, aliases(t))

	require.Len(t, result.Markers, 1)
	assert.Equal(t, "Servicio de Transportes Eléctricos", result.Markers[0].AgencyName)
}
