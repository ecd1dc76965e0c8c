package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/navigator/pkg/ctdf"
)

func stop(id string, name string) ctdf.Stop {
	return ctdf.Stop{ID: id, Name: name}
}

func testCatalogue() *ctdf.NetworkCatalogue {
	return &ctdf.NetworkCatalogue{
		Agencies: []ctdf.Agency{
			{
				ID:   "STC",
				Name: "Sistema de Transporte Colectivo",
				Routes: []ctdf.Route{
					{ID: "L2", ShortName: "2", LongName: "Cuatro Caminos - Tasqueña", Patterns: []ctdf.Pattern{
						{Stops: []ctdf.Stop{stop("zocalo", "Zócalo"), stop("allende", "Allende")}},
					}},
					{ID: "L1", ShortName: "1", LongName: "Observatorio - Pantitlán", Patterns: []ctdf.Pattern{
						{Stops: []ctdf.Stop{stop("balderas", "Balderas"), stop("pino", "Pino Suárez")}},
					}},
					{ID: "LA", ShortName: "A", LongName: "Pantitlán - La Paz"},
					{ID: "LB", ShortName: "b", LongName: "lowercase"},
				},
			},
			{
				ID:   "MB",
				Name: "Metrobús",
				Routes: []ctdf.Route{
					{ID: "MB4", ShortName: "4", LongName: "Buenavista - San Lázaro", Patterns: []ctdf.Pattern{
						{Stops: []ctdf.Stop{stop("pino", "Pino Suárez"), stop("bellas", "Bellas Artes")}},
					}},
				},
			},
		},
		Loaded: map[ctdf.CataloguePart]bool{ctdf.CataloguePartHierarchy: true},
	}
}

func routeIDs(options []RouteOption) []string {
	ids := []string{}
	for _, option := range options {
		ids = append(ids, option.RouteID)
	}

	return ids
}

func TestRouteOptions(t *testing.T) {
	catalogue := testCatalogue()

	assert.Equal(t, []string{"L1", "L2", "LA", "LB"}, routeIDs(RouteOptions(catalogue, []string{"Sistema de Transporte Colectivo"})))
	assert.Equal(t, []string{"MB4", "L1", "L2", "LA", "LB"}, routeIDs(RouteOptions(catalogue, []string{"Sistema de Transporte Colectivo", "Metrobús"})))
	assert.Empty(t, RouteOptions(catalogue, nil))
	assert.Empty(t, RouteOptions(nil, []string{"Metrobús"}))

	options := RouteOptions(catalogue, []string{"Metrobús"})
	assert.Equal(t, "4 - Buenavista - San Lázaro", options[0].DisplayName)
}

func TestStationOptions(t *testing.T) {
	catalogue := testCatalogue()

	options := StationOptions(catalogue, []string{"L1", "MB4"})

	names := []string{}
	for _, option := range options {
		names = append(names, option.RouteID+":"+option.Name)
	}

	// Pino Suárez is served by both and kept under the first route seen
	assert.Equal(t, []string{"MB4:Bellas Artes", "L1:Balderas", "L1:Pino Suárez"}, names)
	assert.Equal(t, "1 - Observatorio - Pantitlán", options[1].RouteDisplayName)
}

func TestStationOptionsWithoutStopIDs(t *testing.T) {
	catalogue := &ctdf.NetworkCatalogue{
		Agencies: []ctdf.Agency{{
			Name: "Cablebús",
			Routes: []ctdf.Route{
				{ID: "CB1", ShortName: "1", Patterns: []ctdf.Pattern{
					{Stops: []ctdf.Stop{stop("", "Indios Verdes"), stop("", "Campos Revolución")}},
					{Stops: []ctdf.Stop{stop("", "Campos Revolución")}},
				}},
				{ID: "CB2", ShortName: "2", Patterns: []ctdf.Pattern{
					{Stops: []ctdf.Stop{stop("", "Constitución de 1917")}},
				}},
			},
		}},
	}

	names := []string{}
	for _, option := range StationOptions(catalogue, []string{"CB1", "CB2"}) {
		names = append(names, option.RouteID+":"+option.Name)
	}

	assert.Equal(t, []string{"CB1:Campos Revolución", "CB1:Indios Verdes", "CB2:Constitución de 1917"}, names)
}

func TestAgencyCascade(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Metrobús"})
	assert.Equal(t, []string{"MB4"}, routeIDs(state.RouteOptions(catalogue)))

	require.NoError(t, state.SetRoutes(catalogue, []string{"MB4"}))
	require.NoError(t, state.SetStations(catalogue, []ctdf.StationExclusion{{RouteID: "MB4", StopID: "pino"}}))
	assert.Len(t, state.Criteria().Stations, 1)

	state.SetAgencies(nil)

	criteria := state.Criteria()
	assert.Empty(t, state.RouteOptions(catalogue))
	assert.Empty(t, state.StationOptions(catalogue))
	assert.Empty(t, criteria.RouteIDs)
	assert.Empty(t, criteria.Stations)
}

func TestSetRoutesClearsStations(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Sistema de Transporte Colectivo"})
	require.NoError(t, state.SetRoutes(catalogue, []string{"L1", "L2"}))
	require.NoError(t, state.SetStations(catalogue, []ctdf.StationExclusion{{RouteID: "L1", StopID: "balderas"}}))

	require.NoError(t, state.SetRoutes(catalogue, []string{"L1"}))
	assert.Empty(t, state.Criteria().Stations)
}

func TestSetRoutesRejectsUnselectedAgency(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Metrobús"})
	require.Error(t, state.SetRoutes(catalogue, []string{"L1"}))
	assert.Empty(t, state.Criteria().RouteIDs)
}

func TestSetStationsValidation(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Sistema de Transporte Colectivo"})
	require.NoError(t, state.SetRoutes(catalogue, []string{"L1"}))

	assert.Error(t, state.SetStations(catalogue, []ctdf.StationExclusion{{RouteID: "L2", StopID: "zocalo"}}))
	assert.Error(t, state.SetStations(catalogue, []ctdf.StationExclusion{{RouteID: "L1", StopID: "zocalo"}}))
	assert.Empty(t, state.Criteria().Stations)
}

func TestCriteriaIsCopy(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Metrobús"})
	require.NoError(t, state.SetRoutes(catalogue, []string{"MB4"}))

	criteria := state.Criteria()
	criteria.RouteIDs[0] = "changed"

	assert.Equal(t, []string{"MB4"}, state.Criteria().RouteIDs)
}

func TestPrune(t *testing.T) {
	catalogue := testCatalogue()
	state := NewState()

	state.SetAgencies([]string{"Sistema de Transporte Colectivo"})
	require.NoError(t, state.SetRoutes(catalogue, []string{"L1", "L2"}))
	require.NoError(t, state.SetStations(catalogue, []ctdf.StationExclusion{
		{RouteID: "L1", StopID: "balderas"},
		{RouteID: "L2", StopID: "zocalo"},
	}))

	updated := testCatalogue()
	updated.Agencies[0].Routes = updated.Agencies[0].Routes[1:]

	state.Prune(updated)

	criteria := state.Criteria()
	assert.Equal(t, []string{"L1"}, criteria.RouteIDs)
	assert.Equal(t, []ctdf.StationExclusion{{RouteID: "L1", StopID: "balderas"}}, criteria.Stations)

	// Partial snapshots never prune
	state.Prune(&ctdf.NetworkCatalogue{})
	assert.Equal(t, []string{"L1"}, state.Criteria().RouteIDs)
}
