package datalinker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/navigator/pkg/ctdf"
)

func testLineIndex(t *testing.T) *LineIndex {
	return NewLineIndex(&ctdf.NetworkCatalogue{
		Lines: []ctdf.Line{
			{ID: 1, Name: "Línea 1", Transport: "Metro"},
			{ID: 2, Name: "Línea A", Transport: "Metro"},
			{ID: 20, Name: "Corredor Insurgentes", Transport: "Metrobús"},
			{ID: 21, Name: "Corredor Eje 4", Transport: "Metrobús"},
			{ID: 30, Name: "34", Transport: "RTP"},
			{ID: 31, Name: "200", Transport: "RTP"},
			{ID: 40, Name: "Línea 1", Transport: "Pesero"},
		},
		RoutePrices: []ctdf.RoutePrice{
			{ID: 100, Name: "Línea 14 Tlatelolco - Cuatro Caminos", LineID: 21},
			{ID: 101, Name: "Línea 4 Buenavista - San Lázaro", LineID: 21},
			{ID: 102, Name: "Línea 1 Indios Verdes - El Caminero", LineID: 20},
		},
	}, aliases(t))
}

func TestResolveRouteExact(t *testing.T) {
	index := testLineIndex(t)

	line, found := index.ResolveRoute(ctdf.RouteRef{AgencyName: "Sistema de Transporte Colectivo", ShortName: "A", LongName: "Linea A"})
	assert.True(t, found)
	assert.Equal(t, 2, line.ID)

	_, found = index.ResolveRoute(ctdf.RouteRef{AgencyName: "Sistema de Transporte Colectivo", ShortName: "9"})
	assert.False(t, found)
}

func TestResolveRouteWord(t *testing.T) {
	index := testLineIndex(t)

	line, found := index.ResolveRoute(ctdf.RouteRef{AgencyName: "Metrobús", ShortName: "4"})
	assert.True(t, found)
	assert.Equal(t, 21, line.ID)

	line, found = index.ResolveRoute(ctdf.RouteRef{AgencyName: "Metrobús", ShortName: "1"})
	assert.True(t, found)
	assert.Equal(t, 20, line.ID)

	_, found = index.ResolveRoute(ctdf.RouteRef{AgencyName: "Metrobús", ShortName: "7"})
	assert.False(t, found)
}

func TestWordPatternIsReused(t *testing.T) {
	first, err := wordPattern("4")
	assert.NoError(t, err)
	second, err := wordPattern("4")
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.MatchString("linea 4 buenavista"))
	assert.False(t, first.MatchString("linea 14 tlatelolco"))
}

func TestResolveRouteNumeric(t *testing.T) {
	index := testLineIndex(t)

	line, found := index.ResolveRoute(ctdf.RouteRef{AgencyName: "Red de Transporte de Pasajeros", ShortName: "34A"})
	assert.True(t, found)
	assert.Equal(t, 30, line.ID)

	_, found = index.ResolveRoute(ctdf.RouteRef{AgencyName: "Red de Transporte de Pasajeros", ShortName: "Express 200"})
	assert.False(t, found)
}

func TestResolveRouteUnmappedAgency(t *testing.T) {
	index := testLineIndex(t)

	_, found := index.ResolveRoute(ctdf.RouteRef{AgencyName: "Pesero", ShortName: "Línea 1", LongName: "Línea 1"})
	assert.False(t, found)
}
