package datalinker

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
)

// Feed keeps the incident markers of the latest catalogue snapshot
type Feed struct {
	Aliases *AliasTable

	current atomic.Pointer[IncidentResult]
}

func NewFeed(aliases *AliasTable) *Feed {
	feed := &Feed{Aliases: aliases}
	feed.current.Store(&IncidentResult{
		Markers:    []ctdf.IncidentMarker{},
		Unresolved: []UnresolvedIncident{},
	})

	return feed
}

// Update reconciles a new snapshot. Until both the stations and the hierarchy have
// loaded there is nothing to place incidents on.
func (f *Feed) Update(catalogue *ctdf.NetworkCatalogue) {
	if !catalogue.IsLoaded(ctdf.CataloguePartStations) || !catalogue.IsLoaded(ctdf.CataloguePartHierarchy) {
		return
	}

	result := ReconcileCatalogue(catalogue, f.Aliases)
	f.current.Store(&result)

	log.Info().Int("markers", len(result.Markers)).Int("unresolved", len(result.Unresolved)).Msg("Updated incident feed")
}

func (f *Feed) Current() *IncidentResult {
	return f.current.Load()
}
