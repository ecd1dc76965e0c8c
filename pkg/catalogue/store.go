package catalogue

import (
	"maps"
	"sync"
	"sync/atomic"

	"github.com/travigo/navigator/pkg/ctdf"
)

// Store publishes immutable catalogue snapshots. Each update swaps in a new snapshot so
// readers never observe a partially written one.
type Store struct {
	current atomic.Pointer[ctdf.NetworkCatalogue]

	mutex       sync.Mutex
	subscribers []func(*ctdf.NetworkCatalogue)

	// Held while notifying so subscribers see snapshots in publish order
	notifyMutex sync.Mutex
}

func NewStore() *Store {
	store := &Store{}
	store.current.Store(&ctdf.NetworkCatalogue{
		Agencies:    []ctdf.Agency{},
		Stations:    []ctdf.Station{},
		Lines:       []ctdf.Line{},
		RoutePrices: []ctdf.RoutePrice{},
		Loaded:      map[ctdf.CataloguePart]bool{},
	})

	return store
}

func (s *Store) Snapshot() *ctdf.NetworkCatalogue {
	return s.current.Load()
}

// Subscribe registers fn to be called with every new snapshot. Snapshots are delivered
// one at a time in the order they were published, fn must not update the store.
func (s *Store) Subscribe(fn func(*ctdf.NetworkCatalogue)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) update(part ctdf.CataloguePart, apply func(*ctdf.NetworkCatalogue)) *ctdf.NetworkCatalogue {
	s.mutex.Lock()

	next := *s.current.Load()
	next.Loaded = maps.Clone(next.Loaded)
	apply(&next)
	next.Loaded[part] = true

	s.current.Store(&next)
	subscribers := append([]func(*ctdf.NetworkCatalogue){}, s.subscribers...)

	s.notifyMutex.Lock()
	defer s.notifyMutex.Unlock()

	s.mutex.Unlock()

	for _, subscriber := range subscribers {
		subscriber(&next)
	}

	return &next
}

func (s *Store) SetHierarchy(agencies []ctdf.Agency) *ctdf.NetworkCatalogue {
	return s.update(ctdf.CataloguePartHierarchy, func(c *ctdf.NetworkCatalogue) {
		c.Agencies = agencies
	})
}

func (s *Store) SetStations(stations []ctdf.Station, lines []ctdf.Line) *ctdf.NetworkCatalogue {
	return s.update(ctdf.CataloguePartStations, func(c *ctdf.NetworkCatalogue) {
		c.Stations = stations
		c.Lines = lines
	})
}

func (s *Store) SetRoutePrices(routePrices []ctdf.RoutePrice) *ctdf.NetworkCatalogue {
	return s.update(ctdf.CataloguePartRoutePrices, func(c *ctdf.NetworkCatalogue) {
		c.RoutePrices = routePrices
	})
}
