package catalogue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/navigator/pkg/transforms"
)

const (
	hierarchyCacheKey   = "navigator/catalogue/hierarchy"
	stationsCacheKey    = "navigator/catalogue/stations"
	linesCacheKey       = "navigator/catalogue/lines"
	routePricesCacheKey = "navigator/catalogue/routeprices"
)

// Loader fills a Store from both backends. The parts load independently and a failed
// part stays empty.
type Loader struct {
	Aggregator *dataaggregator.Aggregator
	Cache      *cachedresults.Cache
	Store      *Store
}

func (l *Loader) aggregator() *dataaggregator.Aggregator {
	if l.Aggregator != nil {
		return l.Aggregator
	}

	return &dataaggregator.GlobalAggregator
}

// Start loads in the background, the returned channel receives the failures once every
// part has settled
func (l *Loader) Start(ctx context.Context) <-chan map[ctdf.CataloguePart]error {
	done := make(chan map[ctdf.CataloguePart]error, 1)

	go func() {
		done <- l.Load(ctx)
	}()

	return done
}

func (l *Loader) Load(ctx context.Context) map[ctdf.CataloguePart]error {
	var wg conc.WaitGroup

	var mutex sync.Mutex
	failures := map[ctdf.CataloguePart]error{}

	run := func(part ctdf.CataloguePart, load func(context.Context) error) {
		wg.Go(func() {
			startTime := time.Now()
			err := load(ctx)

			if err != nil {
				log.Error().Err(err).Str("part", string(part)).Msg("Failed to load network catalogue")

				mutex.Lock()
				failures[part] = err
				mutex.Unlock()

				return
			}

			log.Info().Str("part", string(part)).Dur("latency", time.Since(startTime)).Msg("Loaded network catalogue")
		})
	}

	run(ctdf.CataloguePartHierarchy, l.loadHierarchy)
	run(ctdf.CataloguePartStations, l.loadStations)
	run(ctdf.CataloguePartRoutePrices, l.loadRoutePrices)

	wg.Wait()

	return failures
}

func (l *Loader) loadHierarchy(ctx context.Context) error {
	agencies, err := cachedresults.Remember(ctx, l.Cache, hierarchyCacheKey, func(ctx context.Context) ([]ctdf.Agency, error) {
		return dataaggregator.LookupIn[[]ctdf.Agency](ctx, l.aggregator(), query.NetworkHierarchy{})
	})
	if err != nil {
		return err
	}

	transforms.Transform(agencies)

	l.Store.SetHierarchy(agencies)

	return nil
}

func (l *Loader) loadStations(ctx context.Context) error {
	var wg conc.WaitGroup
	var stations []ctdf.Station
	var lines []ctdf.Line
	var stationsErr, linesErr error

	wg.Go(func() {
		stations, stationsErr = cachedresults.Remember(ctx, l.Cache, stationsCacheKey, func(ctx context.Context) ([]ctdf.Station, error) {
			return dataaggregator.LookupIn[[]ctdf.Station](ctx, l.aggregator(), query.Stations{})
		})
	})
	wg.Go(func() {
		lines, linesErr = cachedresults.Remember(ctx, l.Cache, linesCacheKey, func(ctx context.Context) ([]ctdf.Line, error) {
			return dataaggregator.LookupIn[[]ctdf.Line](ctx, l.aggregator(), query.Lines{})
		})
	})
	wg.Wait()

	if stationsErr != nil {
		return stationsErr
	}
	if linesErr != nil {
		return linesErr
	}

	l.Store.SetStations(stations, lines)

	return nil
}

func (l *Loader) loadRoutePrices(ctx context.Context) error {
	routePrices, err := cachedresults.Remember(ctx, l.Cache, routePricesCacheKey, func(ctx context.Context) ([]ctdf.RoutePrice, error) {
		return dataaggregator.LookupIn[[]ctdf.RoutePrice](ctx, l.aggregator(), query.RoutePrices{})
	})
	if err != nil {
		return err
	}

	l.Store.SetRoutePrices(routePrices)

	return nil
}
