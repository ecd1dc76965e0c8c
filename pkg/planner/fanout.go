package planner

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/navigator/pkg/ctdf"
)

// Router executes a single trip query against the routing service
type Router interface {
	PlanTrip(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error)
}

type RouterFunc func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error)

func (f RouterFunc) PlanTrip(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
	return f(ctx, query)
}

// Labels are display names attached to every itinerary of a round
type Labels struct {
	Origin      string
	Destination string
}

type Round struct {
	Itineraries []ctdf.Itinerary

	Succeeded []string
	Failed    []string
	Empty     []string
}

type Executor struct {
	Router Router
}

type variantResult struct {
	index     int
	itinerary *ctdf.Itinerary
	err       error
}

// Run issues every query concurrently and waits for all of them to settle. A variant
// that errors or finds nothing is logged and contributes no itinerary.
func (e *Executor) Run(ctx context.Context, queries []ctdf.TripQuery, labels Labels) Round {
	round := Round{
		Itineraries: []ctdf.Itinerary{},
	}

	if len(queries) == 0 {
		return round
	}

	startTime := time.Now()

	p := pool.NewWithResults[variantResult]().WithMaxGoroutines(len(queries))

	for index, query := range queries {
		p.Go(func() variantResult {
			result := variantResult{index: index}

			var catcher panics.Catcher
			catcher.Try(func() {
				result.itinerary, result.err = e.planVariant(ctx, query)
			})
			if recovered := catcher.Recovered(); recovered != nil {
				result.err = recovered.AsError()
			}

			return result
		})
	}

	results := p.Wait()
	slices.SortFunc(results, func(a, b variantResult) int {
		return a.index - b.index
	})

	for _, result := range results {
		query := queries[result.index]

		switch {
		case result.err != nil:
			log.Error().Err(result.err).Str("variant", query.Name).Msg("Trip query variant failed")
			round.Failed = append(round.Failed, query.Name)
		case result.itinerary == nil:
			log.Debug().Str("variant", query.Name).Msg("Trip query variant returned no itineraries")
			round.Empty = append(round.Empty, query.Name)
		default:
			round.Succeeded = append(round.Succeeded, query.Name)
			round.Itineraries = append(round.Itineraries, labelled(*result.itinerary, query.Name, labels))
		}
	}

	log.Debug().
		Int("variants", len(queries)).
		Int("itineraries", len(round.Itineraries)).
		Int("failed", len(round.Failed)).
		Dur("latency", time.Since(startTime)).
		Msg("Trip query round complete")

	return round
}

func (e *Executor) planVariant(ctx context.Context, query ctdf.TripQuery) (*ctdf.Itinerary, error) {
	if e.Router == nil {
		return nil, fmt.Errorf("no router configured")
	}

	itineraries, err := e.Router.PlanTrip(ctx, query)
	if err != nil {
		return nil, err
	}

	return shortest(itineraries), nil
}

// shortest keeps the first of equally short itineraries
func shortest(itineraries []ctdf.Itinerary) *ctdf.Itinerary {
	var best *ctdf.Itinerary

	for i := range itineraries {
		if best == nil || itineraries[i].Duration < best.Duration {
			best = &itineraries[i]
		}
	}

	return best
}

// labelled returns a copy so the router's own results are never written to
func labelled(itinerary ctdf.Itinerary, variantName string, labels Labels) ctdf.Itinerary {
	var result ctdf.Itinerary
	if err := copier.CopyWithOption(&result, &itinerary, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Str("variant", variantName).Msg("Failed to copy itinerary")

		result = itinerary
		result.Legs = make([]ctdf.Leg, len(itinerary.Legs))
		for i, leg := range itinerary.Legs {
			result.Legs[i] = leg
			if leg.Route != nil {
				route := *leg.Route
				result.Legs[i].Route = &route
			}
		}
	}

	result.Variant = variantName
	result.OriginName = labels.Origin
	result.DestinationName = labels.Destination

	return result
}
