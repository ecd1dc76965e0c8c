package journeyplanner

import (
	"context"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/transforms"
)

// AggregatorRouter sends trip queries to whichever source answers itineraries
type AggregatorRouter struct {
	Aggregator *dataaggregator.Aggregator
}

func (r AggregatorRouter) PlanTrip(ctx context.Context, tripQuery ctdf.TripQuery) ([]ctdf.Itinerary, error) {
	aggregator := r.Aggregator
	if aggregator == nil {
		aggregator = &dataaggregator.GlobalAggregator
	}

	itineraries, err := dataaggregator.LookupIn[[]ctdf.Itinerary](ctx, aggregator, query.TripPlan{Query: tripQuery})
	if err != nil {
		return nil, err
	}

	transforms.Transform(itineraries)

	return itineraries, nil
}
