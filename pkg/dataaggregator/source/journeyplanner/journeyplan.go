package journeyplanner

import (
	"context"
	"errors"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/planner"
)

func (s Source) JourneyPlanQuery(ctx context.Context, q query.JourneyPlan) (*ctdf.JourneyPlanResults, error) {
	if s.Planner == nil {
		return nil, errors.New("journey planner has no planner configured")
	}

	return s.Planner.Plan(ctx, planner.Request{
		Origin:          q.Origin,
		Destination:     q.Destination,
		OriginName:      q.OriginName,
		DestinationName: q.DestinationName,
		DateTime:        q.DateTime,
		Limits: planner.Limits{
			MaxTransfers: q.MaxTransfers,
			ResultCount:  q.Count,
		},
		Exclusions: q.Exclusions,
	})
}
