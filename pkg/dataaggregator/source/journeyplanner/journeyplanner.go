package journeyplanner

import (
	"context"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/dataaggregator/source"
	"github.com/travigo/navigator/pkg/planner"
	"github.com/travigo/navigator/pkg/util"
)

type Source struct {
	Planner *planner.Planner
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.JourneyPlanResults{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.JourneyPlan:
		return s.JourneyPlanQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

// NewPlanner builds a planner routed through router and configured from the environment
func NewPlanner(router planner.Router, env map[string]string) *planner.Planner {
	policy, err := planner.PolicyByName(env["TRAVIGO_EXCLUSION_POLICY"])
	if err != nil {
		log.Error().Err(err).Msg("Falling back to the observed exclusion policy")
		policy = planner.ObservedExclusionPolicy
	}

	bounds := planner.Bounds{
		MaxTransfers: util.GetEnvironmentInt(env, "TRAVIGO_MAX_TRANSFERS", planner.DefaultMaxTransfers),
		ResultCount:  util.GetEnvironmentInt(env, "TRAVIGO_RESULT_COUNT", planner.DefaultResultCount),
	}

	return planner.NewPlanner(router, policy, bounds)
}
