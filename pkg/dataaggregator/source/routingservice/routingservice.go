package routingservice

import (
	"context"
	"reflect"

	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/dataaggregator/query"
	"github.com/travigo/navigator/pkg/dataaggregator/source"
)

// Source talks to the routing service GraphQL endpoint for both trip plans and the
// static agency/route/stop hierarchy
type Source struct {
	URL string

	// Optional, the default client is used otherwise
	HTTPClient HTTPDoer
}

func (s Source) GetName() string {
	return "Routing Service"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]ctdf.Itinerary{}),
		reflect.TypeOf([]ctdf.Agency{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.TripPlan:
		return s.TripPlanQuery(ctx, q)
	case query.NetworkHierarchy:
		return s.NetworkHierarchyQuery(ctx)
	default:
		return nil, source.UnsupportedSourceError
	}
}
