package query

import "github.com/travigo/navigator/pkg/ctdf"

type TripPlan struct {
	Query ctdf.TripQuery
}
