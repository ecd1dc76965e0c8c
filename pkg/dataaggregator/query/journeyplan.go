package query

import (
	"time"

	"github.com/travigo/navigator/pkg/ctdf"
)

type JourneyPlan struct {
	Origin      *ctdf.Location
	Destination *ctdf.Location

	OriginName      string
	DestinationName string

	DateTime time.Time
	// Nil keeps the configured maximum, zero asks for direct trips only
	MaxTransfers *int
	Count        int

	Exclusions ctdf.ExclusionCriteria
}
