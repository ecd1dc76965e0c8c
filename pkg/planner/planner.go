package planner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
)

type Request struct {
	Origin      *ctdf.Location
	Destination *ctdf.Location

	OriginName      string
	DestinationName string

	// Zero means now
	DateTime time.Time
	Limits Limits

	Exclusions ctdf.ExclusionCriteria
}

// Key identifies the inputs that trigger a new search round. Exclusions are not part of
// it as they are applied to the merged results without querying again.
func (r Request) Key() string {
	maxTransfers := "-"
	if r.Limits.MaxTransfers != nil {
		maxTransfers = strconv.Itoa(*r.Limits.MaxTransfers)
	}

	return fmt.Sprintf("%s>%s@%s/%s/%d",
		locationKey(r.Origin), locationKey(r.Destination),
		r.DateTime.Format(time.RFC3339), maxTransfers, r.Limits.ResultCount,
	)
}

func locationKey(location *ctdf.Location) string {
	if location == nil {
		return "-"
	}

	return location.String()
}

type Planner struct {
	Executor *Executor
	Policy   ExclusionPolicy
	Bounds   Bounds

	Now func() time.Time
}

func NewPlanner(router Router, policy ExclusionPolicy, bounds Bounds) *Planner {
	return &Planner{
		Executor: &Executor{Router: router},
		Policy:   policy,
		Bounds:   bounds,
	}
}

func (p *Planner) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}

	return time.Now()
}

// Plan runs a complete search round. Failing variants and missing coordinates give
// fewer or no itineraries rather than an error, the only error is a cancelled context.
func (p *Planner) Plan(ctx context.Context, request Request) (*ctdf.JourneyPlanResults, error) {
	merged, err := p.Merge(ctx, request)
	if err != nil {
		return nil, err
	}

	return p.Filter(merged, request.Exclusions), nil
}

// Merge builds the variants, fans them out and deduplicates the itineraries
func (p *Planner) Merge(ctx context.Context, request Request) (*ctdf.JourneyPlanResults, error) {
	results := &ctdf.JourneyPlanResults{
		Itineraries:     []ctdf.Itinerary{},
		OriginName:      request.OriginName,
		DestinationName: request.DestinationName,
	}

	if request.Origin == nil || request.Destination == nil {
		return results, nil
	}

	results.Origin = *request.Origin
	results.Destination = *request.Destination

	at := request.DateTime
	if at.IsZero() {
		at = p.now()
	}

	queries := BuildVariants(request.Origin, request.Destination, at, request.Limits.apply(p.Bounds))
	results.Variants = len(queries)

	executor := p.Executor
	if executor == nil {
		executor = &Executor{}
	}

	round := executor.Run(ctx, queries, Labels{
		Origin:      request.OriginName,
		Destination: request.DestinationName,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results.FailedVariants = round.Failed
	results.Itineraries = Deduplicate(round.Itineraries)

	if len(round.Succeeded) == 0 {
		log.Warn().Str("key", request.Key()).Int("failed", len(round.Failed)).Msg("No trip query variant returned an itinerary")
	}

	return results, nil
}

// Filter applies the exclusions and ranking to a copy of merged results
func (p *Planner) Filter(merged *ctdf.JourneyPlanResults, criteria ctdf.ExclusionCriteria) *ctdf.JourneyPlanResults {
	filtered := *merged
	filtered.Itineraries = Rank(Exclude(merged.Itineraries, NewExclusionSet(criteria), p.Policy))

	return &filtered
}
