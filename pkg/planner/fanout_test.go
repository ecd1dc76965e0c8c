package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/navigator/pkg/ctdf"
)

func namedQueries(names ...string) []ctdf.TripQuery {
	queries := make([]ctdf.TripQuery, 0, len(names))
	for _, name := range names {
		queries = append(queries, ctdf.TripQuery{Name: name})
	}

	return queries
}

func TestExecutorPartialFailure(t *testing.T) {
	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		switch query.Name {
		case "b", "d":
			return nil, fmt.Errorf("variant %s unavailable", query.Name)
		default:
			return []ctdf.Itinerary{itinerary(600, walkLeg(query.Name, "end"))}, nil
		}
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("a", "b", "c", "d", "e"), Labels{})

	require.Len(t, round.Itineraries, 3)
	assert.Equal(t, []string{"a", "c", "e"}, round.Succeeded)
	assert.Equal(t, []string{"b", "d"}, round.Failed)

	for _, i := range round.Itineraries {
		assert.NotContains(t, []string{"b", "d"}, i.Variant)
		assert.NotContains(t, []string{"b", "d"}, i.Legs[0].From.Name)
	}
}

func TestExecutorPanicIsContained(t *testing.T) {
	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		if query.Name == "boom" {
			panic("routing client exploded")
		}

		return []ctdf.Itinerary{itinerary(60, walkLeg("a", "b"))}, nil
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("boom", "fine"), Labels{})

	assert.Len(t, round.Itineraries, 1)
	assert.Equal(t, []string{"boom"}, round.Failed)
}

func TestExecutorKeepsShortestPerVariant(t *testing.T) {
	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		return []ctdf.Itinerary{
			itinerary(900, walkLeg("a", "slow")),
			itinerary(300, walkLeg("a", "first")),
			itinerary(300, walkLeg("a", "second")),
		}, nil
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("walk"), Labels{})

	require.Len(t, round.Itineraries, 1)
	assert.Equal(t, "first", round.Itineraries[0].Legs[0].To.Name)
}

func TestExecutorEmptyVariant(t *testing.T) {
	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		return []ctdf.Itinerary{}, nil
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("ferry"), Labels{})

	assert.Empty(t, round.Itineraries)
	assert.Equal(t, []string{"ferry"}, round.Empty)
	assert.Empty(t, round.Failed)
}

func TestExecutorWaitsForAllAndKeepsVariantOrder(t *testing.T) {
	delays := map[string]time.Duration{"a": 30 * time.Millisecond, "b": 0, "c": 10 * time.Millisecond}

	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		time.Sleep(delays[query.Name])
		return []ctdf.Itinerary{itinerary(60, walkLeg(query.Name, "end"))}, nil
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("a", "b", "c"), Labels{})

	require.Len(t, round.Itineraries, 3)
	assert.Equal(t, "a", round.Itineraries[0].Variant)
	assert.Equal(t, "b", round.Itineraries[1].Variant)
	assert.Equal(t, "c", round.Itineraries[2].Variant)
}

func TestExecutorLabelsCopies(t *testing.T) {
	shared := []ctdf.Itinerary{itinerary(60, walkLeg("a", "b"), transitLeg(ctdf.TransportModeBus, "7", "b", "S1", "c", "S2"))}
	shared[0].Legs[1].Route.Color = "E4007C"

	router := RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		return shared, nil
	})

	executor := Executor{Router: router}
	round := executor.Run(context.Background(), namedQueries("walk"), Labels{Origin: "Casa", Destination: "Trabajo"})

	require.Len(t, round.Itineraries, 1)
	assert.Equal(t, "Casa", round.Itineraries[0].OriginName)
	assert.Equal(t, "Trabajo", round.Itineraries[0].DestinationName)

	round.Itineraries[0].Legs[0].From.Name = "changed"

	assert.Equal(t, "", shared[0].OriginName)
	assert.Equal(t, "", shared[0].Variant)
	assert.Equal(t, "a", shared[0].Legs[0].From.Name)

	require.Len(t, round.Itineraries[0].Legs, 2)
	assert.Equal(t, "E4007C", round.Itineraries[0].Legs[1].Route.Color)

	round.Itineraries[0].Legs[1].Route.Color = "000000"
	assert.Equal(t, "E4007C", shared[0].Legs[1].Route.Color)
	assert.NotSame(t, shared[0].Legs[1].Route, round.Itineraries[0].Legs[1].Route)
}

func TestExecutorWithoutRouter(t *testing.T) {
	executor := Executor{}
	round := executor.Run(context.Background(), namedQueries("transit"), Labels{})

	assert.Empty(t, round.Itineraries)
	assert.Equal(t, []string{"transit"}, round.Failed)
}

func TestExecutorNoQueries(t *testing.T) {
	executor := Executor{Router: RouterFunc(func(ctx context.Context, query ctdf.TripQuery) ([]ctdf.Itinerary, error) {
		return nil, errors.New("should not be called")
	})}

	round := executor.Run(context.Background(), nil, Labels{})
	assert.NotNil(t, round.Itineraries)
	assert.Empty(t, round.Itineraries)
}
