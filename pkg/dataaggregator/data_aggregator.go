package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/dataaggregator/source"
	"golang.org/x/exp/slices"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

var NoMatchingSourceError = errors.New("Failed to find a matching Data Source for type")

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

func Lookup[T any](ctx context.Context, query any) (T, error) {
	return LookupIn[T](ctx, &GlobalAggregator, query)
}

// LookupIn asks every source supporting T in registration order. A source answering
// UnsupportedSourceError passes the query on to the next one.
func LookupIn[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range a.Sources {
		if !slices.Contains(dataSource.Supports(), lookupType) {
			continue
		}

		returnValue, returnError := dataSource.Lookup(ctx, query)

		if errors.Is(returnError, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, returnError
		}

		value, ok := returnValue.(T)
		if !ok {
			return empty, errors.New("Data Source returned an unexpected type")
		}

		return value, returnError
	}

	return empty, NoMatchingSourceError
}
