package planner

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/ctdf"
)

var ErrSuperseded = errors.New("search round superseded by a newer one")

// Session tracks the latest search round of one caller. Starting a round cancels the one
// in flight and results of an older round are never returned.
type Session struct {
	Planner *Planner

	mutex      sync.Mutex
	generation uint64
	cancel     context.CancelFunc

	key      string
	merged   *ctdf.JourneyPlanResults
	criteria ctdf.ExclusionCriteria
}

func NewSession(planner *Planner) *Session {
	return &Session{Planner: planner}
}

func (s *Session) Plan(ctx context.Context, request Request) (*ctdf.JourneyPlanResults, error) {
	s.mutex.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	generation := s.generation

	roundContext, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mutex.Unlock()

	defer cancel()

	merged, err := s.Planner.Merge(roundContext, request)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if generation != s.generation {
		log.Debug().Str("key", request.Key()).Msg("Discarding superseded search round")
		return nil, ErrSuperseded
	}

	s.cancel = nil

	if err != nil {
		return nil, err
	}

	s.key = request.Key()
	s.merged = merged
	s.criteria = request.Exclusions

	return s.Planner.Filter(merged, request.Exclusions), nil
}

// Refilter applies new exclusions to the latest round without querying again
func (s *Session) Refilter(criteria ctdf.ExclusionCriteria) (*ctdf.JourneyPlanResults, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.merged == nil {
		return nil, false
	}

	s.criteria = criteria

	return s.Planner.Filter(s.merged, criteria), true
}

func (s *Session) Latest() (*ctdf.JourneyPlanResults, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.merged == nil {
		return nil, false
	}

	return s.Planner.Filter(s.merged, s.criteria), true
}

// Key of the round that produced the latest results
func (s *Session) Key() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.key
}
