package session

import (
	"time"

	"github.com/bluele/gcache"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/planner"
	"github.com/travigo/navigator/pkg/selection"
)

const Header = "X-Session-ID"

const localsKey = "session"

// Session is the state one client keeps between requests
type Session struct {
	ID string

	Selection *selection.State
	Planner   *planner.Session
}

type Store struct {
	cache gcache.Cache
}

func NewStore(size int, expiry time.Duration, newPlanner func() *planner.Planner) *Store {
	cache := gcache.New(size).
		LRU().
		Expiration(expiry).
		LoaderFunc(func(key interface{}) (interface{}, error) {
			return &Session{
				ID:        key.(string),
				Selection: selection.NewState(),
				Planner:   planner.NewSession(newPlanner()),
			}, nil
		}).
		Build()

	return &Store{cache: cache}
}

// Get returns the session for id, starting a new one when it is unknown or expired
func (s *Store) Get(id string) (*Session, error) {
	value, err := s.cache.Get(id)
	if err != nil {
		return nil, err
	}

	return value.(*Session), nil
}

func (s *Store) Len() int {
	return s.cache.Len(false)
}

// Prune drops selections that no longer exist in the catalogue from every session
func (s *Store) Prune(catalogue *ctdf.NetworkCatalogue) {
	for _, value := range s.cache.GetALL(false) {
		value.(*Session).Selection.Prune(catalogue)
	}
}

func (s *Store) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The header aliases the request buffer, which fasthttp reuses
		id := utils.CopyString(c.Get(Header))
		if id == "" {
			id = uuid.NewString()
		}

		current, err := s.Get(id)
		if err != nil {
			return err
		}

		c.Set(Header, id)
		c.Locals(localsKey, current)

		return c.Next()
	}
}

func FromContext(c *fiber.Ctx) *Session {
	current, _ := c.Locals(localsKey).(*Session)
	return current
}
