package cachedresults

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/senseyeio/duration"
)

const DefaultTTL = "PT90M"

type Cache struct {
	Cache *cache.Cache[string]
	TTL   time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))

	return &Cache{
		Cache: cache.New[string](redisStore),
		TTL:   ttl,
	}
}

// ParseTTL reads an ISO-8601 duration such as PT90M
func ParseTTL(value string) (time.Duration, error) {
	if value == "" {
		value = DefaultTTL
	}

	parsed, err := duration.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("parse cache ttl %q: %w", value, err)
	}

	now := time.Now()
	ttl := parsed.Shift(now).Sub(now)
	if ttl <= 0 {
		return 0, errors.New("cache ttl must be positive")
	}

	return ttl, nil
}

// Remember returns the cached value for key, falling back to load and caching its result.
// A nil cache always loads. Cache failures are logged and never fail the lookup.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.Cache == nil {
		return load(ctx)
	}

	cached, err := c.Cache.Get(ctx, key)
	if err == nil && cached != "" {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			log.Debug().Str("key", key).Msg("Cache hit")
			return value, nil
		}

		log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to encode value for cache")
		return value, nil
	}

	if err := c.Cache.Set(ctx, key, string(encoded), store.WithExpiration(c.TTL)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to write cache")
	}

	return value, nil
}
