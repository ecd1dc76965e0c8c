package redis_client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/navigator/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

const connectRetries = 5

// IsConfigured reports whether a redis server has been set for this environment
func IsConfigured() bool {
	return util.GetEnvironmentVariables()["TRAVIGO_REDIS_ADDRESS"] != ""
}

func Connect() error {
	env := util.GetEnvironmentVariables()

	address := defaultConnectionAddress
	password := defaultConnectionPassword

	if env["TRAVIGO_REDIS_ADDRESS"] != "" {
		address = env["TRAVIGO_REDIS_ADDRESS"]
	}

	if env["TRAVIGO_REDIS_PASSWORD"] != "" {
		password = env["TRAVIGO_REDIS_PASSWORD"]
	}

	database := util.GetEnvironmentInt(env, "TRAVIGO_REDIS_DATABASE", defaultDatabase)

	client, err := ConnectTo(context.Background(), &redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})
	if err != nil {
		return err
	}

	Client = client

	return nil
}

// ConnectTo pings the server until it answers, giving up after a few attempts
func ConnectTo(ctx context.Context, options *redis.Options) (*redis.Client, error) {
	client := redis.NewClient(options)

	operation := func() error {
		return client.Ping(ctx).Err()
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries), ctx)

	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", options.Addr).Dur("wait", wait).Msg("Redis not ready, retrying")
	})
	if err != nil {
		client.Close()
		return nil, err
	}

	log.Debug().Str("address", options.Addr).Int("database", options.DB).Msg("Connected to redis")

	return client, nil
}
