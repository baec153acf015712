// Package lock provides the per-order payment intent lock.
package lock

import (
	"context"
	"log/slog"
	"time"

	"florist/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const keyPrefix = "florist:lock:"

// releaseScript deletes the key only while it still holds our token.
//
//nolint:gochecknoglobals
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisClient is the part of a go-redis client the locker drives.
// *redis.Client, *redis.Ring and *redis.ClusterClient all satisfy it.
type RedisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

type redisLocker struct {
	client RedisClient
	logger *slog.Logger
}

// NewRedisLocker creates a locker backed by SET NX PX.
func NewRedisLocker(client RedisClient, logger *slog.Logger) service.IntentLocker {
	return &redisLocker{client: client, logger: logger}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, ttl).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "acquire lock %s", key)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int64()
		if err != nil {
			l.logger.Warn("Failed to release lock",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return errors.Wrapf(err, "release lock %s", key)
		}
		if deleted == 0 {
			l.logger.Debug("Lock expired before release", slog.String("key", key))
		}

		return nil
	}

	return release, true, nil
}
