package lock

import (
	"context"
	"log/slog"

	"florist/config"
	"florist/internal/domain/lifecycle"
	"florist/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the IntentLocker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewIntentLocker uses Redis when an address is configured and an in-process lock otherwise
func NewIntentLocker(params Params) service.IntentLocker {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using in-process intent lock")

		return NewLocalLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info("Closing Redis client")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisLocker(client, logger)
}

// Module provides the intent lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIntentLocker),
)
