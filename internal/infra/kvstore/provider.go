package kvstore

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sweepInterval = time.Minute

// Params holds the dependencies for New.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes one backend under both store interfaces.
type Result struct {
	fx.Out

	OTPs        repository.OTPStore
	Revocations repository.TokenRevocationStore
}

// New selects the backend named by auth.store.
func New(params Params) (Result, error) {
	switch params.Config.Auth.Store {
	case "", constants.KVStoreMemory:
		store := newMemoryStore()
		stop := make(chan struct{})
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go runSweeper(store, stop, params.Logger)

				return nil
			},
			OnStop: func(context.Context) error {
				close(stop)

				return nil
			},
		})
		params.Logger.Info("Using in-memory auth store")

		return Result{OTPs: store, Revocations: store}, nil

	case constants.KVStoreRedis:
		cfg := params.Config.Redis
		if cfg == nil || cfg.Addr == "" {
			return Result{}, errors.New("redis.addr is required for the redis auth store")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(pingCtx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
		params.Logger.Info("Using Redis auth store", slog.String("addr", cfg.Addr))
		store := newRedisStore(client)

		return Result{OTPs: store, Revocations: store}, nil

	default:
		return Result{}, errors.Errorf("unknown auth store: %s", params.Config.Auth.Store)
	}
}

func runSweeper(store *memoryStore, stop <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				logger.Debug("Swept expired auth entries", slog.Int("removed", removed))
			}
		}
	}
}
