// Package persistence selects the storage driver that backs the repositories.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/metrics"
	fsstore "storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/realtime"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the storage driver
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	App     *firebase.App
	Hub     *realtime.Hub
	Metrics *metrics.Metrics `optional:"true"`
}

// Result exposes the repositories of the selected driver
type Result struct {
	fx.Out

	Users    repository.UserRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Devices  repository.DeviceRepository
}

// New builds the repositories of the driver named by storage.driver.
func New(params Params) (Result, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Initializing storage", slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverFirestore:
		return newFirestore(params)
	case constants.StorageDriverPostgres:
		return newPostgres(params)
	default:
		return Result{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}

func newFirestore(params Params) (Result, error) {
	client, err := fsstore.NewClient(params.Ctx, params.App)
	if err != nil {
		return Result{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return Result{
		Users:    fsstore.NewUserRepository(client),
		Products: fsstore.NewProductRepository(client),
		Orders:   fsstore.NewOrderRepository(client),
		Devices:  fsstore.NewDeviceRepository(client),
	}, nil
}

func newPostgres(params Params) (Result, error) {
	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
		Metrics:   params.Metrics,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Users:    postgres.NewUserRepository(db, params.Hub),
		Products: postgres.NewProductRepository(db, params.Hub),
		Orders:   postgres.NewOrderRepository(db, params.Hub),
		Devices:  postgres.NewDeviceRepository(db),
	}, nil
}

// Module provides the repositories to the application
var Module = fx.Options(
	fx.Provide(New),
)
