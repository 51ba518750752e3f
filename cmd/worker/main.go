package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker"
	"storefront/internal/delivery/worker/handler"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/sms"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The worker only texts codes; it holds no database or Firebase client.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
		),
		sms.Module,
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			slog.Error("Worker server stopped", slog.Any("error", err))

			if shutdownErr := params.Shutdown(); shutdownErr != nil {
				slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
