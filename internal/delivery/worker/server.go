// Package worker serves the Pub/Sub push endpoint that delivers OTP codes.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPushBody bounds a push request. OTP events are a few hundred bytes.
const maxPushBody = "64K"

type workerServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil || params.Cfg.Worker.Port == 0 {
		return nil, errors.New("worker port is not configured")
	}

	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		echo:   newRouter(params),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newRouter(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	skipPaths := []string{"/health"}
	metricsEnabled := params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled
	if metricsEnabled {
		skipPaths = append(skipPaths, params.Cfg.Metrics.Path)
	}

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewMetricsMiddleware(params.Metrics).Handle,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg, skipPaths...).Handle,
		echomiddleware.BodyLimit(maxPushBody),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metricsEnabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
