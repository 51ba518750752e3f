// Package scheduler runs the background jobs of the service on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// defaultReminderSpec fires every morning at 07:00 in the configured timezone.
const defaultReminderSpec = "0 7 * * *"

// Params holds the dependencies for New.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Reminders usecase.ReminderUsecase
}

// Scheduler wraps a cron runner bound to the storefront timezone.
type Scheduler struct {
	cron      *cron.Cron
	logger    *slog.Logger
	metrics   *metrics.Metrics
	reminders usecase.ReminderUsecase
	now       func() time.Time
}

// New registers the jobs and starts them with the application when enabled.
func New(params Params) (*Scheduler, error) {
	logger := cronLogger{logger: params.Logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(params.Config.Location()),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		logger:    params.Logger,
		metrics:   params.Metrics,
		reminders: params.Reminders,
		now:       time.Now,
	}

	cfg := params.Config.Scheduler
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Scheduler disabled")

		return s, nil
	}

	spec := cfg.ReminderSpec
	if spec == "" {
		spec = defaultReminderSpec
	}
	if _, err := s.cron.AddFunc(spec, s.runReminders); err != nil {
		return nil, errors.Wrapf(err, "invalid reminder schedule %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.cron.Start()
			params.Logger.Info("Scheduler started", slog.String("reminder_spec", spec))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := s.cron.Stop()
			select {
			case <-stopped.Done():
				return nil
			case <-ctx.Done():
				return errors.WithStack(ctx.Err())
			}
		},
	})

	return s, nil
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*lifecycle.DefaultTimeout)
	defer cancel()

	s.RunReminders(ctx)
}

// RunReminders sends today's delivery reminders once.
func (s *Scheduler) RunReminders(ctx context.Context) {
	result, err := s.reminders.SendDeliveryReminders(ctx, s.now().In(s.cron.Location()))
	if err != nil {
		s.logger.Error("Delivery reminder run failed", slog.Any("error", err))
		s.metrics.ReminderRun("error", 0)

		return
	}

	s.logger.Info("Delivery reminders sent",
		slog.Int("customers", result.Customers),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
	s.metrics.ReminderRun("ok", result.Sent)
}

// cronLogger adapts slog to cron.Logger. cron's routine info lines go to debug.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
