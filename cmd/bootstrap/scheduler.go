package bootstrap

import (
	"context"

	"servicebook/internal/infra/db"
	"servicebook/internal/infra/notify"
	"servicebook/internal/infra/repository"
	"servicebook/internal/infra/scheduler"
	"servicebook/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		fx.Annotate(
			notify.NewSlogSink,
			fx.As(new(notify.Sink)),
		),
	),
	fx.Invoke(StartScheduler),
)

func StartScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	database db.DBTX,
	notificationRepo *repository.NotificationRepository,
	idempotencyRepo *repository.IdempotencyRepository,
	sink notify.Sink,
) error {
	s, err := scheduler.New(cfg.Scheduler, database, notificationRepo, idempotencyRepo, sink)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return nil
}
