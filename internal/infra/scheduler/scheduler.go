package scheduler

import (
	"context"
	"log/slog"
	"time"

	"servicebook/internal/infra/db"
	"servicebook/internal/infra/notify"
	"servicebook/internal/infra/repository"
	"servicebook/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

const dispatchBatchSize = 50

// Scheduler runs the background maintenance jobs: dispatching queued
// notifications to the sink and purging expired idempotency keys.
type Scheduler struct {
	cron             *cron.Cron
	db               db.DBTX
	notificationRepo *repository.NotificationRepository
	idempotencyRepo  *repository.IdempotencyRepository
	sink             notify.Sink
}

func New(
	cfg config.SchedulerConfig,
	database db.DBTX,
	notificationRepo *repository.NotificationRepository,
	idempotencyRepo *repository.IdempotencyRepository,
	sink notify.Sink,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:             cron.New(),
		db:               database,
		notificationRepo: notificationRepo,
		idempotencyRepo:  idempotencyRepo,
		sink:             sink,
	}

	if _, err := s.cron.AddFunc(cfg.NotificationSpec, s.dispatchNotifications); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(cfg.IdempotencySpec, s.purgeIdempotencyKeys); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("scheduler stopped")
}

func (s *Scheduler) dispatchNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jobs, err := s.notificationRepo.ClaimDue(ctx, s.db, dispatchBatchSize)
	if err != nil {
		slog.Error("failed to claim notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if err := s.sink.Deliver(ctx, job); err != nil {
			slog.Error("notification delivery failed", "job_id", job.ID, "error", err)
			if markErr := s.notificationRepo.MarkFailed(ctx, s.db, job.ID); markErr != nil {
				slog.Error("failed to mark notification job failed", "job_id", job.ID, "error", markErr)
			}
			continue
		}
		if err := s.notificationRepo.MarkSent(ctx, s.db, job.ID); err != nil {
			slog.Error("failed to mark notification job sent", "job_id", job.ID, "error", err)
		}
	}
}

func (s *Scheduler) purgeIdempotencyKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.idempotencyRepo.DeleteExpired(ctx, s.db)
	if err != nil {
		slog.Error("failed to purge expired idempotency keys", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("purged expired idempotency keys", "deleted", deleted)
	}
}
