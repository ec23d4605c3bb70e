package notify

import (
	"context"
	"log/slog"

	"servicebook/internal/infra/repository"
)

// Sink delivers one claimed notification job. Implementations are expected
// to be safe for repeated delivery of the same job.
type Sink interface {
	Deliver(ctx context.Context, job repository.NotificationJob) error
}

// SlogSink logs deliveries instead of sending them. It stands in until a
// real mail or SMS provider is wired up.
type SlogSink struct{}

func NewSlogSink() *SlogSink {
	return &SlogSink{}
}

func (s *SlogSink) Deliver(_ context.Context, job repository.NotificationJob) error {
	slog.Info("notification delivered",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}
