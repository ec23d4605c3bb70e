package repository

import (
	"context"
	"time"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationJob is one queued notification event. Jobs are written in the
// same transaction as the state change they announce and dispatched later.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    string
	CreatedAt time.Time
}

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
`
	if _, err := dbtx.Exec(ctx, q, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue marks due pending jobs as sending and returns them. The UPDATE
// claims atomically so two dispatcher ticks cannot double-send a job.
func (r *NotificationRepository) ClaimDue(ctx context.Context, dbtx db.DBTX, limit int) ([]NotificationJob, error) {
	const q = `
UPDATE notification_jobs
SET status = 'sending'
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = 'pending' AND run_at <= now()
    ORDER BY run_at
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, status, created_at
`
	rows, err := dbtx.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Status, &j.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID) error {
	const q = `UPDATE notification_jobs SET status = 'sent' WHERE id = $1`
	if _, err := dbtx.Exec(ctx, q, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID) error {
	const q = `UPDATE notification_jobs SET status = 'failed' WHERE id = $1`
	if _, err := dbtx.Exec(ctx, q, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
