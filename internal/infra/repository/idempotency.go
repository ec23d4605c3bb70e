package repository

import (
	"context"
	"time"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
)

// IdempotencyRecord mirrors one row of idempotency_keys.
type IdempotencyRecord struct {
	Key             uuid.UUID
	OwnerID         uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key if unclaimed. An existing row is left untouched;
// the caller reads it back and decides replay vs. conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, ownerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const q = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO NOTHING
`
	tag, err := dbtx.Exec(ctx, q, key, ownerID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, dbtx db.DBTX, key, ownerID uuid.UUID) (*IdempotencyRecord, error) {
	const q = `
SELECT key, user_id, endpoint, request_hash, status, result_booking_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`
	var rec IdempotencyRecord
	err := dbtx.QueryRow(ctx, q, key, ownerID).Scan(
		&rec.Key, &rec.OwnerID, &rec.Endpoint, &rec.RequestHash, &rec.Status,
		&rec.ResultBookingID, &rec.ExpiresAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, ownerID, resultBookingID uuid.UUID) error {
	const q = `
UPDATE idempotency_keys
SET status = 'completed', result_booking_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2
`
	if _, err := dbtx.Exec(ctx, q, key, ownerID, resultBookingID); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, dbtx db.DBTX) (int64, error) {
	const q = `DELETE FROM idempotency_keys WHERE expires_at < now()`
	tag, err := dbtx.Exec(ctx, q)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
