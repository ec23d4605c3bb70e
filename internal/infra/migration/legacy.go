package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/pkg/errs"
	"servicebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	stateLegacyBookings = "legacy_booking_json"
	stateUnifiedOptions = "unified_options"
)

var ErrCleanupNotPermitted = errs.New("cleanup refused: migration has not completed successfully")

// Result reports one migration run. A failed run always reports zero
// migrated rows because every write rolled back.
type Result struct {
	MigratedCount int
	Errors        []string
}

// Engine backfills the normalized booking tables from the legacy JSON
// columns. Each migration runs in a single transaction guarded by a
// persisted completion flag, so reruns are no-ops and a failure can never
// leave a half-migrated dataset.
type Engine struct {
	pool *pgxpool.Pool
}

func NewEngine(pool *pgxpool.Pool) *Engine {
	return &Engine{pool: pool}
}

type legacyServiceRef struct {
	ServiceID uuid.UUID
	Quantity  int32
}

type legacyOptionValue struct {
	OptionID uuid.UUID
	Value    string
}

// Migrate decodes the legacy services/service_options JSON on every booking
// row that still carries it and re-emits normalized junction rows. Historical
// prices are not recoverable: service lines snapshot the current service
// price with quantity 1, and option lines carry a zero price impact.
func (e *Engine) Migrate(ctx context.Context) (*Result, error) {
	done, err := e.completed(ctx, stateLegacyBookings)
	if err != nil {
		return nil, err
	}
	if done {
		slog.Info("legacy booking migration already completed, skipping")
		return &Result{}, nil
	}

	count, err := shared.RunInTx(ctx, e.pool, func(tx db.DBTX) (int, error) {
		return e.migrateBookings(ctx, tx)
	})
	if err != nil {
		return &Result{Errors: []string{err.Error()}}, err
	}

	slog.Info("legacy booking migration completed", "migrated_bookings", count)
	return &Result{MigratedCount: count}, nil
}

func (e *Engine) migrateBookings(ctx context.Context, tx db.DBTX) (int, error) {
	const q = `
SELECT id, legacy_services, legacy_service_options
FROM bookings
WHERE (legacy_services IS NOT NULL AND legacy_services <> '')
   OR (legacy_service_options IS NOT NULL AND legacy_service_options <> '')
ORDER BY created_at, id
`
	rows, err := tx.Query(ctx, q)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to list legacy bookings", err)
	}

	type legacyRow struct {
		id       uuid.UUID
		services *string
		options  *string
	}
	var pending []legacyRow
	for rows.Next() {
		var r legacyRow
		if err := rows.Scan(&r.id, &r.services, &r.options); err != nil {
			rows.Close()
			return 0, infra.WrapRepoErr("failed to scan legacy booking", err)
		}
		pending = append(pending, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to read legacy bookings", err)
	}

	for _, r := range pending {
		refs, err := DecodeLegacyServices(deref(r.services))
		if err != nil {
			return 0, errs.Wrap(err, fmt.Sprintf("booking %s: bad legacy services", r.id))
		}
		values, err := DecodeLegacyOptions(deref(r.options))
		if err != nil {
			return 0, errs.Wrap(err, fmt.Sprintf("booking %s: bad legacy options", r.id))
		}

		for _, ref := range refs {
			if err := e.insertServiceLine(ctx, tx, r.id, ref); err != nil {
				return 0, err
			}
		}
		for _, v := range values {
			if err := e.insertOptionLine(ctx, tx, r.id, v); err != nil {
				return 0, err
			}
		}
	}

	if err := e.markCompleted(ctx, tx, stateLegacyBookings, len(pending)); err != nil {
		return 0, err
	}
	return len(pending), nil
}

func (e *Engine) insertServiceLine(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, ref legacyServiceRef) error {
	const q = `
INSERT INTO booking_services (id, booking_id, service_id, quantity, unit_price, total_price)
SELECT $1, $2, s.id, $3, s.price, s.price * $3
FROM services s
WHERE s.id = $4
ON CONFLICT (booking_id, service_id) DO NOTHING
`
	tag, err := tx.Exec(ctx, q, uuid.New(), bookingID, ref.Quantity, ref.ServiceID)
	if err != nil {
		return infra.WrapRepoErr("failed to backfill booking service line", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the service vanished or the line already exists; check which.
		var exists bool
		const check = `SELECT EXISTS (SELECT 1 FROM booking_services WHERE booking_id = $1 AND service_id = $2)`
		if err := tx.QueryRow(ctx, check, bookingID, ref.ServiceID).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to verify backfilled line", err)
		}
		if !exists {
			return errs.New(fmt.Sprintf("booking %s references missing service %s", bookingID, ref.ServiceID))
		}
	}
	return nil
}

func (e *Engine) insertOptionLine(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, v legacyOptionValue) error {
	const q = `
INSERT INTO booking_service_options (id, booking_id, service_option_id, option_value, price_impact)
VALUES ($1, $2, $3, $4, 0)
ON CONFLICT (booking_id, service_option_id) DO NOTHING
`
	if _, err := tx.Exec(ctx, q, uuid.New(), bookingID, v.OptionID, v.Value); err != nil {
		return infra.WrapRepoErr("failed to backfill booking option line", err)
	}
	return nil
}

// Cleanup drops the legacy JSON columns. Dropping them is irreversible, so
// it hard-refuses until Migrate has recorded success.
func (e *Engine) Cleanup(ctx context.Context) error {
	done, err := e.completed(ctx, stateLegacyBookings)
	if err != nil {
		return err
	}
	if !done {
		return ErrCleanupNotPermitted
	}

	const q = `
ALTER TABLE bookings
DROP COLUMN IF EXISTS legacy_services,
DROP COLUMN IF EXISTS legacy_service_options
`
	if _, err := e.pool.Exec(ctx, q); err != nil {
		return infra.WrapRepoErr("failed to drop legacy columns", err)
	}
	slog.Info("legacy booking columns dropped")
	return nil
}

func (e *Engine) completed(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM migration_state WHERE name = $1 AND completed)`
	var done bool
	if err := e.pool.QueryRow(ctx, q, name).Scan(&done); err != nil {
		return false, infra.WrapRepoErr("failed to read migration state", err)
	}
	return done, nil
}

func (e *Engine) markCompleted(ctx context.Context, tx db.DBTX, name string, count int) error {
	const q = `
INSERT INTO migration_state (name, completed, migrated_count, completed_at)
VALUES ($1, TRUE, $2, now())
ON CONFLICT (name) DO UPDATE SET completed = TRUE, migrated_count = $2, completed_at = now()
`
	if _, err := tx.Exec(ctx, q, name, count); err != nil {
		return infra.WrapRepoErr("failed to record migration state", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DecodeLegacyServices accepts the two shapes the legacy column was written
// in: a JSON array of service id strings, or an array of objects carrying
// service_id and an optional quantity. Quantity defaults to 1.
func DecodeLegacyServices(raw string) ([]legacyServiceRef, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		refs := make([]legacyServiceRef, 0, len(ids))
		for _, s := range ids {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, errs.Wrap(err, "invalid legacy service id")
			}
			refs = append(refs, legacyServiceRef{ServiceID: id, Quantity: 1})
		}
		return refs, nil
	}

	var objs []struct {
		ServiceID string `json:"service_id"`
		Quantity  int32  `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(raw), &objs); err != nil {
		return nil, errs.Wrap(err, "unrecognized legacy services payload")
	}
	refs := make([]legacyServiceRef, 0, len(objs))
	for _, o := range objs {
		id, err := uuid.Parse(o.ServiceID)
		if err != nil {
			return nil, errs.Wrap(err, "invalid legacy service id")
		}
		quantity := o.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		refs = append(refs, legacyServiceRef{ServiceID: id, Quantity: quantity})
	}
	return refs, nil
}

// DecodeLegacyOptions accepts a JSON object keyed by option id. Scalar values
// are kept as their string form; nested structures are re-serialized to
// compact JSON text.
func DecodeLegacyOptions(raw string) ([]legacyOptionValue, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	var byOption map[string]any
	if err := json.Unmarshal([]byte(raw), &byOption); err != nil {
		return nil, errs.Wrap(err, "unrecognized legacy options payload")
	}

	values := make([]legacyOptionValue, 0, len(byOption))
	for key, v := range byOption {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, errs.Wrap(err, "invalid legacy option id")
		}
		values = append(values, legacyOptionValue{OptionID: id, Value: stringifyValue(v)})
	}
	return values, nil
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return trimFloat(t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
