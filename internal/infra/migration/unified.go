package migration

import (
	"context"
	"log/slog"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/usecase/shared"

	"github.com/google/uuid"
)

// MigrateUnified splits option rows out of the old single-table layout,
// where options lived in the services table as entity_type='option' rows
// pointing at their parent service. Existing (service_id, name) options are
// left alone; migrated source rows are deleted and the option-only columns
// dropped, all in one transaction.
func (e *Engine) MigrateUnified(ctx context.Context) (*Result, error) {
	done, err := e.completed(ctx, stateUnifiedOptions)
	if err != nil {
		return nil, err
	}
	if done {
		slog.Info("unified option migration already completed, skipping")
		return &Result{}, nil
	}

	count, err := shared.RunInTx(ctx, e.pool, func(tx db.DBTX) (int, error) {
		return e.migrateUnifiedOptions(ctx, tx)
	})
	if err != nil {
		return &Result{Errors: []string{err.Error()}}, err
	}

	slog.Info("unified option migration completed", "migrated_options", count)
	return &Result{MigratedCount: count}, nil
}

func (e *Engine) migrateUnifiedOptions(ctx context.Context, tx db.DBTX) (int, error) {
	const insert = `
INSERT INTO service_options (
    id, service_id, name, description, type, is_required, price_impact, price_type,
    options, display_order
)
SELECT $1, src.parent_id, src.name, src.description,
       COALESCE(src.option_type, 'checkbox'), COALESCE(src.option_required, FALSE),
       src.price, 'fixed', COALESCE(src.option_choices, ''),
       COALESCE((SELECT MAX(display_order) + 1 FROM service_options WHERE service_id = src.parent_id), 1)
FROM services src
WHERE src.id = $2
  AND src.parent_id IS NOT NULL
  AND NOT EXISTS (
      SELECT 1 FROM service_options so
      WHERE so.service_id = src.parent_id AND so.name = src.name
  )
`
	const listUnified = `
SELECT id FROM services
WHERE entity_type = 'option'
ORDER BY parent_id, created_at, id
`
	rows, err := tx.Query(ctx, listUnified)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to list unified option rows", err)
	}
	var sourceIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, infra.WrapRepoErr("failed to scan unified option row", err)
		}
		sourceIDs = append(sourceIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to read unified option rows", err)
	}

	migrated := 0
	for _, sourceID := range sourceIDs {
		tag, err := tx.Exec(ctx, insert, uuid.New(), sourceID)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to split unified option row", err)
		}
		migrated += int(tag.RowsAffected())
	}

	const deleteSource = `DELETE FROM services WHERE entity_type = 'option'`
	if _, err := tx.Exec(ctx, deleteSource); err != nil {
		return 0, infra.WrapRepoErr("failed to delete unified option rows", err)
	}

	const dropColumns = `
ALTER TABLE services
DROP COLUMN IF EXISTS entity_type,
DROP COLUMN IF EXISTS parent_id,
DROP COLUMN IF EXISTS option_type,
DROP COLUMN IF EXISTS option_required,
DROP COLUMN IF EXISTS option_choices
`
	if _, err := tx.Exec(ctx, dropColumns); err != nil {
		return 0, infra.WrapRepoErr("failed to drop unified option columns", err)
	}

	if err := e.markCompleted(ctx, tx, stateUnifiedOptions, migrated); err != nil {
		return 0, err
	}
	return migrated, nil
}
