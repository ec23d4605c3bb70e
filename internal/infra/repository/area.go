package repository

import (
	"context"

	"servicebook/internal/domain/area"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AreaRepository struct{}

func NewAreaRepository() *AreaRepository {
	return &AreaRepository{}
}

func (r *AreaRepository) Create(ctx context.Context, dbtx db.DBTX, a *area.Area) error {
	const q = `
INSERT INTO areas (id, user_id, zip_code, label, active)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := dbtx.Exec(ctx, q, a.ID, a.OwnerID, a.ZipCode, a.Label, a.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to create service area", err)
	}
	return nil
}

func (r *AreaRepository) Update(ctx context.Context, dbtx db.DBTX, a *area.Area) error {
	const q = `
UPDATE areas
SET zip_code = $3, label = $4, active = $5, updated_at = now()
WHERE id = $1 AND user_id = $2
`
	tag, err := dbtx.Exec(ctx, q, a.ID, a.OwnerID, a.ZipCode, a.Label, a.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to update service area", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service area not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AreaRepository) Delete(ctx context.Context, dbtx db.DBTX, areaID, ownerID uuid.UUID) error {
	const q = `DELETE FROM areas WHERE id = $1 AND user_id = $2`
	tag, err := dbtx.Exec(ctx, q, areaID, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service area", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service area not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AreaRepository) FindByIDForOwner(ctx context.Context, dbtx db.DBTX, areaID, ownerID uuid.UUID) (*area.Area, error) {
	const q = `
SELECT id, user_id, zip_code, label, active, created_at, updated_at
FROM areas
WHERE id = $1 AND user_id = $2
`
	var a area.Area
	err := dbtx.QueryRow(ctx, q, areaID, ownerID).Scan(
		&a.ID, &a.OwnerID, &a.ZipCode, &a.Label, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service area", err)
	}
	return &a, nil
}

func (r *AreaRepository) ListByOwner(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) ([]area.Area, error) {
	const q = `
SELECT id, user_id, zip_code, label, active, created_at, updated_at
FROM areas
WHERE user_id = $1
ORDER BY zip_code
`
	rows, err := dbtx.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service areas", err)
	}
	defer rows.Close()

	var out []area.Area
	for rows.Next() {
		var a area.Area
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.ZipCode, &a.Label, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service area", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service areas", err)
	}
	return out, nil
}

// FindCovered returns the active area matching (owner, zip). An inactive row
// is not covered and reports not found.
func (r *AreaRepository) FindCovered(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, zip string) (*area.Area, error) {
	const q = `
SELECT id, user_id, zip_code, label, active, created_at, updated_at
FROM areas
WHERE user_id = $1 AND zip_code = $2 AND active = true
`
	var a area.Area
	err := dbtx.QueryRow(ctx, q, ownerID, zip).Scan(
		&a.ID, &a.OwnerID, &a.ZipCode, &a.Label, &a.Active, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("zip not covered", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to check coverage", err)
	}
	return &a, nil
}

// OwnersCovering answers discovery: which owners actively service a ZIP.
func (r *AreaRepository) OwnersCovering(ctx context.Context, dbtx db.DBTX, zip string) ([]uuid.UUID, error) {
	const q = `SELECT user_id FROM areas WHERE zip_code = $1 AND active = true ORDER BY user_id`
	rows, err := dbtx.Query(ctx, q, zip)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list covering owners", err)
	}
	defer rows.Close()

	var owners []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan covering owner", err)
		}
		owners = append(owners, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read covering owners", err)
	}
	return owners, nil
}
