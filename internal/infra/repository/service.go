package repository

import (
	"context"

	"servicebook/internal/domain/service"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	const q = `
INSERT INTO services (id, user_id, name, description, price, duration, icon, image_url, category, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := dbtx.Exec(ctx, q,
		svc.ID, svc.OwnerID, svc.Name, svc.Description, svc.Price.StringFixed(2),
		svc.DurationMin, svc.Icon, svc.ImageURL, svc.Category, svc.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, dbtx db.DBTX, svc *service.Service) error {
	const q = `
UPDATE services
SET name = $3, description = $4, price = $5, duration = $6, icon = $7,
    image_url = $8, category = $9, status = $10, updated_at = now()
WHERE id = $1 AND user_id = $2
`
	tag, err := dbtx.Exec(ctx, q,
		svc.ID, svc.OwnerID, svc.Name, svc.Description, svc.Price.StringFixed(2),
		svc.DurationMin, svc.Icon, svc.ImageURL, svc.Category, svc.Status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the service row only. Cascading the options is the command's
// job so both deletes share one transaction.
func (r *ServiceRepository) Delete(ctx context.Context, dbtx db.DBTX, serviceID, ownerID uuid.UUID) error {
	const q = `DELETE FROM services WHERE id = $1 AND user_id = $2`
	tag, err := dbtx.Exec(ctx, q, serviceID, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) FindByIDForOwner(ctx context.Context, dbtx db.DBTX, serviceID, ownerID uuid.UUID) (*service.Service, error) {
	const q = `
SELECT id, user_id, name, description, price::text, duration, icon, image_url, category, status, created_at, updated_at
FROM services
WHERE id = $1 AND user_id = $2
`
	return r.scanOne(dbtx.QueryRow(ctx, q, serviceID, ownerID))
}

func (r *ServiceRepository) scanOne(row interface{ Scan(dest ...any) error }) (*service.Service, error) {
	var (
		svc      service.Service
		price    string
		status   string
	)
	err := row.Scan(
		&svc.ID, &svc.OwnerID, &svc.Name, &svc.Description, &price, &svc.DurationMin,
		&svc.Icon, &svc.ImageURL, &svc.Category, &status, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}

	svc.Status = service.Status(status)
	if svc.Price, err = parseDecimal(price); err != nil {
		return nil, infra.WrapRepoErr("invalid service price", err)
	}
	return &svc, nil
}
