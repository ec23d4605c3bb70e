package repository

import (
	"context"

	"servicebook/internal/domain/discount"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
)

type DiscountRepository struct{}

func NewDiscountRepository() *DiscountRepository {
	return &DiscountRepository{}
}

const discountColumns = `
id, user_id, code, type, amount::text, expiry_date, usage_limit, usage_count, active, created_at, updated_at`

func (r *DiscountRepository) Create(ctx context.Context, dbtx db.DBTX, d *discount.Discount) error {
	const q = `
INSERT INTO discounts (id, user_id, code, type, amount, expiry_date, usage_limit, usage_count, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := dbtx.Exec(ctx, q,
		d.ID, d.OwnerID, d.Code, string(d.Type), d.Amount.StringFixed(2),
		d.ExpiryDate, d.UsageLimit, d.UsageCount, d.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create discount", err)
	}
	return nil
}

func (r *DiscountRepository) Update(ctx context.Context, dbtx db.DBTX, d *discount.Discount) error {
	const q = `
UPDATE discounts
SET code = $3, type = $4, amount = $5, expiry_date = $6, usage_limit = $7, active = $8, updated_at = now()
WHERE id = $1 AND user_id = $2
`
	tag, err := dbtx.Exec(ctx, q,
		d.ID, d.OwnerID, d.Code, string(d.Type), d.Amount.StringFixed(2),
		d.ExpiryDate, d.UsageLimit, d.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, dbtx db.DBTX, discountID, ownerID uuid.UUID) error {
	const q = `DELETE FROM discounts WHERE id = $1 AND user_id = $2`
	tag, err := dbtx.Exec(ctx, q, discountID, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByCode fetches regardless of the active flag; the domain validator
// decides redeemability and its reason.
func (r *DiscountRepository) FindByCode(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, code string) (*discount.Discount, error) {
	q := `SELECT ` + discountColumns + ` FROM discounts WHERE user_id = $1 AND code = $2`
	return r.scanOne(dbtx.QueryRow(ctx, q, ownerID, code))
}

func (r *DiscountRepository) FindByIDForOwner(ctx context.Context, dbtx db.DBTX, discountID, ownerID uuid.UUID) (*discount.Discount, error) {
	q := `SELECT ` + discountColumns + ` FROM discounts WHERE id = $1 AND user_id = $2`
	return r.scanOne(dbtx.QueryRow(ctx, q, discountID, ownerID))
}

func (r *DiscountRepository) ListByOwner(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) ([]discount.Discount, error) {
	q := `SELECT ` + discountColumns + ` FROM discounts WHERE user_id = $1 ORDER BY code`
	rows, err := dbtx.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	defer rows.Close()

	var out []discount.Discount
	for rows.Next() {
		var (
			d      discount.Discount
			typ    string
			amount string
		)
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Code, &typ, &amount, &d.ExpiryDate,
			&d.UsageLimit, &d.UsageCount, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount", err)
		}
		d.Type = discount.Type(typ)
		amt, err := parseDecimal(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid discount amount", err)
		}
		d.Amount = amt
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read discounts", err)
	}
	return out, nil
}

// IncrementUsage counts one redemption. The guard in the WHERE clause makes
// the increment atomic: two racing redemptions of a nearly exhausted code
// cannot both pass the limit.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, dbtx db.DBTX, discountID uuid.UUID) error {
	const q = `
UPDATE discounts
SET usage_count = usage_count + 1, updated_at = now()
WHERE id = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)
`
	tag, err := dbtx.Exec(ctx, q, discountID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount usage limit reached", nil, infra.KindCheckViolated)
	}
	return nil
}

func (r *DiscountRepository) scanOne(row interface{ Scan(dest ...any) error }) (*discount.Discount, error) {
	var (
		d      discount.Discount
		typ    string
		amount string
	)
	err := row.Scan(&d.ID, &d.OwnerID, &d.Code, &typ, &amount, &d.ExpiryDate,
		&d.UsageLimit, &d.UsageCount, &d.Active, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount", err)
	}

	d.Type = discount.Type(typ)
	if d.Amount, err = parseDecimal(amount); err != nil {
		return nil, infra.WrapRepoErr("invalid discount amount", err)
	}
	return &d, nil
}
