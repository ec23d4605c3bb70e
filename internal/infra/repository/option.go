package repository

import (
	"context"

	"servicebook/internal/domain/service"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OptionRepository struct{}

func NewOptionRepository() *OptionRepository {
	return &OptionRepository{}
}

const optionColumns = `
id, service_id, name, description, type, is_required, default_value, placeholder,
min_value::text, max_value::text, price_impact::text, price_type, options, option_label,
step::text, unit, min_length, max_length, option_rows, display_order, created_at, updated_at`

// Create appends the option to the end of the service's display order:
// next display_order = max + 1, starting at 1 for the first option.
func (r *OptionRepository) Create(ctx context.Context, dbtx db.DBTX, opt *service.Option) error {
	const q = `
INSERT INTO service_options (
    id, service_id, name, description, type, is_required, default_value, placeholder,
    min_value, max_value, price_impact, price_type, options, option_label,
    step, unit, min_length, max_length, option_rows, display_order
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
        COALESCE((SELECT MAX(display_order) + 1 FROM service_options WHERE service_id = $2), 1))
`
	_, err := dbtx.Exec(ctx, q,
		opt.ID, opt.ServiceID, opt.Name, opt.Description, opt.Type.String(), opt.Required,
		opt.DefaultValue, opt.Placeholder, decimalText(opt.MinValue), decimalText(opt.MaxValue),
		opt.PriceImpact.StringFixed(2), opt.PriceType.String(), opt.RawChoices, opt.ChoiceLabel,
		decimalText(opt.Step), opt.Unit, opt.MinLength, opt.MaxLength, opt.Rows,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create service option", err)
	}
	return nil
}

func (r *OptionRepository) Update(ctx context.Context, dbtx db.DBTX, opt *service.Option) error {
	const q = `
UPDATE service_options
SET name = $3, description = $4, type = $5, is_required = $6, default_value = $7,
    placeholder = $8, min_value = $9, max_value = $10, price_impact = $11, price_type = $12,
    options = $13, option_label = $14, step = $15, unit = $16, min_length = $17,
    max_length = $18, option_rows = $19, updated_at = now()
WHERE id = $1 AND service_id = $2
`
	tag, err := dbtx.Exec(ctx, q,
		opt.ID, opt.ServiceID, opt.Name, opt.Description, opt.Type.String(), opt.Required,
		opt.DefaultValue, opt.Placeholder, decimalText(opt.MinValue), decimalText(opt.MaxValue),
		opt.PriceImpact.StringFixed(2), opt.PriceType.String(), opt.RawChoices, opt.ChoiceLabel,
		decimalText(opt.Step), opt.Unit, opt.MinLength, opt.MaxLength, opt.Rows,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service option not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OptionRepository) Delete(ctx context.Context, dbtx db.DBTX, optionID, serviceID uuid.UUID) error {
	const q = `DELETE FROM service_options WHERE id = $1 AND service_id = $2`
	tag, err := dbtx.Exec(ctx, q, optionID, serviceID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service option not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OptionRepository) DeleteByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) error {
	const q = `DELETE FROM service_options WHERE service_id = $1`
	if _, err := dbtx.Exec(ctx, q, serviceID); err != nil {
		return infra.WrapRepoErr("failed to delete service options", err)
	}
	return nil
}

func (r *OptionRepository) FindByID(ctx context.Context, dbtx db.DBTX, optionID uuid.UUID) (*service.Option, error) {
	q := `SELECT ` + optionColumns + ` FROM service_options WHERE id = $1`
	rows, err := dbtx.Query(ctx, q, optionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service option", err)
	}
	opts, err := scanOptions(rows)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, infra.WrapRepoErr("service option not found", pgx.ErrNoRows)
	}
	return &opts[0], nil
}

// ListByService returns options in stable UI order.
func (r *OptionRepository) ListByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) ([]service.Option, error) {
	q := `SELECT ` + optionColumns + ` FROM service_options WHERE service_id = $1 ORDER BY display_order, id`
	rows, err := dbtx.Query(ctx, q, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service options", err)
	}
	return scanOptions(rows)
}

// ListByServices loads the options of several services in one round trip,
// keyed by service id.
func (r *OptionRepository) ListByServices(ctx context.Context, dbtx db.DBTX, serviceIDs []uuid.UUID) (map[uuid.UUID][]service.Option, error) {
	q := `SELECT ` + optionColumns + ` FROM service_options WHERE service_id = ANY($1) ORDER BY service_id, display_order, id`
	rows, err := dbtx.Query(ctx, q, serviceIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service options", err)
	}
	opts, err := scanOptions(rows)
	if err != nil {
		return nil, err
	}

	byService := make(map[uuid.UUID][]service.Option, len(serviceIDs))
	for _, opt := range opts {
		byService[opt.ServiceID] = append(byService[opt.ServiceID], opt)
	}
	return byService, nil
}

func (r *OptionRepository) UpdateDisplayOrder(ctx context.Context, dbtx db.DBTX, optionID, serviceID uuid.UUID, order int) error {
	const q = `UPDATE service_options SET display_order = $3, updated_at = now() WHERE id = $1 AND service_id = $2`
	tag, err := dbtx.Exec(ctx, q, optionID, serviceID, order)
	if err != nil {
		return infra.WrapRepoErr("failed to reorder service option", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service option not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanOptions(rows pgx.Rows) ([]service.Option, error) {
	defer rows.Close()

	var out []service.Option
	for rows.Next() {
		var (
			opt                       service.Option
			optType, priceType        string
			minVal, maxVal, step      *string
			priceImpact               string
		)
		if err := rows.Scan(
			&opt.ID, &opt.ServiceID, &opt.Name, &opt.Description, &optType, &opt.Required,
			&opt.DefaultValue, &opt.Placeholder, &minVal, &maxVal, &priceImpact, &priceType,
			&opt.RawChoices, &opt.ChoiceLabel, &step, &opt.Unit, &opt.MinLength, &opt.MaxLength,
			&opt.Rows, &opt.DisplayOrder, &opt.CreatedAt, &opt.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service option", err)
		}

		opt.Type = service.OptionType(optType)
		opt.PriceType = service.PriceType(priceType)

		var err error
		if opt.PriceImpact, err = parseDecimal(priceImpact); err != nil {
			return nil, infra.WrapRepoErr("invalid option price impact", err)
		}
		if opt.MinValue, err = parseDecimalPtr(minVal); err != nil {
			return nil, infra.WrapRepoErr("invalid option min value", err)
		}
		if opt.MaxValue, err = parseDecimalPtr(maxVal); err != nil {
			return nil, infra.WrapRepoErr("invalid option max value", err)
		}
		if opt.Step, err = parseDecimalPtr(step); err != nil {
			return nil, infra.WrapRepoErr("invalid option step", err)
		}
		out = append(out, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service options", err)
	}
	return out, nil
}
