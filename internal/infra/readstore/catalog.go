package readstore

import (
	"context"

	"servicebook/internal/domain/service"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/infra/repository"
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CatalogReadStore assembles service views with their options attached, in
// display order, ready for the owner dashboard or the public booking form.
type CatalogReadStore struct {
	db      db.DBTX
	options *repository.OptionRepository
}

func NewCatalogReadStore(database db.DBTX, options *repository.OptionRepository) *CatalogReadStore {
	return &CatalogReadStore{db: database, options: options}
}

const serviceViewColumns = `
id, user_id, name, description, price::text, duration, icon, image_url, category, status, created_at, updated_at`

func (s *CatalogReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.ServiceView, error) {
	q := `SELECT ` + serviceViewColumns + ` FROM services WHERE user_id = $1 ORDER BY name, id`
	return s.list(ctx, q, ownerID)
}

func (s *CatalogReadStore) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.ServiceView, error) {
	q := `SELECT ` + serviceViewColumns + ` FROM services WHERE user_id = $1 AND status = 'active' ORDER BY name, id`
	return s.list(ctx, q, ownerID)
}

func (s *CatalogReadStore) FindByID(ctx context.Context, serviceID, ownerID uuid.UUID) (*queries.ServiceView, error) {
	q := `SELECT ` + serviceViewColumns + ` FROM services WHERE id = $1 AND user_id = $2`
	rows, err := s.db.Query(ctx, q, serviceID, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	views, err := scanServiceViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows)
	}
	if err := s.attachOptions(ctx, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *CatalogReadStore) list(ctx context.Context, q string, ownerID uuid.UUID) ([]queries.ServiceView, error) {
	rows, err := s.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	views, err := scanServiceViews(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachOptions(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *CatalogReadStore) attachOptions(ctx context.Context, views []queries.ServiceView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}

	byService, err := s.options.ListByServices(ctx, s.db, ids)
	if err != nil {
		return err
	}
	for i := range views {
		opts := byService[views[i].ID]
		views[i].Options = make([]queries.OptionView, len(opts))
		for j := range opts {
			views[i].Options[j] = optionToView(&opts[j])
		}
	}
	return nil
}

func scanServiceViews(rows pgx.Rows) ([]queries.ServiceView, error) {
	defer rows.Close()

	var out []queries.ServiceView
	for rows.Next() {
		var (
			v     queries.ServiceView
			price string
		)
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &price, &v.DurationMin,
			&v.Icon, &v.ImageURL, &v.Category, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid service price", err)
		}
		v.Price = p
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return out, nil
}

func optionToView(opt *service.Option) queries.OptionView {
	view := queries.OptionView{
		ID:           opt.ID,
		ServiceID:    opt.ServiceID,
		Name:         opt.Name,
		Description:  opt.Description,
		Type:         opt.Type.String(),
		Required:     opt.Required,
		DefaultValue: opt.DefaultValue,
		Placeholder:  opt.Placeholder,
		MinValue:     opt.MinValue,
		MaxValue:     opt.MaxValue,
		PriceImpact:  opt.PriceImpact,
		PriceType:    opt.PriceType.String(),
		Unit:         opt.Unit,
		MinLength:    opt.MinLength,
		MaxLength:    opt.MaxLength,
		Rows:         opt.Rows,
		DisplayOrder: opt.DisplayOrder,
	}
	for _, c := range service.ParseChoices(opt.RawChoices) {
		view.Choices = append(view.Choices, queries.ChoiceView{Value: c.Value, Label: c.Label, Price: c.Price})
	}
	return view
}
