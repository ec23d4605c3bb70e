package readstore

import (
	"context"

	"servicebook/internal/domain/discount"
	"servicebook/internal/infra/db"
	"servicebook/internal/infra/repository"
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountReadStore struct {
	db        db.DBTX
	discounts *repository.DiscountRepository
}

func NewDiscountReadStore(database db.DBTX, discounts *repository.DiscountRepository) *DiscountReadStore {
	return &DiscountReadStore{db: database, discounts: discounts}
}

func (s *DiscountReadStore) FindByCode(ctx context.Context, ownerID uuid.UUID, code string) (*discount.Discount, error) {
	return s.discounts.FindByCode(ctx, s.db, ownerID, code)
}

func (s *DiscountReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.DiscountView, error) {
	discounts, err := s.discounts.ListByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]queries.DiscountView, len(discounts))
	for i, d := range discounts {
		views[i] = queries.DiscountView{
			ID:         d.ID,
			Code:       d.Code,
			Type:       string(d.Type),
			Amount:     d.Amount,
			UsageLimit: d.UsageLimit,
			UsageCount: d.UsageCount,
			ExpiresAt:  d.ExpiryDate,
			Active:     d.Active,
			CreatedAt:  d.CreatedAt,
		}
	}
	return views, nil
}
