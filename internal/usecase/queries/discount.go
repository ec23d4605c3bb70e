package queries

import (
	"context"

	"servicebook/internal/domain/discount"
	"servicebook/internal/infra"
	"servicebook/internal/pkg/clock"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountReadStore interface {
	FindByCode(ctx context.Context, ownerID uuid.UUID, code string) (*discount.Discount, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]DiscountView, error)
}

type DiscountQueries interface {
	ListDiscounts(ctx context.Context, ownerID uuid.UUID) ([]DiscountView, error)
	// Preview validates a code against the current time and computes the
	// amount it would shave off the given subtotal. It never consumes a use;
	// redemption happens inside the booking transaction.
	Preview(ctx context.Context, ownerID uuid.UUID, code string, subtotal decimal.Decimal) (*DiscountPreview, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
	clk   clock.Clock
}

func NewDiscountQueries(store DiscountReadStore, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{store: store, clk: clk}
}

func (q *discountQueriesImpl) ListDiscounts(ctx context.Context, ownerID uuid.UUID) ([]DiscountView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *discountQueriesImpl) Preview(ctx context.Context, ownerID uuid.UUID, code string, subtotal decimal.Decimal) (*DiscountPreview, error) {
	d, err := q.store.FindByCode(ctx, ownerID, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	preview := &DiscountPreview{Code: d.Code}
	if verr := d.ValidateAt(q.clk.Now()); verr != nil {
		preview.Valid = false
		preview.Reason = verr.Error()
		preview.DiscountAmount = decimal.Zero
		return preview, nil
	}
	preview.Valid = true
	preview.DiscountAmount = d.ComputeAmount(subtotal)
	return preview, nil
}
