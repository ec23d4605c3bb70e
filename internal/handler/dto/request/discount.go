package request

import (
	"time"

	"servicebook/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	Code       string          `json:"code" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	UsageLimit *int32          `json:"usage_limit,omitempty"`
}

func (r CreateDiscountRequest) ToDomain(ownerID uuid.UUID) (*discount.Discount, error) {
	return discount.New(ownerID, r.Code, discount.Type(r.Type), r.Amount, r.ExpiryDate, r.UsageLimit)
}

type UpdateDiscountRequest struct {
	Code       string          `json:"code" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	UsageLimit *int32          `json:"usage_limit,omitempty"`
	Active     bool            `json:"active"`
}

func (r UpdateDiscountRequest) ToDomain(discountID, ownerID uuid.UUID) (*discount.Discount, error) {
	d, err := discount.New(ownerID, r.Code, discount.Type(r.Type), r.Amount, r.ExpiryDate, r.UsageLimit)
	if err != nil {
		return nil, err
	}
	d.ID = discountID
	d.Active = r.Active
	return d, nil
}

type PreviewDiscountRequest struct {
	Code     string          `json:"code" binding:"required"`
	Subtotal decimal.Decimal `json:"subtotal" binding:"required"`
}
