package response

import (
	"time"

	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	UsageLimit *int32          `json:"usageLimit,omitempty"`
	UsageCount int32           `json:"usageCount"`
	ExpiresAt  *time.Time      `json:"expiresAt,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type DiscountPreviewResponse struct {
	Code           string          `json:"code"`
	Valid          bool            `json:"valid"`
	Reason         string          `json:"reason,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

func FromDiscountView(v *queries.DiscountView) *DiscountResponse {
	return &DiscountResponse{
		ID:         v.ID,
		Code:       v.Code,
		Type:       v.Type,
		Amount:     v.Amount,
		UsageLimit: v.UsageLimit,
		UsageCount: v.UsageCount,
		ExpiresAt:  v.ExpiresAt,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
	}
}

func FromDiscountViews(views []queries.DiscountView) []*DiscountResponse {
	out := make([]*DiscountResponse, len(views))
	for i := range views {
		out[i] = FromDiscountView(&views[i])
	}
	return out
}

func FromDiscountPreview(p *queries.DiscountPreview) *DiscountPreviewResponse {
	return &DiscountPreviewResponse{
		Code:           p.Code,
		Valid:          p.Valid,
		Reason:         p.Reason,
		DiscountAmount: p.DiscountAmount,
	}
}
