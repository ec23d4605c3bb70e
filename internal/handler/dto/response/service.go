package response

import (
	"time"

	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ChoiceResponse struct {
	Value string          `json:"value"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

type OptionResponse struct {
	ID           uuid.UUID        `json:"id"`
	ServiceID    uuid.UUID        `json:"serviceId"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Type         string           `json:"type"`
	Required     bool             `json:"required"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Placeholder  string           `json:"placeholder,omitempty"`
	MinValue     *decimal.Decimal `json:"minValue,omitempty"`
	MaxValue     *decimal.Decimal `json:"maxValue,omitempty"`
	PriceImpact  decimal.Decimal  `json:"priceImpact"`
	PriceType    string           `json:"priceType"`
	Choices      []ChoiceResponse `json:"choices,omitempty"`
	Unit         string           `json:"unit,omitempty"`
	MinLength    *int             `json:"minLength,omitempty"`
	MaxLength    *int             `json:"maxLength,omitempty"`
	Rows         *int             `json:"rows,omitempty"`
	DisplayOrder int              `json:"displayOrder"`
}

type ServiceResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	DurationMin int              `json:"durationMin"`
	Icon        string           `json:"icon,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Category    string           `json:"category,omitempty"`
	Status      string           `json:"status"`
	Options     []OptionResponse `json:"options"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	options := make([]OptionResponse, len(v.Options))
	for i, opt := range v.Options {
		options[i] = fromOptionView(opt)
	}
	return &ServiceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		DurationMin: v.DurationMin,
		Icon:        v.Icon,
		ImageURL:    v.ImageURL,
		Category:    v.Category,
		Status:      v.Status,
		Options:     options,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromServiceViews(views []queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(views))
	for i := range views {
		out[i] = FromServiceView(&views[i])
	}
	return out
}

func fromOptionView(v queries.OptionView) OptionResponse {
	choices := make([]ChoiceResponse, len(v.Choices))
	for i, c := range v.Choices {
		choices[i] = ChoiceResponse{Value: c.Value, Label: c.Label, Price: c.Price}
	}
	return OptionResponse{
		ID:           v.ID,
		ServiceID:    v.ServiceID,
		Name:         v.Name,
		Description:  v.Description,
		Type:         v.Type,
		Required:     v.Required,
		DefaultValue: v.DefaultValue,
		Placeholder:  v.Placeholder,
		MinValue:     v.MinValue,
		MaxValue:     v.MaxValue,
		PriceImpact:  v.PriceImpact,
		PriceType:    v.PriceType,
		Choices:      choices,
		Unit:         v.Unit,
		MinLength:    v.MinLength,
		MaxLength:    v.MaxLength,
		Rows:         v.Rows,
		DisplayOrder: v.DisplayOrder,
	}
}
