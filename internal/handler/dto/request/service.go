package request

import (
	"strings"

	"servicebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
	Icon        string          `json:"icon"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
}

func (r CreateServiceRequest) ToDomain(ownerID uuid.UUID) (*service.Service, error) {
	return service.NewService(ownerID, r.Name, r.Description, r.Price, r.DurationMin,
		r.Icon, r.ImageURL, r.Category, service.Status(r.Status))
}

type UpdateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
	Icon        string          `json:"icon"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Status      string          `json:"status" binding:"required"`
}

func (r UpdateServiceRequest) ToDomain(serviceID, ownerID uuid.UUID) (*service.Service, error) {
	svc, err := service.NewService(ownerID, r.Name, r.Description, r.Price, r.DurationMin,
		r.Icon, r.ImageURL, r.Category, service.Status(r.Status))
	if err != nil {
		return nil, err
	}
	svc.ID = serviceID
	return svc, nil
}

type OptionRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	Type         string           `json:"type" binding:"required"`
	Required     bool             `json:"required"`
	DefaultValue string           `json:"default_value"`
	Placeholder  string           `json:"placeholder"`
	MinValue     *decimal.Decimal `json:"min_value,omitempty"`
	MaxValue     *decimal.Decimal `json:"max_value,omitempty"`
	PriceImpact  decimal.Decimal  `json:"price_impact"`
	PriceType    string           `json:"price_type"`
	Choices      string           `json:"choices"`
	ChoiceLabel  string           `json:"choice_label"`
	Step         *decimal.Decimal `json:"step,omitempty"`
	Unit         string           `json:"unit"`
	MinLength    *int             `json:"min_length,omitempty"`
	MaxLength    *int             `json:"max_length,omitempty"`
	Rows         *int             `json:"rows,omitempty"`
}

func (r OptionRequest) ToDomain(serviceID uuid.UUID) (*service.Option, error) {
	opt, err := service.NewOption(serviceID, r.Name, service.OptionType(r.Type),
		service.PriceType(r.PriceType), r.PriceImpact)
	if err != nil {
		return nil, err
	}
	opt.Description = strings.TrimSpace(r.Description)
	opt.Required = r.Required
	opt.DefaultValue = r.DefaultValue
	opt.Placeholder = r.Placeholder
	opt.MinValue = r.MinValue
	opt.MaxValue = r.MaxValue
	opt.RawChoices = r.Choices
	opt.ChoiceLabel = r.ChoiceLabel
	opt.Step = r.Step
	opt.Unit = r.Unit
	opt.MinLength = r.MinLength
	opt.MaxLength = r.MaxLength
	opt.Rows = r.Rows

	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

type ReorderOptionsRequest struct {
	OptionIDs []uuid.UUID `json:"option_ids" binding:"required,min=1"`
}
