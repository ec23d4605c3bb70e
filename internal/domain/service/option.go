package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOptionName   = errors.New("option name cannot be empty")
	ErrInvalidOptionType = errors.New("invalid option type")
	ErrInvalidPriceType  = errors.New("invalid price type")
	ErrInvalidBounds     = errors.New("min bound cannot exceed max bound")
)

// Option is a configurable add-on attached to a service. The persisted record
// is flat (many nullable columns keyed by Type); Config() projects it into the
// variant that actually applies so callers never reason about unrelated fields.
type Option struct {
	ID           uuid.UUID
	ServiceID    uuid.UUID
	Name         string
	Description  string
	Type         OptionType
	Required     bool
	DefaultValue string
	Placeholder  string
	MinValue     *decimal.Decimal
	MaxValue     *decimal.Decimal
	PriceImpact  decimal.Decimal
	PriceType    PriceType
	RawChoices   string
	ChoiceLabel  string
	Step         *decimal.Decimal
	Unit         string
	MinLength    *int
	MaxLength    *int
	Rows         *int
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewOption(serviceID uuid.UUID, name string, optType OptionType, priceType PriceType, priceImpact decimal.Decimal) (*Option, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyOptionName
	}
	if !optType.IsValid() {
		return nil, ErrInvalidOptionType
	}
	if priceType == "" {
		priceType = PriceNone
	}
	if !priceType.IsValid() {
		return nil, ErrInvalidPriceType
	}

	return &Option{
		ID:          uuid.New(),
		ServiceID:   serviceID,
		Name:        name,
		Type:        optType,
		PriceType:   priceType,
		PriceImpact: priceImpact,
	}, nil
}

// Validate checks the cross-field constraints of the flat record.
func (o *Option) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrEmptyOptionName
	}
	if !o.Type.IsValid() {
		return ErrInvalidOptionType
	}
	if !o.PriceType.IsValid() {
		return ErrInvalidPriceType
	}
	if o.MinValue != nil && o.MaxValue != nil && o.MinValue.GreaterThan(*o.MaxValue) {
		return ErrInvalidBounds
	}
	if o.MinLength != nil && o.MaxLength != nil && *o.MinLength > *o.MaxLength {
		return ErrInvalidBounds
	}
	return nil
}

// Config is the typed view of an option's configuration. Exactly one variant
// applies per option type.
type Config interface {
	isConfig()
}

// ToggleConfig applies to checkbox options.
type ToggleConfig struct{}

// NumericConfig applies to number and quantity options.
type NumericConfig struct {
	Min  *decimal.Decimal
	Max  *decimal.Decimal
	Step *decimal.Decimal
	Unit string
}

// TextConfig applies to text and textarea options.
type TextConfig struct {
	MinLength *int
	MaxLength *int
	Rows      int
}

// ChoiceConfig applies to select and radio options.
type ChoiceConfig struct {
	Choices []Choice
}

func (ToggleConfig) isConfig()  {}
func (NumericConfig) isConfig() {}
func (TextConfig) isConfig()    {}
func (ChoiceConfig) isConfig()  {}

// Config returns the variant matching the option's type. Unknown types fall
// back to TextConfig so validation and pricing degrade to the flat-impact
// rules.
func (o *Option) Config() Config {
	switch o.Type {
	case TypeCheckbox:
		return ToggleConfig{}
	case TypeNumber, TypeQuantity:
		return NumericConfig{Min: o.MinValue, Max: o.MaxValue, Step: o.Step, Unit: o.Unit}
	case TypeSelect, TypeRadio:
		return ChoiceConfig{Choices: ParseChoices(o.RawChoices)}
	case TypeText, TypeTextarea:
		rows := 0
		if o.Rows != nil {
			rows = *o.Rows
		}
		return TextConfig{MinLength: o.MinLength, MaxLength: o.MaxLength, Rows: rows}
	default:
		return TextConfig{}
	}
}
