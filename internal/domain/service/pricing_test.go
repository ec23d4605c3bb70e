//go:build unit

package service_test

import (
	"testing"

	"servicebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOption(t *testing.T, optType service.OptionType, priceType service.PriceType, impact string) *service.Option {
	t.Helper()
	opt, err := service.NewOption(uuid.New(), "Test Option", optType, priceType, decimal.RequireFromString(impact))
	require.NoError(t, err)
	return opt
}

func assertImpact(t *testing.T, opt *service.Option, submitted, expected string) {
	t.Helper()
	got := service.ComputeImpact(opt, submitted)
	assert.True(t, got.Equal(decimal.RequireFromString(expected)),
		"submitted %q: expected %s, got %s", submitted, expected, got.String())
}

func TestComputeImpactCheckbox(t *testing.T) {
	opt := buildOption(t, service.TypeCheckbox, service.PriceFixed, "25")

	t.Run("checked values price the flat impact", func(t *testing.T) {
		assertImpact(t, opt, "1", "25")
		assertImpact(t, opt, "true", "25")
		assertImpact(t, opt, "TRUE", "25")
	})

	t.Run("unchecked values price zero", func(t *testing.T) {
		assertImpact(t, opt, "0", "0")
		assertImpact(t, opt, "false", "0")
		assertImpact(t, opt, "no", "0")
	})
}

func TestComputeImpactChoice(t *testing.T) {
	t.Run("choice price type uses the per-choice price", func(t *testing.T) {
		opt := buildOption(t, service.TypeSelect, service.PriceChoice, "10")
		opt.RawChoices = "basic|Basic:0\ndeep|Deep:40"

		assertImpact(t, opt, "deep", "40")
		assertImpact(t, opt, "basic", "0")
	})

	t.Run("choice price type with unknown value prices zero", func(t *testing.T) {
		opt := buildOption(t, service.TypeSelect, service.PriceChoice, "10")
		opt.RawChoices = "a|A:5"

		assertImpact(t, opt, "missing", "0")
	})

	t.Run("other price types prefer a positive per-choice price", func(t *testing.T) {
		opt := buildOption(t, service.TypeRadio, service.PriceFixed, "10")
		opt.RawChoices = "cheap|Cheap:0\npricier|Pricier:15"

		assertImpact(t, opt, "pricier", "15")
		// zero per-choice price falls back to the option impact
		assertImpact(t, opt, "cheap", "10")
	})
}

func TestComputeImpactNumeric(t *testing.T) {
	t.Run("multiply scales the impact by the value", func(t *testing.T) {
		opt := buildOption(t, service.TypeQuantity, service.PriceMultiply, "12.50")

		assertImpact(t, opt, "3", "37.50")
		assertImpact(t, opt, "0", "0")
	})

	t.Run("multiply with unparseable value prices zero", func(t *testing.T) {
		opt := buildOption(t, service.TypeNumber, service.PriceMultiply, "5")
		assertImpact(t, opt, "abc", "0")
	})

	t.Run("fixed prices flat regardless of value", func(t *testing.T) {
		opt := buildOption(t, service.TypeNumber, service.PriceFixed, "30")
		assertImpact(t, opt, "7", "30")
	})

	t.Run("percentage behaves like fixed for numeric options", func(t *testing.T) {
		opt := buildOption(t, service.TypeNumber, service.PricePercentage, "30")
		assertImpact(t, opt, "200", "30")
	})
}

func TestComputeImpactGeneral(t *testing.T) {
	t.Run("empty submission never prices", func(t *testing.T) {
		opt := buildOption(t, service.TypeText, service.PriceFixed, "99")
		opt.Required = true

		assertImpact(t, opt, "", "0")
		assertImpact(t, opt, "   ", "0")
	})

	t.Run("negative impact clamps to zero", func(t *testing.T) {
		opt := buildOption(t, service.TypeCheckbox, service.PriceFixed, "-10")
		assertImpact(t, opt, "1", "0")

		mult := buildOption(t, service.TypeNumber, service.PriceMultiply, "5")
		assertImpact(t, mult, "-2", "0")
	})

	t.Run("text options price the flat impact when filled", func(t *testing.T) {
		opt := buildOption(t, service.TypeTextarea, service.PriceFixed, "8")
		assertImpact(t, opt, "please ring the bell", "8")
	})
}
