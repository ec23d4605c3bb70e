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

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func TestValidateValueRequired(t *testing.T) {
	opt := buildOption(t, service.TypeText, service.PriceNone, "0")
	opt.Required = true

	t.Run("empty submission on required option", func(t *testing.T) {
		errs := service.ValidateValue(opt, "")
		require.Len(t, errs, 1)
		assert.Equal(t, opt.ID, errs[0].OptionID)
		assert.Equal(t, "is required", errs[0].Message)
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		errs := service.ValidateValue(opt, "   ")
		require.Len(t, errs, 1)
	})

	t.Run("literal zero is a real value", func(t *testing.T) {
		assert.Empty(t, service.ValidateValue(opt, "0"))
	})

	t.Run("optional empty submission is acceptable", func(t *testing.T) {
		optional := buildOption(t, service.TypeText, service.PriceNone, "0")
		assert.Empty(t, service.ValidateValue(optional, ""))
	})
}

func TestValidateValueNumeric(t *testing.T) {
	opt := buildOption(t, service.TypeNumber, service.PriceNone, "0")
	opt.MinValue = decimalPtr("2")
	opt.MaxValue = decimalPtr("10")

	t.Run("within bounds", func(t *testing.T) {
		assert.Empty(t, service.ValidateValue(opt, "2"))
		assert.Empty(t, service.ValidateValue(opt, "10"))
		assert.Empty(t, service.ValidateValue(opt, "5.5"))
	})

	t.Run("below minimum", func(t *testing.T) {
		errs := service.ValidateValue(opt, "1")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at least 2", errs[0].Message)
	})

	t.Run("above maximum", func(t *testing.T) {
		errs := service.ValidateValue(opt, "11")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at most 10", errs[0].Message)
	})

	t.Run("not a number", func(t *testing.T) {
		errs := service.ValidateValue(opt, "abc")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be a number", errs[0].Message)
	})
}

func TestValidateValueText(t *testing.T) {
	opt := buildOption(t, service.TypeText, service.PriceNone, "0")
	opt.MinLength = intPtr(3)
	opt.MaxLength = intPtr(5)

	t.Run("length in runes not bytes", func(t *testing.T) {
		assert.Empty(t, service.ValidateValue(opt, "日本語"))
	})

	t.Run("too short", func(t *testing.T) {
		errs := service.ValidateValue(opt, "ab")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at least 3 characters", errs[0].Message)
	})

	t.Run("too long", func(t *testing.T) {
		errs := service.ValidateValue(opt, "abcdef")
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at most 5 characters", errs[0].Message)
	})
}

func TestValidateValueChoice(t *testing.T) {
	opt := buildOption(t, service.TypeSelect, service.PriceChoice, "0")
	opt.RawChoices = "small|Small:0\nlarge|Large:20"

	t.Run("known choice", func(t *testing.T) {
		assert.Empty(t, service.ValidateValue(opt, "large"))
	})

	t.Run("unknown choice", func(t *testing.T) {
		errs := service.ValidateValue(opt, "medium")
		require.Len(t, errs, 1)
		assert.Equal(t, "is not a valid choice", errs[0].Message)
	})
}

func TestOptionValidate(t *testing.T) {
	t.Run("min bound above max bound", func(t *testing.T) {
		opt := buildOption(t, service.TypeNumber, service.PriceNone, "0")
		opt.MinValue = decimalPtr("10")
		opt.MaxValue = decimalPtr("2")
		assert.ErrorIs(t, opt.Validate(), service.ErrInvalidBounds)
	})

	t.Run("min length above max length", func(t *testing.T) {
		opt := buildOption(t, service.TypeText, service.PriceNone, "0")
		opt.MinLength = intPtr(10)
		opt.MaxLength = intPtr(2)
		assert.ErrorIs(t, opt.Validate(), service.ErrInvalidBounds)
	})

	t.Run("new option rejects bad inputs", func(t *testing.T) {
		_, err := service.NewOption(uuid.New(), "  ", service.TypeText, service.PriceNone, decimal.Zero)
		assert.ErrorIs(t, err, service.ErrEmptyOptionName)

		_, err = service.NewOption(uuid.New(), "x", "bogus", service.PriceNone, decimal.Zero)
		assert.ErrorIs(t, err, service.ErrInvalidOptionType)

		_, err = service.NewOption(uuid.New(), "x", service.TypeText, "bogus", decimal.Zero)
		assert.ErrorIs(t, err, service.ErrInvalidPriceType)
	})

	t.Run("empty price type defaults to none", func(t *testing.T) {
		opt, err := service.NewOption(uuid.New(), "x", service.TypeText, "", decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, service.PriceNone, opt.PriceType)
	})
}
