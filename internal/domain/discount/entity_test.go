//go:build unit

package discount_test

import (
	"testing"
	"time"

	"servicebook/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(n int32) *int32 {
	return &n
}

func TestNew(t *testing.T) {
	t.Run("code is trimmed and uppercased", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "  summer10 ", discount.TypePercentage, decimal.NewFromInt(10), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", d.Code)
		assert.True(t, d.Active)
		assert.Zero(t, d.UsageCount)
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := discount.New(uuid.New(), "   ", discount.TypeFixed, decimal.NewFromInt(5), nil, nil)
		assert.ErrorIs(t, err, discount.ErrEmptyCode)

		_, err = discount.New(uuid.New(), "X", "bogus", decimal.NewFromInt(5), nil, nil)
		assert.ErrorIs(t, err, discount.ErrInvalidType)

		_, err = discount.New(uuid.New(), "X", discount.TypeFixed, decimal.NewFromInt(-5), nil, nil)
		assert.ErrorIs(t, err, discount.ErrInvalidAmount)
	})
}

func TestValidateAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid code", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "OK", discount.TypeFixed, decimal.NewFromInt(5), nil, nil)
		require.NoError(t, err)
		assert.NoError(t, d.ValidateAt(now))
	})

	t.Run("expired", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		d, err := discount.New(uuid.New(), "OLD", discount.TypeFixed, decimal.NewFromInt(5), &expiry, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, d.ValidateAt(now), discount.ErrExpired)
	})

	t.Run("expiry moment itself is still valid", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "EDGE", discount.TypeFixed, decimal.NewFromInt(5), &now, nil)
		require.NoError(t, err)
		assert.NoError(t, d.ValidateAt(now))
	})

	t.Run("exhausted", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "FULL", discount.TypeFixed, decimal.NewFromInt(5), nil, int32Ptr(3))
		require.NoError(t, err)
		d.UsageCount = 3
		assert.ErrorIs(t, d.ValidateAt(now), discount.ErrExhausted)
	})

	t.Run("inactive", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "OFF", discount.TypeFixed, decimal.NewFromInt(5), nil, nil)
		require.NoError(t, err)
		d.Active = false
		assert.ErrorIs(t, d.ValidateAt(now), discount.ErrInactive)
	})

	t.Run("expiry dominates the active flag", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		d, err := discount.New(uuid.New(), "BOTH", discount.TypeFixed, decimal.NewFromInt(5), &expiry, nil)
		require.NoError(t, err)
		d.Active = false
		assert.ErrorIs(t, d.ValidateAt(now), discount.ErrExpired)
	})
}

func TestComputeAmount(t *testing.T) {
	subtotal := decimal.RequireFromString("200.00")

	t.Run("percentage", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "PCT", discount.TypePercentage, decimal.NewFromInt(15), nil, nil)
		require.NoError(t, err)
		assert.True(t, d.ComputeAmount(subtotal).Equal(decimal.RequireFromString("30.00")))
	})

	t.Run("percentage rounds to cents", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "PCT2", discount.TypePercentage, decimal.RequireFromString("12.5"), nil, nil)
		require.NoError(t, err)
		got := d.ComputeAmount(decimal.RequireFromString("99.99"))
		assert.True(t, got.Equal(decimal.RequireFromString("12.50")), "got %s", got)
	})

	t.Run("fixed", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "FIX", discount.TypeFixed, decimal.NewFromInt(25), nil, nil)
		require.NoError(t, err)
		assert.True(t, d.ComputeAmount(subtotal).Equal(decimal.NewFromInt(25)))
	})

	t.Run("fixed clamps to the subtotal", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "BIG", discount.TypeFixed, decimal.NewFromInt(500), nil, nil)
		require.NoError(t, err)
		assert.True(t, d.ComputeAmount(subtotal).Equal(subtotal))
	})

	t.Run("non-positive subtotal discounts zero", func(t *testing.T) {
		d, err := discount.New(uuid.New(), "ZERO", discount.TypePercentage, decimal.NewFromInt(50), nil, nil)
		require.NoError(t, err)
		assert.True(t, d.ComputeAmount(decimal.Zero).IsZero())
		assert.True(t, d.ComputeAmount(decimal.NewFromInt(-10)).IsZero())
	})
}
