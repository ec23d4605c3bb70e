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

func TestNewService(t *testing.T) {
	ownerID := uuid.New()

	t.Run("defaults to draft when status is empty", func(t *testing.T) {
		svc, err := service.NewService(ownerID, "House Cleaning", "", decimal.NewFromInt(100), 60, "", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, service.StatusDraft, svc.Status)
		assert.False(t, svc.Bookable())
	})

	t.Run("active service is bookable", func(t *testing.T) {
		svc, err := service.NewService(ownerID, "Lawn Care", "", decimal.NewFromInt(50), 30, "", "", "", service.StatusActive)
		require.NoError(t, err)
		assert.True(t, svc.Bookable())
	})

	t.Run("trims name description and category", func(t *testing.T) {
		svc, err := service.NewService(ownerID, "  Window Wash ", " sparkle ", decimal.NewFromInt(40), 45, "", "", " outdoor ", service.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, "Window Wash", svc.Name)
		assert.Equal(t, "sparkle", svc.Description)
		assert.Equal(t, "outdoor", svc.Category)
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := service.NewService(ownerID, "  ", "", decimal.NewFromInt(10), 60, "", "", "", "")
		assert.ErrorIs(t, err, service.ErrEmptyName)

		_, err = service.NewService(ownerID, "X", "", decimal.NewFromInt(-1), 60, "", "", "", "")
		assert.ErrorIs(t, err, service.ErrNegativePrice)

		_, err = service.NewService(ownerID, "X", "", decimal.NewFromInt(10), 0, "", "", "", "")
		assert.ErrorIs(t, err, service.ErrInvalidDuration)

		_, err = service.NewService(ownerID, "X", "", decimal.NewFromInt(10), 60, "", "", "", "bogus")
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})
}
