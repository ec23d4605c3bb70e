//go:build unit

package area_test

import (
	"testing"

	"servicebook/internal/domain/area"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidZip(t *testing.T) {
	valid := []string{"12345", "00000", "12345-6789"}
	for _, zip := range valid {
		t.Run("valid "+zip, func(t *testing.T) {
			assert.True(t, area.ValidZip(zip))
		})
	}

	invalid := []string{"", "1234", "123456", "12345-678", "12345-67890", "abcde", "12 345", "12345-", "-6789"}
	for _, zip := range invalid {
		name := zip
		if name == "" {
			name = "empty"
		}
		t.Run("invalid "+name, func(t *testing.T) {
			assert.False(t, area.ValidZip(zip))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("trims input and starts active", func(t *testing.T) {
		a, err := area.New(uuid.New(), " 12345 ", "  Downtown ")
		require.NoError(t, err)
		assert.Equal(t, "12345", a.ZipCode)
		assert.Equal(t, "Downtown", a.Label)
		assert.True(t, a.Active)
	})

	t.Run("rejects malformed zip", func(t *testing.T) {
		_, err := area.New(uuid.New(), "1234", "")
		assert.ErrorIs(t, err, area.ErrInvalidZip)
	})
}
