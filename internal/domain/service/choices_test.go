//go:build unit

package service_test

import (
	"testing"

	"servicebook/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoices(t *testing.T) {
	t.Run("value only lines", func(t *testing.T) {
		choices := service.ParseChoices("small\nmedium\nlarge")
		require.Len(t, choices, 3)

		assert.Equal(t, "small", choices[0].Value)
		assert.Equal(t, "small", choices[0].Label)
		assert.True(t, choices[0].Price.IsZero())
	})

	t.Run("full value label price lines", func(t *testing.T) {
		choices := service.ParseChoices("basic|Basic Clean:0\ndeep|Deep Clean:49.90")
		require.Len(t, choices, 2)

		assert.Equal(t, "basic", choices[0].Value)
		assert.Equal(t, "Basic Clean", choices[0].Label)
		assert.True(t, choices[0].Price.IsZero())

		assert.Equal(t, "deep", choices[1].Value)
		assert.Equal(t, "Deep Clean", choices[1].Label)
		assert.True(t, choices[1].Price.Equal(decimal.RequireFromString("49.90")))
	})

	t.Run("label without price", func(t *testing.T) {
		choices := service.ParseChoices("std|Standard")
		require.Len(t, choices, 1)
		assert.Equal(t, "Standard", choices[0].Label)
		assert.True(t, choices[0].Price.IsZero())
	})

	t.Run("unparseable price falls back to zero", func(t *testing.T) {
		choices := service.ParseChoices("a|Label:abc")
		require.Len(t, choices, 1)
		assert.Equal(t, "Label", choices[0].Label)
		assert.True(t, choices[0].Price.IsZero())
	})

	t.Run("empty label falls back to value", func(t *testing.T) {
		choices := service.ParseChoices("xl|:15")
		require.Len(t, choices, 1)
		assert.Equal(t, "xl", choices[0].Label)
		assert.True(t, choices[0].Price.Equal(decimal.NewFromInt(15)))
	})

	t.Run("blank lines and surrounding whitespace are skipped", func(t *testing.T) {
		choices := service.ParseChoices("  one  \n\n   \n two|Two:5 \n")
		require.Len(t, choices, 2)
		assert.Equal(t, "one", choices[0].Value)
		assert.Equal(t, "two", choices[1].Value)
		assert.True(t, choices[1].Price.Equal(decimal.NewFromInt(5)))
	})

	t.Run("line with empty value is skipped", func(t *testing.T) {
		choices := service.ParseChoices("|Label:3\nreal")
		require.Len(t, choices, 1)
		assert.Equal(t, "real", choices[0].Value)
	})

	t.Run("order is preserved and duplicates kept", func(t *testing.T) {
		choices := service.ParseChoices("a|First:1\nb\na|Second:2")
		require.Len(t, choices, 3)
		assert.Equal(t, []string{"a", "b", "a"}, []string{choices[0].Value, choices[1].Value, choices[2].Value})
	})

	t.Run("empty input yields no choices", func(t *testing.T) {
		assert.Empty(t, service.ParseChoices(""))
		assert.Empty(t, service.ParseChoices("   \n  "))
	})
}

func TestFindChoice(t *testing.T) {
	choices := service.ParseChoices("a|First:1\nb|B:2\na|Second:3")

	t.Run("first match wins for duplicate values", func(t *testing.T) {
		c, ok := service.FindChoice(choices, "a")
		require.True(t, ok)
		assert.Equal(t, "First", c.Label)
		assert.True(t, c.Price.Equal(decimal.NewFromInt(1)))
	})

	t.Run("missing value", func(t *testing.T) {
		_, ok := service.FindChoice(choices, "z")
		assert.False(t, ok)
	})
}
