//go:build unit

package migration_test

import (
	"testing"

	"servicebook/internal/infra/migration"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLegacyServices(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()

	t.Run("array of id strings defaults quantity to 1", func(t *testing.T) {
		raw := `["` + idA.String() + `","` + idB.String() + `"]`
		refs, err := migration.DecodeLegacyServices(raw)
		require.NoError(t, err)
		require.Len(t, refs, 2)

		assert.Equal(t, idA, refs[0].ServiceID)
		assert.Equal(t, int32(1), refs[0].Quantity)
		assert.Equal(t, idB, refs[1].ServiceID)
	})

	t.Run("array of objects carries quantity", func(t *testing.T) {
		raw := `[{"service_id":"` + idA.String() + `","quantity":3},{"service_id":"` + idB.String() + `"}]`
		refs, err := migration.DecodeLegacyServices(raw)
		require.NoError(t, err)
		require.Len(t, refs, 2)

		assert.Equal(t, int32(3), refs[0].Quantity)
		assert.Equal(t, int32(1), refs[1].Quantity, "missing quantity defaults to 1")
	})

	t.Run("id strings and objects with quantity 1 decode identically", func(t *testing.T) {
		fromStrings, err := migration.DecodeLegacyServices(`["` + idA.String() + `","` + idB.String() + `"]`)
		require.NoError(t, err)
		fromObjects, err := migration.DecodeLegacyServices(
			`[{"service_id":"` + idA.String() + `","quantity":1},{"service_id":"` + idB.String() + `","quantity":1}]`)
		require.NoError(t, err)

		if diff := cmp.Diff(fromStrings, fromObjects); diff != "" {
			t.Errorf("decoded refs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-positive quantity defaults to 1", func(t *testing.T) {
		raw := `[{"service_id":"` + idA.String() + `","quantity":0}]`
		refs, err := migration.DecodeLegacyServices(raw)
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, int32(1), refs[0].Quantity)
	})

	t.Run("empty and null payloads decode to nothing", func(t *testing.T) {
		for _, raw := range []string{"", "null"} {
			refs, err := migration.DecodeLegacyServices(raw)
			require.NoError(t, err)
			assert.Empty(t, refs)
		}
	})

	t.Run("bad id fails", func(t *testing.T) {
		_, err := migration.DecodeLegacyServices(`["not-a-uuid"]`)
		assert.Error(t, err)
	})

	t.Run("unrecognized payload fails", func(t *testing.T) {
		_, err := migration.DecodeLegacyServices(`{"service_id":"x"}`)
		assert.Error(t, err)
	})
}

func TestDecodeLegacyOptions(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	idC := uuid.New()

	t.Run("scalar values stringify", func(t *testing.T) {
		raw := `{"` + idA.String() + `":"deep","` + idB.String() + `":3,"` + idC.String() + `":true}`
		values, err := migration.DecodeLegacyOptions(raw)
		require.NoError(t, err)
		require.Len(t, values, 3)

		byID := map[uuid.UUID]string{}
		for _, v := range values {
			byID[v.OptionID] = v.Value
		}
		assert.Equal(t, "deep", byID[idA])
		assert.Equal(t, "3", byID[idB])
		assert.Equal(t, "1", byID[idC])
	})

	t.Run("false and null stringify to 0 and empty", func(t *testing.T) {
		raw := `{"` + idA.String() + `":false,"` + idB.String() + `":null}`
		values, err := migration.DecodeLegacyOptions(raw)
		require.NoError(t, err)

		byID := map[uuid.UUID]string{}
		for _, v := range values {
			byID[v.OptionID] = v.Value
		}
		assert.Equal(t, "0", byID[idA])
		assert.Equal(t, "", byID[idB])
	})

	t.Run("fractional numbers keep their decimals", func(t *testing.T) {
		raw := `{"` + idA.String() + `":2.5}`
		values, err := migration.DecodeLegacyOptions(raw)
		require.NoError(t, err)
		require.Len(t, values, 1)
		assert.Equal(t, "2.5", values[0].Value)
	})

	t.Run("nested structures re-serialize to compact JSON", func(t *testing.T) {
		raw := `{"` + idA.String() + `":["a","b"]}`
		values, err := migration.DecodeLegacyOptions(raw)
		require.NoError(t, err)
		require.Len(t, values, 1)
		assert.JSONEq(t, `["a","b"]`, values[0].Value)
	})

	t.Run("empty and null payloads decode to nothing", func(t *testing.T) {
		for _, raw := range []string{"", "null"} {
			values, err := migration.DecodeLegacyOptions(raw)
			require.NoError(t, err)
			assert.Empty(t, values)
		}
	})

	t.Run("bad option id fails", func(t *testing.T) {
		_, err := migration.DecodeLegacyOptions(`{"nope":"x"}`)
		assert.Error(t, err)
	})
}
