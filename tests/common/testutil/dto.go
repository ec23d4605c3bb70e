//go:build unit

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a valid request DTO through JSON into a map and applies
// the given mutators. Validation tests start from a known-good body and break
// one field at a time.
func DtoMap(t *testing.T, dto any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := make(map[string]any)
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, mut := range muts {
		mut(body)
	}
	return body
}
