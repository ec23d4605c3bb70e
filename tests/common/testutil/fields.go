//go:build unit

package testutil

// Field returns a mutator for DtoMap that overwrites one key of the request
// body, or deletes the key entirely when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
