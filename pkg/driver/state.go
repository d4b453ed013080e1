package driver

// Session state helpers. Handle decoding yields map values with generic
// numeric types (int64, uint64, float64 depending on the decoder); these
// helpers coerce them so RestoreSession implementations stay small.

// StateInt reads an integer session field. Returns the fallback when the
// field is missing or not numeric.
func StateInt(state map[string]any, key string, fallback int) int {
	v, ok := state[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// StateBool reads a boolean session field.
func StateBool(state map[string]any, key string, fallback bool) bool {
	if v, ok := state[key].(bool); ok {
		return v
	}
	return fallback
}

// StateString reads a string session field.
func StateString(state map[string]any, key string, fallback string) string {
	if v, ok := state[key].(string); ok {
		return v
	}
	return fallback
}
