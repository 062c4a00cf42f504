// internal/adapters/out/firestore/decode_fs.go
package firestore

import "time"

// Loose decode helpers for raw snapshot data. Firestore numbers can come back
// as int64 or float64 depending on how the document was written, so typed
// DataTo decoding is too brittle for documents with schema history.

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	default:
		return 0
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asStringSlice(v any) []string {
	raw := asSlice(v)
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s := asString(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}
