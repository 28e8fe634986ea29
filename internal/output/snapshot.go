package output

import "encoding/json"

// volatileKeys are fields that legitimately vary between identical
// comparisons and must be excluded from snapshot comparison.
var volatileKeys = map[string]struct{}{
	"duration":   {},
	"durationMs": {},
	"traceId":    {},
}

// StripVolatile returns a deep copy of v in generic JSON form with volatile
// fields removed at every nesting level.
func StripVolatile(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return stripValue(generic), nil
}

func stripValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, inner := range val {
			if _, volatile := volatileKeys[k]; volatile {
				delete(val, k)
				continue
			}
			val[k] = stripValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = stripValue(inner)
		}
		return val
	default:
		return v
	}
}

// SnapshotEqual reports whether two values encode identically once volatile
// fields are stripped.
func SnapshotEqual(a, b any) (bool, error) {
	sa, err := StripVolatile(a)
	if err != nil {
		return false, err
	}
	sb, err := StripVolatile(b)
	if err != nil {
		return false, err
	}
	ea, err := DeterministicEncode(sa)
	if err != nil {
		return false, err
	}
	eb, err := DeterministicEncode(sb)
	if err != nil {
		return false, err
	}
	return string(ea) == string(eb), nil
}
