package output

import (
	"bytes"
	"encoding/json"
)

// DeterministicEncode produces byte-identical JSON for equal values.
// The value is round-tripped through generic JSON form so struct field
// order stops mattering, floats are normalized, and map keys come out
// sorted (encoding/json sorts map keys on marshal).
func DeterministicEncode(v any) ([]byte, error) {
	normalized, err := normalize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

// DeterministicEncodeIndented is DeterministicEncode with indentation, for
// human-facing JSON output.
func DeterministicEncodeIndented(v any, indent string) ([]byte, error) {
	normalized, err := normalize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

// normalize round-trips v into generic JSON form with floats rounded.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return normalizeValue(generic), nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case float64:
		return RoundFloat(val)
	case map[string]any:
		for k, inner := range val {
			val[k] = normalizeValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalizeValue(inner)
		}
		return val
	default:
		return v
	}
}
