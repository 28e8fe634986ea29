package compare

import (
	"strings"

	"github.com/spf13/cast"
)

// Default tuning values, used when neither the base config nor the per-call
// overrides say otherwise.
const (
	DefaultFloatEps             = 1e-6
	DefaultLargeOutputThreshold = 2 << 20 // 2 MiB
	DefaultTokenSetSizeLimit    = 512
)

// UnicodeForm selects the Unicode normalization form applied to both inputs
// before any strategy runs.
type UnicodeForm string

const (
	UnicodeNFC  UnicodeForm = "NFC"
	UnicodeNFD  UnicodeForm = "NFD"
	UnicodeNFKC UnicodeForm = "NFKC"
	UnicodeNFKD UnicodeForm = "NFKD"
)

// Config holds the comparator tuning knobs. A Config is treated as an
// immutable snapshot for the duration of one comparison call; per-call
// overrides produce a derived copy instead of mutating shared state.
type Config struct {
	// FloatEps is the tolerance for the float equality rule.
	FloatEps float64 `json:"floatEps" mapstructure:"floatEps"`

	// UnicodeForm is the normalization form for the base normalizer.
	UnicodeForm UnicodeForm `json:"unicodeForm" mapstructure:"unicodeForm"`

	// LargeOutputThreshold is the size in bytes at or above which strategy
	// evaluation is skipped in favor of the SHA-256 guard. Zero disables
	// the guard.
	LargeOutputThreshold int `json:"largeOutputThreshold" mapstructure:"largeOutputThreshold"`

	// TokenSetSizeLimit is the maximum input length the TOKEN_SET strategy
	// will tokenize.
	TokenSetSizeLimit int `json:"tokenSetSizeLimit" mapstructure:"tokenSetSizeLimit"`
}

// DefaultConfig returns the comparator defaults.
func DefaultConfig() Config {
	return Config{
		FloatEps:             DefaultFloatEps,
		UnicodeForm:          UnicodeNFC,
		LargeOutputThreshold: DefaultLargeOutputThreshold,
		TokenSetSizeLimit:    DefaultTokenSetSizeLimit,
	}
}

// Overrides is the per-call override bag, typically deserialized from a
// per-test-case configuration row. Keys are resolved leniently: unknown keys
// are ignored and malformed values fall back to the base config, so an
// override can never crash a comparison.
type Overrides map[string]any

// overrideValues is the typed view of an override bag, decoded once per call
// so strategies and the normalizer see the same resolved values.
type overrideValues struct {
	floatEps             *float64
	unicodeForm          *UnicodeForm
	largeOutputThreshold *int
	tokenSetLimit        *int
}

// decodeOverrides resolves the override bag into typed values. Both flat
// keys ("float_eps") and nested spellings ("float": {"eps": ...}) are
// accepted.
func decodeOverrides(o Overrides) overrideValues {
	var ov overrideValues
	if len(o) == 0 {
		return ov
	}

	if f, ok := lookupFloat(o, "float_eps"); ok {
		ov.floatEps = &f
	} else if f, ok := lookupNestedFloat(o, "float", "eps"); ok {
		ov.floatEps = &f
	}

	if n, ok := lookupInt(o, "token_set_limit"); ok {
		ov.tokenSetLimit = &n
	} else if n, ok := lookupNestedInt(o, "token", "limit"); ok {
		ov.tokenSetLimit = &n
	}

	if n, ok := lookupInt(o, "large_output_threshold"); ok {
		ov.largeOutputThreshold = &n
	}

	if s, ok := lookupString(o, "unicode_form"); ok {
		form := UnicodeForm(strings.ToUpper(strings.TrimSpace(s)))
		switch form {
		case UnicodeNFC, UnicodeNFD, UnicodeNFKC, UnicodeNFKD:
			ov.unicodeForm = &form
		}
	}

	return ov
}

// withOverrides derives a call-level config. The receiver is copied, never
// mutated, so the base config can be shared across concurrent calls.
func (c Config) withOverrides(ov overrideValues) Config {
	derived := c
	if ov.floatEps != nil {
		derived.FloatEps = *ov.floatEps
	}
	if ov.unicodeForm != nil {
		derived.UnicodeForm = *ov.unicodeForm
	}
	if ov.largeOutputThreshold != nil {
		derived.LargeOutputThreshold = *ov.largeOutputThreshold
	}
	if ov.tokenSetLimit != nil {
		derived.TokenSetSizeLimit = *ov.tokenSetLimit
	}
	return derived
}

func lookupFloat(o Overrides, key string) (float64, bool) {
	raw, ok := o[key]
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, false
	}
	return f, true
}

func lookupInt(o Overrides, key string) (int, bool) {
	raw, ok := o[key]
	if !ok {
		return 0, false
	}
	n, err := cast.ToIntE(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func lookupString(o Overrides, key string) (string, bool) {
	raw, ok := o[key]
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	return s, true
}

func lookupNestedFloat(o Overrides, outer, inner string) (float64, bool) {
	nested, err := cast.ToStringMapE(o[outer])
	if err != nil {
		return 0, false
	}
	return lookupFloat(nested, inner)
}

func lookupNestedInt(o Overrides, outer, inner string) (int, bool) {
	nested, err := cast.ToStringMapE(o[outer])
	if err != nil {
		return 0, false
	}
	return lookupInt(nested, inner)
}
