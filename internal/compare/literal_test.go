package compare

import (
	"math"
	"strings"
	"testing"
)

func TestParseLiteralScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  litKind
	}{
		{"integer", "42", litNumber},
		{"negative float", "-3.25", litNumber},
		{"exponent", "6.02e23", litNumber},
		{"infinity", "inf", litNumber},
		{"negative infinity", "-Infinity", litNumber},
		{"nan", "nan", litNumber},
		{"double quoted", `"hello"`, litString},
		{"single quoted", "'hello'", litString},
		{"python true", "True", litBool},
		{"json false", "false", litBool},
		{"python none", "None", litNull},
		{"json null", "null", litNull},
		{"surrounding whitespace", "  7  ", litNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseLiteral(tt.input)
			if err != nil {
				t.Fatalf("parseLiteral(%q) error: %v", tt.input, err)
			}
			if v.kind != tt.want {
				t.Errorf("kind = %d, want %d", v.kind, tt.want)
			}
		})
	}
}

func TestParseLiteralContainers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  litKind
	}{
		{"list", "[1, 2, 3]", litSequence},
		{"tuple", "(1, 2)", litSequence},
		{"single element tuple", "(1,)", litSequence},
		{"empty list", "[]", litSequence},
		{"set", "{1, 2, 3}", litSet},
		{"dict", "{'a': 1}", litMapping},
		{"empty braces are a mapping", "{}", litMapping},
		{"nested", "[{'k': [1, (2, 3)]}, {4, 5}]", litSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseLiteral(tt.input)
			if err != nil {
				t.Fatalf("parseLiteral(%q) error: %v", tt.input, err)
			}
			if v.kind != tt.want {
				t.Errorf("kind = %d, want %d", v.kind, tt.want)
			}
		})
	}
}

func TestParseLiteralRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bare word", "hello"},
		{"trailing garbage", "42 extra"},
		{"unterminated string", "'abc"},
		{"unterminated list", "[1, 2"},
		{"missing value", "{'a':}"},
		{"hex float", "0x1p4"},
		{"underscore number", "1_000"},
		{"invalid escape", `"\q"`},
		{"deep nesting", strings.Repeat("[", 500) + strings.Repeat("]", 500)},
		{"invalid utf8", "\xff\xfe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseLiteral(tt.input); err == nil {
				t.Errorf("parseLiteral(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParseLiteralStringEscapes(t *testing.T) {
	v, err := parseLiteral(`"a\tb\n\x41é"`)
	if err != nil {
		t.Fatalf("parseLiteral error: %v", err)
	}
	if want := "a\tb\nAé"; v.str != want {
		t.Errorf("str = %q, want %q", v.str, want)
	}
}

func TestLiteralEqual(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		eps      float64
		want     bool
	}{
		{"identical lists", "[1, 2, 3]", "[1,2,3]", 1e-6, true},
		{"list order matters", "[1, 2]", "[2, 1]", 1e-6, false},
		{"tuple equals list", "(1, 2)", "[1, 2]", 1e-6, true},
		{"set order ignored", "{1, 2, 3}", "{3, 2, 1}", 1e-6, true},
		{"set membership differs", "{1, 2}", "{1, 3}", 1e-6, false},
		{"dict key order ignored", "{'a': 1, 'b': 2}", "{'b': 2, 'a': 1}", 1e-6, true},
		{"dict value differs", "{'a': 1}", "{'a': 2}", 1e-6, false},
		{"dict key missing", "{'a': 1}", "{'b': 1}", 1e-6, false},
		{"numeric leaf within eps", "[1.0000001]", "[1.0000002]", 1e-6, true},
		{"numeric leaf outside eps", "[1.1]", "[1.2]", 1e-6, false},
		{"type mismatch", "[1]", "{'a': 1}", 1e-6, false},
		{"bool is not number", "true", "1", 1e-6, false},
		{"null equals null", "None", "null", 1e-6, true},
		{"nested dict deep equal", "{'a': {'b': [1, 2]}}", "{'a': {'b': [1, 2]}}", 1e-6, true},
		{"duplicate keys last wins", "{'a': 1, 'a': 2}", "{'a': 2}", 1e-6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseLiteral(tt.expected)
			if err != nil {
				t.Fatalf("parseLiteral(%q) error: %v", tt.expected, err)
			}
			b, err := parseLiteral(tt.actual)
			if err != nil {
				t.Fatalf("parseLiteral(%q) error: %v", tt.actual, err)
			}
			if got := literalEqual(a, b, tt.eps); got != tt.want {
				t.Errorf("literalEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloatsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"exact", 3.0, 3.0, 1e-6, true},
		{"within absolute", 0.0000001, 0.0000003, 1e-6, true},
		{"outside absolute near zero", 0.1, 0.2, 1e-6, false},
		{"relative for large magnitude", 1000000.0, 1000000.0009, 1e-6, true},
		{"relative failure", 1000000.0, 1000010.0, 1e-6, false},
		{"nan equals nan", math.NaN(), math.NaN(), 1e-6, true},
		{"nan against number", math.NaN(), 1.0, 1e-6, false},
		{"inf equals inf", math.Inf(1), math.Inf(1), 1e-6, true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), 1e-6, false},
		{"inf against number", math.Inf(1), 1e300, 1e-6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := floatsEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("floatsEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}
