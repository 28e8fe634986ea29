package output

import (
	"strings"
	"testing"
)

func TestDeterministicEncodeSortsKeys(t *testing.T) {
	v := map[string]any{"zebra": 1, "alpha": 2, "mid": 3}

	out, err := DeterministicEncode(v)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got := string(out)
	if got != `{"alpha":2,"mid":3,"zebra":1}` {
		t.Errorf("encoded = %s", got)
	}
}

func TestDeterministicEncodeStable(t *testing.T) {
	v := map[string]any{
		"attempts": []any{
			map[string]any{"mode": "STRICT", "passed": false},
			map[string]any{"mode": "TRIM_EOL", "passed": true},
		},
		"score": 0.12345678,
	}

	first, err := DeterministicEncode(v)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := DeterministicEncode(v)
		if err != nil {
			t.Fatalf("encode error: %v", err)
		}
		if string(next) != string(first) {
			t.Fatalf("encoding diverged on run %d", i)
		}
	}
}

func TestDeterministicEncodeRoundsFloats(t *testing.T) {
	out, err := DeterministicEncode(map[string]any{"v": 0.1234567891})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if got := string(out); got != `{"v":0.123457}` {
		t.Errorf("encoded = %s", got)
	}
}

func TestDeterministicEncodeNoHTMLEscape(t *testing.T) {
	out, err := DeterministicEncode(map[string]any{"v": "a<b>c"})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if strings.Contains(string(out), "\\u003c") {
		t.Errorf("HTML escaped: %s", out)
	}
	if !strings.Contains(string(out), `"a<b>c"`) {
		t.Errorf("angle brackets not preserved: %s", out)
	}
}

func TestDeterministicEncodeIndented(t *testing.T) {
	out, err := DeterministicEncodeIndented(map[string]any{"a": 1}, "  ")
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if !strings.Contains(string(out), "\n  \"a\": 1") {
		t.Errorf("indented = %s", out)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1"},
		{1.5, "1.5"},
		{0.1234567, "0.123457"},
		{100.000001, "100.000001"},
		{-2.5000, "-2.5"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
