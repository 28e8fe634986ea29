package compare

import (
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func TestRunStrategiesDeterministicOrder(t *testing.T) {
	slow := Strategy{
		Mode:     Mode("SLOW"),
		Priority: 5,
		Compare: func(_, _ string, _ Config, _ overrideValues) Outcome {
			time.Sleep(10 * time.Millisecond)
			return pass()
		},
	}
	fast := Strategy{
		Mode:     Mode("FAST"),
		Priority: 1,
		Compare: func(_, _ string, _ Config, _ overrideValues) Outcome {
			return fail("nope")
		},
	}

	// The slow strategy finishes last but must still sort by priority.
	attempts := runStrategies([]Strategy{slow, fast}, "a", "b", DefaultConfig(), overrideValues{})
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].Mode != "FAST" || attempts[1].Mode != "SLOW" {
		t.Errorf("attempt order = [%s, %s], want [FAST, SLOW]", attempts[0].Mode, attempts[1].Mode)
	}
}

func TestRunStrategiesRecoversPanic(t *testing.T) {
	broken := Strategy{
		Mode:     Mode("BROKEN"),
		Priority: 1,
		Compare: func(_, _ string, _ Config, _ overrideValues) Outcome {
			panic("comparator bug")
		},
	}

	attempts := runStrategies([]Strategy{broken}, "a", "b", DefaultConfig(), overrideValues{})
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	if attempts[0].Passed != nil {
		t.Error("panicking strategy must be recorded as inconclusive")
	}
}

func TestSelectVerdictFirstTrueWins(t *testing.T) {
	// A cruder strategy's failure must not override a later, more specific
	// strategy's acceptance.
	attempts := []Attempt{
		{Mode: ModeStrict, Priority: 0, Passed: boolPtr(false), Reason: "bytes differ"},
		{Mode: ModeNormaliseWhitespace, Priority: 20, Passed: nil},
		{Mode: ModeFloatEps, Priority: 40, Passed: boolPtr(true), Normalisations: []string{"float_eps=1e-06"}},
	}

	result := selectVerdict(attempts, []string{"unicode_nfc"})
	if !result.Passed {
		t.Fatal("verdict = fail, want pass")
	}
	if result.ModeApplied != ModeFloatEps {
		t.Errorf("ModeApplied = %s, want FLOAT_EPS", result.ModeApplied)
	}
	if len(result.Normalisations) != 2 || result.Normalisations[0] != "unicode_nfc" {
		t.Errorf("Normalisations = %v", result.Normalisations)
	}
	if len(result.Attempts) != 3 {
		t.Errorf("audit trail truncated: %d attempts", len(result.Attempts))
	}
}

func TestSelectVerdictFirstFalseSuppliesReason(t *testing.T) {
	attempts := []Attempt{
		{Mode: ModeStrict, Priority: 0, Passed: boolPtr(false), Reason: "bytes differ"},
		{Mode: ModeTokenSet, Priority: 50, Passed: boolPtr(false), Reason: "token sets differ"},
	}

	result := selectVerdict(attempts, nil)
	if result.Passed {
		t.Fatal("verdict = pass, want fail")
	}
	if result.ModeApplied != ModeStrict || result.Reason != "bytes differ" {
		t.Errorf("failure attribution = %s %q, want STRICT from highest priority", result.ModeApplied, result.Reason)
	}
}

func TestSelectVerdictAllInconclusive(t *testing.T) {
	attempts := []Attempt{
		{Mode: ModeCanonicalLiteral, Priority: 30, Passed: nil},
		{Mode: ModeFloatEps, Priority: 40, Passed: nil},
	}

	result := selectVerdict(attempts, nil)
	if result.Passed {
		t.Fatal("verdict = pass, want fail")
	}
	if result.ModeApplied != "" {
		t.Errorf("ModeApplied = %s, want empty", result.ModeApplied)
	}
	if result.Reason != "No comparator matched" {
		t.Errorf("Reason = %q", result.Reason)
	}
}
