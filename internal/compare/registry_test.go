package compare

import "testing"

func TestForModeAuto(t *testing.T) {
	wantOrder := []Mode{
		ModeStrict,
		ModeTrimEOL,
		ModeNormaliseWhitespace,
		ModeCanonicalLiteral,
		ModeFloatEps,
		ModeTokenSet,
	}

	for _, mode := range []Mode{ModeAuto, ""} {
		strategies := DefaultRegistry().ForMode(mode)
		if len(strategies) != len(wantOrder) {
			t.Fatalf("ForMode(%q) returned %d strategies, want %d", mode, len(strategies), len(wantOrder))
		}
		for i, s := range strategies {
			if s.Mode != wantOrder[i] {
				t.Errorf("ForMode(%q)[%d] = %s, want %s", mode, i, s.Mode, wantOrder[i])
			}
		}
	}
}

func TestForModeExplicit(t *testing.T) {
	strategies := DefaultRegistry().ForMode(ModeFloatEps)
	if len(strategies) != 1 || strategies[0].Mode != ModeFloatEps {
		t.Errorf("ForMode(FLOAT_EPS) = %v", strategies)
	}
}

func TestForModeUnknown(t *testing.T) {
	if got := DefaultRegistry().ForMode(Mode("BOGUS")); len(got) != 0 {
		t.Errorf("ForMode(BOGUS) returned %d strategies, want none", len(got))
	}
	if got := DefaultRegistry().ForMode(ModeHashSHA256); len(got) != 0 {
		t.Errorf("HASH_SHA256 must not be selectable, got %d strategies", len(got))
	}
}

func TestStrategyLookup(t *testing.T) {
	s, ok := DefaultRegistry().Strategy(ModeTokenSet)
	if !ok || s.Priority != priorityTokenSet {
		t.Errorf("Strategy(TOKEN_SET) = %+v, ok=%v", s, ok)
	}
	if _, ok := DefaultRegistry().Strategy(ModeAuto); ok {
		t.Error("AUTO must never be a registered strategy")
	}
}

func TestNewRegistryLastWriteWins(t *testing.T) {
	first := Strategy{Mode: ModeStrict, Priority: 0, IncludeInAuto: true, Compare: strictCompare}
	second := Strategy{Mode: ModeStrict, Priority: 99, IncludeInAuto: false, Compare: strictCompare}

	r := NewRegistry([]Strategy{first, second})
	s, ok := r.Strategy(ModeStrict)
	if !ok || s.Priority != 99 {
		t.Errorf("duplicate registration kept priority %d, want 99", s.Priority)
	}
	if modes := r.ListModes(); len(modes) != 1 {
		t.Errorf("ListModes = %v, want one entry", modes)
	}
}

func TestListModesOrder(t *testing.T) {
	modes := DefaultRegistry().ListModes()
	for i := 1; i < len(modes); i++ {
		prev, _ := DefaultRegistry().Strategy(modes[i-1])
		cur, _ := DefaultRegistry().Strategy(modes[i])
		if prev.Priority > cur.Priority {
			t.Errorf("ListModes out of priority order at %d: %v", i, modes)
		}
	}
}
