package compare

import "strings"

// Mode identifies a comparison strategy, or the synthetic AUTO meta-mode.
type Mode string

const (
	// ModeAuto requests automatic strategy selection: every strategy that
	// participates in auto-detection runs and the best verdict wins.
	// AUTO is a resolution request, never a registered strategy.
	ModeAuto Mode = "AUTO"

	// ModeStrict is byte-for-byte equality after base normalization.
	ModeStrict Mode = "STRICT"

	// ModeTrimEOL strips trailing line terminators before comparing.
	ModeTrimEOL Mode = "TRIM_EOL"

	// ModeNormaliseWhitespace collapses whitespace runs, then falls back to
	// stripping all whitespace entirely.
	ModeNormaliseWhitespace Mode = "NORMALISE_WHITESPACE"

	// ModeCanonicalLiteral parses both sides as literal values and performs
	// deep structural equality.
	ModeCanonicalLiteral Mode = "CANONICAL_LITERAL"

	// ModeFloatEps compares single numeric values under the epsilon rule.
	ModeFloatEps Mode = "FLOAT_EPS"

	// ModeTokenSet compares whitespace-separated tokens as sets.
	ModeTokenSet Mode = "TOKEN_SET"

	// ModeHashSHA256 tags results decided by the large-output guard.
	// It is a result-only tag and can never be requested as an input mode.
	ModeHashSHA256 Mode = "HASH_SHA256"
)

// Strategy priorities. Lower numbers are evaluated and preferred first
// when breaking ties between verdicts.
const (
	// priorityHashGuard ranks the large-output digest verdict, which
	// preempts every registry strategy and must not share a rank with one.
	priorityHashGuard = -1

	priorityStrict              = 0
	priorityTrimEOL             = 10
	priorityNormaliseWhitespace = 20
	priorityCanonicalLiteral    = 30
	priorityFloatEps            = 40
	priorityTokenSet            = 50
)

// ResolveMode maps a user-supplied mode string to a Mode. Matching is
// case-insensitive; blank or unrecognized input degrades to AUTO so a stale
// persisted mode name can never break grading.
func ResolveMode(raw string) Mode {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" || name == string(ModeAuto) {
		return ModeAuto
	}
	for _, m := range defaultRegistry.ListModes() {
		if name == string(m) {
			return m
		}
	}
	return ModeAuto
}

// SupportedModes returns the selectable mode names in priority order,
// for populating configuration UIs. HASH_SHA256 is excluded because it is
// result-only.
func SupportedModes(includeAuto bool) []string {
	modes := defaultRegistry.ListModes()
	names := make([]string, 0, len(modes)+1)
	if includeAuto {
		names = append(names, string(ModeAuto))
	}
	for _, m := range modes {
		names = append(names, string(m))
	}
	return names
}
