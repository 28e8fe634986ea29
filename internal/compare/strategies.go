package compare

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Outcome is what a single strategy reports: a verdict (nil = inconclusive,
// the strategy abstains), the normalisation labels it applied, and a reason
// for a negative or abstaining verdict.
type Outcome struct {
	Passed         *bool
	Normalisations []string
	Reason         string
}

func pass(labels ...string) Outcome {
	v := true
	return Outcome{Passed: &v, Normalisations: labels}
}

func fail(reason string, labels ...string) Outcome {
	v := false
	return Outcome{Passed: &v, Normalisations: labels, Reason: reason}
}

func inconclusive(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Strategy is one named, pure comparison rule. Compare must be side-effect
// free and safe for concurrent use; it receives immutable views of the
// config and resolved overrides.
type Strategy struct {
	Mode          Mode
	Priority      int
	IncludeInAuto bool
	Compare       func(expected, actual string, cfg Config, ov overrideValues) Outcome
}

func builtinStrategies() []Strategy {
	return []Strategy{
		{Mode: ModeStrict, Priority: priorityStrict, IncludeInAuto: true, Compare: strictCompare},
		{Mode: ModeTrimEOL, Priority: priorityTrimEOL, IncludeInAuto: true, Compare: trimEOLCompare},
		{Mode: ModeNormaliseWhitespace, Priority: priorityNormaliseWhitespace, IncludeInAuto: true, Compare: whitespaceCompare},
		{Mode: ModeCanonicalLiteral, Priority: priorityCanonicalLiteral, IncludeInAuto: true, Compare: literalCompare},
		{Mode: ModeFloatEps, Priority: priorityFloatEps, IncludeInAuto: true, Compare: floatCompare},
		{Mode: ModeTokenSet, Priority: priorityTokenSet, IncludeInAuto: true, Compare: tokenSetCompare},
	}
}

// strictCompare is byte-for-byte equality. Always decisive.
func strictCompare(expected, actual string, _ Config, _ overrideValues) Outcome {
	if expected == actual {
		return pass()
	}
	return fail("output differs byte-for-byte")
}

// trimEOLCompare strips trailing line terminators from both sides.
func trimEOLCompare(expected, actual string, _ Config, _ overrideValues) Outcome {
	const label = "trim_trailing_eol"
	if strings.TrimRight(expected, "\r\n") == strings.TrimRight(actual, "\r\n") {
		return pass(label)
	}
	return fail("output differs after trailing newline trim", label)
}

// whitespaceCompare is two-stage: collapse runs of intra-line whitespace to
// single spaces and drop blank edges; if that still differs, strip all
// whitespace entirely. Abstains when neither stage matches so later, more
// structural strategies get their turn.
func whitespaceCompare(expected, actual string, _ Config, _ overrideValues) Outcome {
	if collapseWhitespace(expected) == collapseWhitespace(actual) {
		return pass("collapse_whitespace")
	}
	if stripWhitespace(expected) == stripWhitespace(actual) {
		return pass("strip_all_whitespace")
	}
	return inconclusive("output differs beyond whitespace")
}

func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// literalCompare parses both sides as literal values and performs deep
// structural equality. Abstains when either side is not a literal.
func literalCompare(expected, actual string, cfg Config, ov overrideValues) Outcome {
	le, err := parseLiteral(expected)
	if err != nil {
		return inconclusive("expected output is not a literal")
	}
	la, err := parseLiteral(actual)
	if err != nil {
		return inconclusive("actual output is not a literal")
	}
	eps := resolveEps(cfg, ov)
	labels := []string{"canonical_literal", epsLabel(eps)}
	if literalEqual(le, la, eps) {
		return pass(labels...)
	}
	return fail("literal structures differ", labels...)
}

// floatCompare treats each side as one numeric value under the epsilon rule.
// Abstains unless both sides are single numbers.
func floatCompare(expected, actual string, cfg Config, ov overrideValues) Outcome {
	fe, ok := parseSingleFloat(expected)
	if !ok {
		return inconclusive("expected output is not a single number")
	}
	fa, ok := parseSingleFloat(actual)
	if !ok {
		return inconclusive("actual output is not a single number")
	}
	eps := resolveEps(cfg, ov)
	label := epsLabel(eps)
	if floatsEqual(fe, fa, eps) {
		return pass(label)
	}
	return fail(fmt.Sprintf("numeric difference %g exceeds tolerance %g", fe-fa, eps), label)
}

func parseSingleFloat(s string) (float64, bool) {
	tok := strings.TrimSpace(s)
	if tok == "" || !plainNumberToken(tok) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func resolveEps(cfg Config, ov overrideValues) float64 {
	if ov.floatEps != nil {
		return *ov.floatEps
	}
	return cfg.FloatEps
}

func epsLabel(eps float64) string {
	return fmt.Sprintf("float_eps=%g", eps)
}

// tokenSetCompare splits both sides on whitespace and compares the token
// sets, ignoring order and duplicates. Abstains on inputs longer than the
// configured limit; tokenizing huge output is not worth the cost.
func tokenSetCompare(expected, actual string, cfg Config, ov overrideValues) Outcome {
	limit := cfg.TokenSetSizeLimit
	if ov.tokenSetLimit != nil {
		limit = *ov.tokenSetLimit
	}
	if len(expected) > limit || len(actual) > limit {
		return inconclusive(fmt.Sprintf("input exceeds token set limit %d", limit))
	}
	label := fmt.Sprintf("token_set_limit=%d", limit)
	if tokenSetsEqual(expected, actual) {
		return pass("token_set", label)
	}
	return fail("token sets differ", "token_set", label)
}

func tokenSetsEqual(a, b string) bool {
	sa := make(map[string]struct{})
	for _, tok := range strings.Fields(a) {
		sa[tok] = struct{}{}
	}
	sb := make(map[string]struct{})
	for _, tok := range strings.Fields(b) {
		sb[tok] = struct{}{}
	}
	if len(sa) != len(sb) {
		return false
	}
	for tok := range sa {
		if _, ok := sb[tok]; !ok {
			return false
		}
	}
	return true
}
