// Package compare implements the output comparator that decides whether a
// submission's observed output is equivalent to the expected output.
//
// Both inputs come from running untrusted code, so the comparator never
// panics and never returns an error: every input pair, however malformed,
// resolves to a Result explaining which rule decided and why.
//
// The package is a pure function library. It has no IO, no persistence and
// no network surface; the grading pipeline supplies two strings and consumes
// one Result.
package compare

import "time"

// Attempt records a single strategy's outcome within one comparison call.
// Every strategy that ran appears in the trail, including strategies that
// abstained or lost the tie-break, so a verdict can be explained after the
// fact.
type Attempt struct {
	// Mode names the strategy that produced this attempt.
	Mode Mode `json:"mode"`

	// Passed is the strategy's verdict. Nil means the strategy could not
	// judge this input pair (inconclusive) and was excluded from selection.
	Passed *bool `json:"passed"`

	// Normalisations are human-readable labels of the transformations the
	// strategy applied before comparing.
	Normalisations []string `json:"normalisations,omitempty"`

	// Reason explains a false or inconclusive verdict. Empty on success.
	Reason string `json:"reason,omitempty"`

	// Duration is how long the strategy ran.
	Duration time.Duration `json:"duration"`

	// Priority is the strategy's tie-break rank (lower wins).
	Priority int `json:"priority"`
}

// Result is the final verdict for one comparison call. Ownership transfers
// entirely to the caller; the comparator keeps nothing.
type Result struct {
	// TraceID correlates this result with the comparator's log lines.
	TraceID string `json:"traceId"`

	// Passed reports whether the outputs were judged equivalent.
	Passed bool `json:"passed"`

	// ModeApplied names the strategy that produced the verdict. Empty only
	// when no strategy could decide.
	ModeApplied Mode `json:"modeApplied,omitempty"`

	// Normalisations lists the base normalizations plus those applied by
	// the deciding strategy.
	Normalisations []string `json:"normalisationsApplied,omitempty"`

	// Reason explains a failed verdict. Empty on success.
	Reason string `json:"reason,omitempty"`

	// Attempts is the full audit trail, ordered by (priority, mode).
	Attempts []Attempt `json:"attempts"`
}
