package compare

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// runStrategies fans the strategy set out onto goroutines and joins on all
// of them. Nothing is cancelled early: even once a decisive verdict exists,
// every attempt is still collected because the trail is an audit artifact,
// not just the decision path. Strategies share no mutable state, so the only
// coordination is the join barrier.
func runStrategies(strategies []Strategy, expected, actual string, cfg Config, ov overrideValues) []Attempt {
	attempts := make([]Attempt, len(strategies))
	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func(i int, s Strategy) {
			defer wg.Done()
			start := time.Now()
			out := safeCompare(s, expected, actual, cfg, ov)
			attempts[i] = Attempt{
				Mode:           s.Mode,
				Passed:         out.Passed,
				Normalisations: out.Normalisations,
				Reason:         out.Reason,
				Duration:       time.Since(start),
				Priority:       s.Priority,
			}
		}(i, s)
	}
	wg.Wait()

	// Completion order is a race; sort so the externally observed result
	// never depends on it.
	sort.Slice(attempts, func(i, j int) bool {
		if attempts[i].Priority != attempts[j].Priority {
			return attempts[i].Priority < attempts[j].Priority
		}
		return attempts[i].Mode < attempts[j].Mode
	})
	return attempts
}

// safeCompare runs one strategy, converting any panic into an abstention so
// a broken comparator can never abort the whole evaluation.
func safeCompare(s Strategy, expected, actual string, cfg Config, ov overrideValues) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{}
		}
	}()
	return s.Compare(expected, actual, cfg, ov)
}

// selectVerdict applies the tie-break rule to the sorted attempt trail:
// the first attempt that passed wins outright, even when a higher-priority
// strategy failed — a cruder rule's mismatch must not override a more
// specific rule's acceptance. Only when nothing passed does the first
// failure supply the reason. All-abstain means no comparator matched.
func selectVerdict(attempts []Attempt, baseNorms []string) Result {
	for _, a := range attempts {
		if a.Passed != nil && *a.Passed {
			return Result{
				Passed:         true,
				ModeApplied:    a.Mode,
				Normalisations: joinLabels(baseNorms, a.Normalisations),
				Attempts:       attempts,
			}
		}
	}
	for _, a := range attempts {
		if a.Passed != nil {
			return Result{
				Passed:         false,
				ModeApplied:    a.Mode,
				Normalisations: joinLabels(baseNorms, a.Normalisations),
				Reason:         a.Reason,
				Attempts:       attempts,
			}
		}
	}
	return Result{
		Passed:         false,
		Reason:         "No comparator matched",
		Normalisations: joinLabels(baseNorms, nil),
		Attempts:       attempts,
	}
}

func joinLabels(base, extra []string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

func logAttempts(logger *slog.Logger, traceID string, attempts []Attempt) {
	if logger == nil {
		return
	}
	for _, a := range attempts {
		verdict := "inconclusive"
		if a.Passed != nil {
			if *a.Passed {
				verdict = "pass"
			} else {
				verdict = "fail"
			}
		}
		logger.Debug("strategy attempt",
			"trace", traceID,
			"mode", string(a.Mode),
			"verdict", verdict,
			"durationUs", a.Duration.Microseconds(),
		)
	}
}
