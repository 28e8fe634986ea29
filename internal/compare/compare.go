package compare

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Comparator judges output pairs against a base configuration. Safe for
// concurrent use: the config is copied per call and the registry is
// read-only.
type Comparator struct {
	cfg      Config
	registry *Registry
	logger   *slog.Logger
}

// NewComparator creates a Comparator over the built-in strategy table.
func NewComparator(cfg Config) *Comparator {
	return &Comparator{cfg: cfg, registry: defaultRegistry}
}

// WithLogger returns a copy of the comparator that logs attempt traces to
// the given logger.
func (c *Comparator) WithLogger(logger *slog.Logger) *Comparator {
	clone := *c
	clone.logger = logger
	return &clone
}

// Compare judges actual against expected with the package defaults.
// Equivalent to NewComparator(DefaultConfig()).Compare.
func Compare(expected, actual string, mode Mode, overrides Overrides) Result {
	return NewComparator(DefaultConfig()).Compare(expected, actual, mode, overrides)
}

// Compare judges whether actual is equivalent to expected.
//
// mode selects a single strategy, or ModeAuto (or blank) for automatic
// detection. overrides is the per-call override bag; malformed values are
// ignored. The call never panics and never errors: every input pair,
// including adversarial program output, resolves to a Result.
func (c *Comparator) Compare(expected, actual string, mode Mode, overrides Overrides) Result {
	start := time.Now()
	traceID := uuid.NewString()

	ov := decodeOverrides(overrides)
	cfg := c.cfg.withOverrides(ov)

	expected, actual, baseNorms := normalizeInputs(expected, actual, cfg)

	var result Result
	switch {
	case guardTriggered(expected, actual, cfg):
		result = hashVerdict(expected, actual, cfg, baseNorms)
	case expected == actual:
		// Exact match fast path: one pass, no fan-out.
		result = strictFastPath(baseNorms, time.Since(start))
	default:
		strategies := c.registry.ForMode(mode)
		if len(strategies) == 0 {
			result = Result{
				Passed:         false,
				Reason:         "No comparator strategies available",
				Normalisations: joinLabels(baseNorms, nil),
			}
		} else {
			attempts := runStrategies(strategies, expected, actual, cfg, ov)
			result = selectVerdict(attempts, baseNorms)
		}
	}

	result.TraceID = traceID
	logAttempts(c.logger, traceID, result.Attempts)
	if c.logger != nil {
		c.logger.Debug("comparison decided",
			"trace", traceID,
			"passed", result.Passed,
			"mode", string(result.ModeApplied),
			"durationUs", time.Since(start).Microseconds(),
		)
	}
	return result
}

func guardTriggered(expected, actual string, cfg Config) bool {
	t := cfg.LargeOutputThreshold
	return t > 0 && (len(expected) >= t || len(actual) >= t)
}

// hashVerdict decides oversized payloads by SHA-256 digest equality.
// At multi-megabyte sizes the only meaningful question is byte identity, so
// the whitespace and structural strategies are skipped entirely.
func hashVerdict(expected, actual string, cfg Config, baseNorms []string) Result {
	start := time.Now()
	he := sha256.Sum256([]byte(expected))
	ha := sha256.Sum256([]byte(actual))
	passed := he == ha
	labels := joinLabels(baseNorms, []string{
		fmt.Sprintf("large_output_threshold=%d", cfg.LargeOutputThreshold),
		"sha256",
	})
	reason := ""
	if !passed {
		reason = "sha256 digests differ"
	}
	return Result{
		Passed:         passed,
		ModeApplied:    ModeHashSHA256,
		Normalisations: labels,
		Reason:         reason,
		Attempts: []Attempt{{
			Mode:           ModeHashSHA256,
			Passed:         &passed,
			Normalisations: labels,
			Reason:         reason,
			Duration:       time.Since(start),
			Priority:       priorityHashGuard,
		}},
	}
}

func strictFastPath(baseNorms []string, elapsed time.Duration) Result {
	passed := true
	return Result{
		Passed:         true,
		ModeApplied:    ModeStrict,
		Normalisations: joinLabels(baseNorms, nil),
		Attempts: []Attempt{{
			Mode:     ModeStrict,
			Passed:   &passed,
			Duration: elapsed,
			Priority: priorityStrict,
		}},
	}
}
