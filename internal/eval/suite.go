// Package eval runs regression suites against the comparator. A suite is a
// TOML file of comparison cases with expected verdicts, used to keep the
// grading rules honest as they evolve.
package eval

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"verdict/internal/compare"
	verrors "verdict/internal/errors"
)

// Case is a single suite entry: one comparison plus the verdict it must
// produce.
type Case struct {
	// ID is a unique identifier for this case.
	ID string `toml:"id" json:"id"`

	// Description says what grading behavior the case pins down.
	Description string `toml:"description,omitempty" json:"description,omitempty"`

	// Expected is the reference output.
	Expected string `toml:"expected" json:"expected"`

	// Actual is the observed output.
	Actual string `toml:"actual" json:"actual"`

	// Mode is the requested comparison mode; blank means AUTO.
	Mode string `toml:"mode,omitempty" json:"mode,omitempty"`

	// Overrides is the per-case override bag.
	Overrides map[string]any `toml:"overrides,omitempty" json:"overrides,omitempty"`

	// WantPass is the verdict the comparator must reach.
	WantPass bool `toml:"wantPass" json:"wantPass"`

	// WantMode optionally pins which strategy must decide.
	WantMode string `toml:"wantMode,omitempty" json:"wantMode,omitempty"`
}

// Suite is a named collection of cases.
type Suite struct {
	Name  string `toml:"name" json:"name"`
	Cases []Case `toml:"cases" json:"cases"`
}

// CaseResult captures the outcome of one case.
type CaseResult struct {
	Case     Case           `json:"case"`
	Passed   bool           `json:"passed"`
	Verdict  compare.Result `json:"verdict"`
	Mismatch string         `json:"mismatch,omitempty"`
	Duration time.Duration  `json:"duration"`
}

// SuiteResult aggregates results across all cases.
type SuiteResult struct {
	Name        string       `json:"name"`
	TotalCases  int          `json:"totalCases"`
	PassedCases int          `json:"passedCases"`
	FailedCases int          `json:"failedCases"`
	AvgLatency  float64      `json:"avgLatencyMs"`
	Results     []CaseResult `json:"results"`
	StartTime   time.Time    `json:"startTime"`
	EndTime     time.Time    `json:"endTime"`
}

// LoadSuite parses a suite from a TOML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, verrors.Wrap(verrors.InputUnreadable, "reading suite file", err)
	}

	var suite Suite
	if err := toml.Unmarshal(data, &suite); err != nil {
		return nil, verrors.Wrap(verrors.SuiteInvalid, "parsing suite file", err)
	}
	if len(suite.Cases) == 0 {
		return nil, verrors.New(verrors.SuiteInvalid, "suite contains no cases")
	}

	seen := make(map[string]struct{}, len(suite.Cases))
	for i, c := range suite.Cases {
		if c.ID == "" {
			return nil, verrors.New(verrors.SuiteInvalid, fmt.Sprintf("case %d has no id", i))
		}
		if _, dup := seen[c.ID]; dup {
			return nil, verrors.New(verrors.SuiteInvalid, fmt.Sprintf("duplicate case id %q", c.ID))
		}
		seen[c.ID] = struct{}{}
	}
	return &suite, nil
}

// Run evaluates every case against the comparator.
func (s *Suite) Run(c *compare.Comparator) *SuiteResult {
	result := &SuiteResult{
		Name:       s.Name,
		TotalCases: len(s.Cases),
		StartTime:  time.Now(),
		Results:    make([]CaseResult, 0, len(s.Cases)),
	}

	var totalLatency time.Duration
	for _, tc := range s.Cases {
		start := time.Now()
		verdict := c.Compare(tc.Expected, tc.Actual, compare.ResolveMode(tc.Mode), compare.Overrides(tc.Overrides))
		elapsed := time.Since(start)
		totalLatency += elapsed

		cr := CaseResult{Case: tc, Verdict: verdict, Duration: elapsed}
		switch {
		case verdict.Passed != tc.WantPass:
			cr.Mismatch = fmt.Sprintf("passed = %v, want %v", verdict.Passed, tc.WantPass)
		case tc.WantMode != "" && string(verdict.ModeApplied) != tc.WantMode:
			cr.Mismatch = fmt.Sprintf("mode = %s, want %s", verdict.ModeApplied, tc.WantMode)
		default:
			cr.Passed = true
		}

		if cr.Passed {
			result.PassedCases++
		} else {
			result.FailedCases++
		}
		result.Results = append(result.Results, cr)
	}

	result.EndTime = time.Now()
	if len(s.Cases) > 0 {
		result.AvgLatency = float64(totalLatency.Microseconds()) / float64(len(s.Cases)) / 1000.0
	}
	return result
}
