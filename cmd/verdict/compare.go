package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"verdict/internal/compare"
	verrors "verdict/internal/errors"
)

var (
	compareMode      string
	compareFormat    string
	compareExpected  string
	compareActual    string
	compareOverrides []string
)

var compareCmd = &cobra.Command{
	Use:   "compare [EXPECTED_FILE ACTUAL_FILE]",
	Short: "Judge whether an observed output matches the expected output",
	Long: `Compare an expected output against an observed output and print the
verdict. Inputs come either from two file arguments or from the
--expected/--actual flags.

Exit code is 0 when the outputs are judged equivalent, 1 when they are
not, and 2 on operational errors (unreadable input, bad flags).`,
	Example: `  verdict compare expected.txt actual.txt
  verdict compare --expected "3.14" --actual "3.1400001" --mode FLOAT_EPS
  verdict compare expected.txt actual.txt --set float_eps=1e-3 --format json`,
	Args: cobra.MaximumNArgs(2),
	Run:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareMode, "mode", "m", "", "Comparison mode (default AUTO, see 'verdict modes')")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "human", "Output format: human, json, yaml")
	compareCmd.Flags().StringVar(&compareExpected, "expected", "", "Expected output as a literal string")
	compareCmd.Flags().StringVar(&compareActual, "actual", "", "Observed output as a literal string")
	compareCmd.Flags().StringArrayVar(&compareOverrides, "set", nil, "Per-run override as key=value (repeatable), e.g. --set float_eps=1e-3")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	logger := newLogger()
	start := time.Now()

	expected, actual, err := compareInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	overrides, err := parseOverrides(compareOverrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	comparator, err := loadComparator(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	result := comparator.Compare(expected, actual, compare.ResolveMode(compareMode), overrides)

	switch OutputFormat(compareFormat) {
	case FormatHuman:
		printHumanVerdict(result)
	default:
		out, err := FormatResponse(NewResponse(result, time.Since(start).Milliseconds()), OutputFormat(compareFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(out)
	}

	if !result.Passed {
		os.Exit(1)
	}
}

// compareInputs resolves expected/actual text from file arguments or the
// literal flags. Mixing the two styles is rejected.
func compareInputs(args []string) (string, string, error) {
	if len(args) == 2 {
		if compareExpected != "" || compareActual != "" {
			return "", "", verrors.New(verrors.InputUnreadable, "use either file arguments or --expected/--actual, not both")
		}
		expected, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", verrors.Wrap(verrors.InputUnreadable, "reading expected output", err)
		}
		actual, err := os.ReadFile(args[1])
		if err != nil {
			return "", "", verrors.Wrap(verrors.InputUnreadable, "reading actual output", err)
		}
		return string(expected), string(actual), nil
	}
	if len(args) == 0 && (compareExpected != "" || compareActual != "") {
		return compareExpected, compareActual, nil
	}
	return "", "", verrors.New(verrors.InputUnreadable, "provide two files or --expected/--actual")
}

// parseOverrides turns repeated key=value flags into an override bag. Values
// that parse as JSON keep their type; everything else stays a string, which
// the comparator's lenient decoding handles.
func parseOverrides(pairs []string) (compare.Overrides, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(compare.Overrides, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, verrors.New(verrors.ConfigInvalid, fmt.Sprintf("override %q is not key=value", pair))
		}
		var typed any
		if err := json.Unmarshal([]byte(value), &typed); err != nil {
			typed = value
		}
		overrides[key] = typed
	}
	return overrides, nil
}

func printHumanVerdict(result compare.Result) {
	if result.Passed {
		fmt.Printf("PASS (%s)\n", result.ModeApplied)
	} else if result.ModeApplied != "" {
		fmt.Printf("FAIL (%s)\n", result.ModeApplied)
	} else {
		fmt.Println("FAIL")
	}
	if result.Reason != "" {
		fmt.Printf("Reason: %s\n", result.Reason)
	}
	if len(result.Normalisations) > 0 {
		fmt.Printf("Normalisations: %s\n", strings.Join(result.Normalisations, ", "))
	}
	if len(result.Attempts) > 0 {
		fmt.Println("Attempts:")
		for _, a := range result.Attempts {
			verdict := "inconclusive"
			if a.Passed != nil {
				if *a.Passed {
					verdict = "pass"
				} else {
					verdict = "fail"
				}
			}
			line := fmt.Sprintf("  %-22s %-13s %s", a.Mode, verdict, a.Duration)
			if a.Reason != "" {
				line += "  " + a.Reason
			}
			fmt.Println(line)
		}
	}
}
