package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"verdict/internal/eval"
)

var evalFormat string

var evalCmd = &cobra.Command{
	Use:   "eval SUITE",
	Short: "Run a TOML suite of comparison cases with expected verdicts",
	Long: `Run every case in a suite file against the comparator and report which
cases produced the verdict they pin. Exit code is 0 when all cases
match, 1 when any case mismatches, and 2 on operational errors.`,
	Example: `  verdict eval testdata/suites/basic.toml
  verdict eval suite.toml --format json`,
	Args: cobra.ExactArgs(1),
	Run:  runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "human", "Output format: human, json, yaml")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) {
	logger := newLogger()
	start := time.Now()

	suite, err := eval.LoadSuite(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	comparator, err := loadComparator(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	result := suite.Run(comparator)

	switch OutputFormat(evalFormat) {
	case FormatHuman:
		printHumanSuite(result)
	default:
		out, err := FormatResponse(NewResponse(result, time.Since(start).Milliseconds()), OutputFormat(evalFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(out)
	}

	if result.FailedCases > 0 {
		os.Exit(1)
	}
}

func printHumanSuite(result *eval.SuiteResult) {
	fmt.Printf("Suite %s: %d/%d cases matched (avg %.2fms)\n",
		result.Name, result.PassedCases, result.TotalCases, result.AvgLatency)
	for _, r := range result.Results {
		if r.Passed {
			continue
		}
		fmt.Printf("  MISMATCH %s: %s\n", r.Case.ID, r.Mismatch)
		if r.Verdict.Reason != "" {
			fmt.Printf("    verdict reason: %s\n", r.Verdict.Reason)
		}
	}
}
