package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"verdict/internal/compare"
)

var (
	modesFormat      string
	modesIncludeAuto bool
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the available comparison modes",
	Run:   runModes,
}

func init() {
	modesCmd.Flags().StringVarP(&modesFormat, "format", "f", "human", "Output format: human, json, yaml")
	modesCmd.Flags().BoolVar(&modesIncludeAuto, "include-auto", true, "Include the AUTO meta-mode in the listing")
	rootCmd.AddCommand(modesCmd)
}

// modeDescriptions gives the one-line help shown per mode. Order here does
// not matter; the listing follows registry priority.
var modeDescriptions = map[string]string{
	string(compare.ModeAuto):                "try every strategy, lowest priority that passes wins",
	string(compare.ModeStrict):              "byte-for-byte equality",
	string(compare.ModeTrimEOL):             "ignore trailing newlines and carriage returns",
	string(compare.ModeNormaliseWhitespace): "collapse runs of whitespace before comparing",
	string(compare.ModeCanonicalLiteral):    "parse both sides as literals and compare structurally",
	string(compare.ModeFloatEps):            "compare as floats within a tolerance",
	string(compare.ModeTokenSet):            "compare as unordered token sets",
}

func runModes(cmd *cobra.Command, args []string) {
	modes := compare.SupportedModes(modesIncludeAuto)

	switch OutputFormat(modesFormat) {
	case FormatHuman:
		for _, m := range modes {
			fmt.Printf("  %-24s %s\n", m, modeDescriptions[m])
		}
	default:
		facts := struct {
			Modes []string `json:"modes" yaml:"modes"`
		}{Modes: modes}
		out, err := FormatResponse(NewResponse(facts, 0), OutputFormat(modesFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(out)
	}
}
