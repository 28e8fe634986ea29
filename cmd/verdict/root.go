package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"verdict/internal/compare"
	"verdict/internal/config"
	"verdict/internal/slogutil"
	"verdict/internal/version"
)

var (
	// verbosity is the CLI -v flag count
	verbosity int
	// quietFlag suppresses all logging
	quietFlag bool
	// rootFlag is the directory holding the .verdict config
	rootFlag string
)

var rootCmd = &cobra.Command{
	Use:   "verdict",
	Short: "verdict - output comparator for graded submissions",
	Long: `verdict judges whether a program's observed output is equivalent to the
expected output, tolerating harmless formatting differences (trailing
newlines, whitespace, container literal spacing, float rounding, token
reordering) while rejecting semantically wrong answers.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("verdict version {{.Version}}\n")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress all logging")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", ".", "Directory containing the .verdict config")
}

func newLogger() *slog.Logger {
	return slogutil.NewLogger(os.Stderr, slogutil.LevelFromVerbosity(verbosity, quietFlag))
}

// loadComparator builds a comparator from the configured root, falling back
// to defaults when no config file exists.
func loadComparator(logger *slog.Logger) (*compare.Comparator, error) {
	cfg, err := config.LoadConfig(rootFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return compare.NewComparator(cfg.Compare).WithLogger(logger), nil
}
