// Package main implements imacs, the decision-table analysis CLI.
//
// Commands are split across multiple cmd_*.go files:
//
//	main.go         - entry point, rootCmd, global flags
//	cmd_analyze.go  - analyzeCmd: completeness, overlap, and redundancy report
//	cmd_minimize.go - minimizeCmd: espresso-style rule reduction
//	cmd_extract.go  - extractCmd: predicate-set introspection
//	report.go       - colored rendering of analysis results
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outboundlabs/imacs/internal/diagnostics"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "imacs",
	Short: "Analyze decision tables for completeness, overlap, and redundancy",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = diagnostics.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(analyzeCmd, minimizeCmd, extractCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
