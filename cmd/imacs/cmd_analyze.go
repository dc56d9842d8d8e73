package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outboundlabs/imacs/internal/analysis"
	"github.com/outboundlabs/imacs/internal/diagnostics"
	"github.com/outboundlabs/imacs/internal/specload"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <spec.yaml>",
	Short: "Report completeness, overlaps, redundancies, and dead rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	spec, err := specload.LoadFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("loaded decision table", zap.String("name", spec.Name), zap.Int("rules", len(spec.Rules)))

	report, err := analysis.Analyze(spec)
	if err != nil {
		return err
	}
	for _, iss := range report.Issues {
		diagnostics.LogIssue(logger, iss.Kind.String(), iss.RuleID, iss.Message, iss.Kind.Fatal())
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
	return nil
}
