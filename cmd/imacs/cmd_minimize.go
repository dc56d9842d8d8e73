package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outboundlabs/imacs/internal/analysis"
	"github.com/outboundlabs/imacs/internal/specload"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <spec.yaml>",
	Short: "Reduce a decision table to the fewest equivalent rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runMinimize,
}

func runMinimize(cmd *cobra.Command, args []string) error {
	spec, err := specload.LoadFile(args[0])
	if err != nil {
		return err
	}

	reduced, transforms, err := analysis.Minimize(spec)
	if err != nil {
		return err
	}
	logger.Info("minimized decision table",
		zap.Int("original_rules", len(spec.Rules)),
		zap.Int("reduced_rules", len(reduced)),
		zap.Int("transformations", len(transforms)))

	fmt.Fprint(cmd.OutOrStdout(), renderMinimization(reduced, transforms))
	return nil
}
