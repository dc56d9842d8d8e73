package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outboundlabs/imacs/internal/analysis"
	"github.com/outboundlabs/imacs/internal/specload"
)

var extractCmd = &cobra.Command{
	Use:   "extract-predicates <spec.yaml>",
	Short: "List the atomic predicates every rule's condition extracts to",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	spec, err := specload.LoadFile(args[0])
	if err != nil {
		return err
	}

	set, err := analysis.ExtractPredicates(spec)
	if err != nil {
		return err
	}
	logger.Info("extracted predicate set", zap.Int("predicates", set.Len()))

	fmt.Fprint(cmd.OutOrStdout(), renderPredicates(set))
	return nil
}
