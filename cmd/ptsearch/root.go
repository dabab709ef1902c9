package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ptsearch",
		Short: "Bounded-cost heuristic search over classical planning domains",
		Long: "ptsearch runs A* and Potential Search against the sliding-tile and\n" +
			"burnt-pancake domains, and drives the batch experiments used to\n" +
			"compare them across heuristic-degradation and cost-bound sweeps.",
		SilenceUsage: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newExperimentCmd())
	root.AddCommand(newAnalyzeCmd())
	return root
}
