package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ptsearch/experiment"
)

func newAnalyzeCmd() *cobra.Command {
	var dropTimeouts bool
	cmd := &cobra.Command{
		Use:   "analyze <results.csv>",
		Short: "Print the cost/degradation expansion-count breakdown for a results CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := experiment.ReadResults(f)
			if err != nil {
				return err
			}

			if err := experiment.CheckNoSolutions(records); err != nil {
				return err
			}
			if dropTimeouts {
				records = experiment.DropTimeouts(records)
			}

			degradations, bounds, hTable, pTable := experiment.Breakdown(records)
			printBreakdown(cmd, "h_expanded (pure heuristic)", degradations, bounds, hTable)
			printBreakdown(cmd, "p_expanded (potential search)", degradations, bounds, pTable)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dropTimeouts, "drop-timeouts", true, "exclude -1 (timeout) rows before computing the breakdown")
	return cmd
}

func printBreakdown(cmd *cobra.Command, title string, degradations []float64, bounds []string, table map[string]map[string]experiment.CellStat) {
	cmd.Println(title)
	header := "d\\b"
	for _, b := range bounds {
		header += "," + b
	}
	cmd.Println(header)
	for _, d := range degradations {
		dk := experiment.FormatDegradation(d)
		row := dk
		for _, b := range bounds {
			cell := table[dk][b]
			row += fmt.Sprintf(",%.2f (%.2f)|%.1f", cell.Mean, cell.StdDev, cell.Median)
		}
		cmd.Println(row)
	}
	cmd.Println()
}
