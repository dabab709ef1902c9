package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ptsearch/experiment"
	"github.com/katalvlaran/ptsearch/pancake"
)

func newExperimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run batch experiments comparing Potential Search against A*",
	}
	cmd.AddCommand(newExperimentPancakesCmd())
	return cmd
}

func newExperimentPancakesCmd() *cobra.Command {
	var (
		size       int
		out        string
		configPath string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "pancakes",
		Short: "Run the pancake heuristic-comparison experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := experiment.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.PancakeSize = size

			p, err := pancake.New(cfg.PancakeSize)
			if err != nil {
				return err
			}

			runner := &experiment.Runner[pancake.State]{
				Domain:         p,
				SetDegradation: p.SetDegradation,
				Config:         cfg,
			}
			if !quiet {
				runner.ProgressBar = progressbar.Default(int64(cfg.InstancesPerRun))
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}

			instancesPath := filepath.Join(out, fmt.Sprintf("pancakes_instances_ids_%d.csv", cfg.PancakeSize))
			resultsPath := filepath.Join(out, fmt.Sprintf("pancakes_results_%d.csv", cfg.PancakeSize))
			return runner.Run(instancesPath, resultsPath)
		},
	}
	cmd.Flags().IntVar(&size, "size", 14, "number of pancakes")
	cmd.Flags().StringVar(&out, "out", "./files", "output directory for instance-ids and results CSVs")
	cmd.Flags().StringVar(&configPath, "config", "", "optional viper config file overriding experiment defaults")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress bar")
	return cmd
}
