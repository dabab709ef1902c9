package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ptsearch/domain"
	"github.com/katalvlaran/ptsearch/pancake"
	"github.com/katalvlaran/ptsearch/search"
	"github.com/katalvlaran/ptsearch/tilepuzzle"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single problem instance",
	}
	cmd.AddCommand(newSolveTilesCmd())
	cmd.AddCommand(newSolvePancakesCmd())
	return cmd
}

func newSolveTilesCmd() *cobra.Command {
	var (
		width, height int
		startStr      string
		algo          string
		bound         int
		pureHeuristic bool
		timeout       time.Duration
		ignoreUpTo    int
	)
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Solve a sliding-tile puzzle instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseIntFields(startStr)
			if err != nil {
				return err
			}
			p, err := tilepuzzle.New(width, height, tilepuzzle.WithIgnoreTilesUpTo(ignoreUpTo))
			if err != nil {
				return err
			}
			start, err := tilepuzzle.NewState(values)
			if err != nil {
				return err
			}
			return runSolve[tilepuzzle.State](cmd, p, start, algo, bound, pureHeuristic, timeout)
		},
	}
	cmd.Flags().IntVar(&width, "width", 3, "puzzle width")
	cmd.Flags().IntVar(&height, "height", 3, "puzzle height")
	cmd.Flags().StringVar(&startStr, "start", "", "space-separated start tile values (required)")
	cmd.Flags().StringVar(&algo, "algo", "astar", `search algorithm: "astar" or "potential"`)
	cmd.Flags().IntVar(&bound, "bound", 0, "cost bound C for potential search")
	cmd.Flags().BoolVar(&pureHeuristic, "pure-heuristic", false, "use greedy best-first priority within potential search")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "search wall-clock budget")
	cmd.Flags().IntVar(&ignoreUpTo, "ignore-tiles-up-to", 0, "Manhattan-distance degradation threshold")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newSolvePancakesCmd() *cobra.Command {
	var (
		size          int
		startStr      string
		algo          string
		bound         int
		pureHeuristic bool
		timeout       time.Duration
		degradation   float64
	)
	cmd := &cobra.Command{
		Use:   "pancakes",
		Short: "Solve a prefix-reversal puzzle instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseIntFields(startStr)
			if err != nil {
				return err
			}
			p, err := pancake.New(size, pancake.WithDegradation(degradation))
			if err != nil {
				return err
			}
			start, err := pancake.NewState(values)
			if err != nil {
				return err
			}
			return runSolve[pancake.State](cmd, p, start, algo, bound, pureHeuristic, timeout)
		},
	}
	cmd.Flags().IntVar(&size, "size", 14, "number of pancakes")
	cmd.Flags().StringVar(&startStr, "start", "", "space-separated start stack values (required)")
	cmd.Flags().StringVar(&algo, "algo", "astar", `search algorithm: "astar" or "potential"`)
	cmd.Flags().IntVar(&bound, "bound", 0, "cost bound C for potential search")
	cmd.Flags().BoolVar(&pureHeuristic, "pure-heuristic", false, "use greedy best-first priority within potential search")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "search wall-clock budget")
	cmd.Flags().Float64Var(&degradation, "degradation", 0, "Gap-heuristic degradation (non-negative multiple of 0.5)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

// runSolve dispatches to search.AStar or search.PotentialSearch per algo
// and prints cost/stats/elapsed the way an experiment row would record
// them.
func runSolve[S search.State](cmd *cobra.Command, d domain.Domain[S], start S, algo string, bound int, pureHeuristic bool, timeout time.Duration) error {
	var (
		cost    int
		elapsed time.Duration
		stats   search.Stats
		err     error
	)
	switch algo {
	case "astar":
		cost, elapsed, stats, err = search.AStar[S](d, start, timeout)
	case "potential":
		cost, elapsed, stats, err = search.PotentialSearch[S](d, start, bound, pureHeuristic, timeout)
	default:
		return fmt.Errorf(`unknown --algo %q: want "astar" or "potential"`, algo)
	}
	if err != nil {
		return err
	}
	cmd.Printf("cost=%d expanded=%d generated=%d reopened=%d elapsed=%s\n",
		cost, stats.Expanded, stats.Generated, stats.Reopened, elapsed)
	return nil
}

func parseIntFields(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("--start must not be empty")
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in --start: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
