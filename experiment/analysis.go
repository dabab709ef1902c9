package experiment

import (
	"fmt"
	"math"
	"sort"
)

// ErrUnexpectedNoSolution is returned by CheckNoSolutions when a results
// set contains SentinelNoSolution (-2): per spec §7, a no-solution
// outcome is treated as an experimenter bug (an insufficiently generous
// bound or timeout), never a recoverable analysis case — mirroring
// pts_heu_comparison_analysis.py's find_and_remove_nosolutions, which
// raises rather than silently dropping -2 rows.
var ErrUnexpectedNoSolution = fmt.Errorf("experiment: %w", ErrMalformedRecord)

// CheckNoSolutions returns ErrUnexpectedNoSolution if any record has HCost
// or PCost equal to SentinelNoSolution, wrapped with the number of
// offending rows and a description of the first one.
func CheckNoSolutions(records []ResultRecord) error {
	var bad []ResultRecord
	for _, r := range records {
		if r.HCost == SentinelNoSolution || r.PCost == SentinelNoSolution {
			bad = append(bad, r)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("%w: found -2 (no-solution) in %d row(s), starting at instance_id=%d degradation=%v bound=%s",
		ErrUnexpectedNoSolution, len(bad), bad[0].InstanceID, bad[0].Degradation, bad[0].BoundLabel)
}

// DropTimeouts returns records with every row whose HCost or PCost is
// SentinelTimeout removed, mirroring
// find_and_remove_nosolutions's post-assertion drop of -1 rows.
func DropTimeouts(records []ResultRecord) []ResultRecord {
	out := make([]ResultRecord, 0, len(records))
	for _, r := range records {
		if r.HCost == SentinelTimeout || r.PCost == SentinelTimeout {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CellStat is one (degradation, bound) cell of a cost/degradation
// breakdown table: mean, standard deviation and median of an expansion
// count, matching pts_heu_comparison_analysis.py's
// cost_degradation_breakdown per-cell statistics.
type CellStat struct {
	Mean, StdDev, Median float64
	N                    int
}

// Breakdown computes the pure-heuristic ("h") and ratio-driven ("p")
// expansion-count breakdown tables over records, keyed by
// (degradation, boundLabel), along with the sorted degradation and bound
// axes used to render the table.
func Breakdown(records []ResultRecord) (degradations []float64, bounds []string, hTable, pTable map[string]map[string]CellStat) {
	degSet := map[float64]struct{}{}
	boundSet := map[string]struct{}{}
	hExpanded := map[string]map[string][]int{}
	pExpanded := map[string]map[string][]int{}

	for _, r := range records {
		degSet[r.Degradation] = struct{}{}
		boundSet[r.BoundLabel] = struct{}{}
		dk := degKey(r.Degradation)
		if hExpanded[dk] == nil {
			hExpanded[dk] = map[string][]int{}
			pExpanded[dk] = map[string][]int{}
		}
		hExpanded[dk][r.BoundLabel] = append(hExpanded[dk][r.BoundLabel], r.HExpanded)
		pExpanded[dk][r.BoundLabel] = append(pExpanded[dk][r.BoundLabel], r.PExpanded)
	}

	for d := range degSet {
		degradations = append(degradations, d)
	}
	sort.Float64s(degradations)
	for b := range boundSet {
		bounds = append(bounds, b)
	}
	sort.Strings(bounds)

	hTable = buildCellTable(degradations, bounds, hExpanded)
	pTable = buildCellTable(degradations, bounds, pExpanded)
	return degradations, bounds, hTable, pTable
}

func buildCellTable(degradations []float64, bounds []string, values map[string]map[string][]int) map[string]map[string]CellStat {
	table := make(map[string]map[string]CellStat, len(degradations))
	for _, d := range degradations {
		dk := degKey(d)
		table[dk] = make(map[string]CellStat, len(bounds))
		for _, b := range bounds {
			table[dk][b] = stat(values[dk][b])
		}
	}
	return table
}

func degKey(d float64) string { return formatDegradation(d) }

func stat(xs []int) CellStat {
	n := len(xs)
	if n == 0 {
		return CellStat{}
	}
	sum := 0.0
	for _, x := range xs {
		sum += float64(x)
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, x := range xs {
		diff := float64(x) - mean
		variance += diff * diff
	}
	var stddev float64
	if n > 1 {
		stddev = math.Sqrt(variance / float64(n-1))
	}

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	var median float64
	if n%2 == 1 {
		median = float64(sorted[n/2])
	} else {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return CellStat{Mean: mean, StdDev: stddev, Median: median, N: n}
}
