package experiment

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/ptsearch/domain"
	"github.com/katalvlaran/ptsearch/search"
)

// Runner reproduces original_source/experiments/pts_heu_comparison.py's
// setup/run_experiment/run_search flow against a generic
// domain.Domain[S]: generate an instance, establish its true (A*-optimal)
// cost, then sweep every (degradation, bound) pair recording both the
// pure-heuristic and ratio-driven Potential Search outcomes.
type Runner[S search.State] struct {
	// Domain is the shared domain instance searched against. Its
	// degradation is mutated in place between sweeps via SetDegradation,
	// so Domain must not be shared with a concurrently-running search.
	Domain domain.Domain[S]

	// SetDegradation mutates Domain's heuristic-degradation parameter
	// in place, e.g. (*pancake.Pancakes).SetDegradation.
	SetDegradation func(d float64) error

	Config Config

	// RNG drives instance generation; if nil, Run sets it to one
	// domain.DefaultRNG() stream that is used for the whole run.
	RNG *rand.Rand

	// ProgressBar, if set, advances by one per generated instance.
	ProgressBar *progressbar.ProgressBar
}

// Run executes Config.InstancesPerRun fresh instances, appending rows to
// the instance-ids CSV at instancesPath and the results CSV at
// resultsPath. If both files already exist, Run resumes from the highest
// recorded instance_id and skips any instance already present (by its
// string rendering), exactly like setup()'s
// instances_id_path.is_file() branch. If exactly one of the two files
// exists, Run returns ErrInconsistentFiles.
func (r *Runner[S]) Run(instancesPath, resultsPath string) error {
	currID, seen, err := r.setup(instancesPath, resultsPath)
	if err != nil {
		return err
	}
	if r.RNG == nil {
		r.RNG = domain.DefaultRNG()
	}

	instancesFile, err := os.OpenFile(instancesPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer instancesFile.Close()

	resultsFile, err := os.OpenFile(resultsPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer resultsFile.Close()

	for i := 0; i < r.Config.InstancesPerRun; i++ {
		instance := r.createInstance(seen)
		seen[fmt.Sprint(instance)] = struct{}{}

		if err := r.SetDegradation(0); err != nil {
			return err
		}
		trueCost, _, _, err := search.AStar[S](r.Domain, instance, r.Config.AStarTimeout)
		if err != nil {
			log.Error().Err(err).Int("instance_id", currID).Msg("A* pre-pass failed to establish true cost")
			return err
		}
		if err := AppendInstance(instancesFile, currID, fmt.Sprint(instance), trueCost); err != nil {
			return err
		}

		for _, degradation := range r.Config.Degradations {
			if err := r.SetDegradation(degradation); err != nil {
				return err
			}
			for _, bm := range r.Config.BoundMultipliers {
				bound := bm.Bound(trueCost)
				hCost, hExpanded := r.runSearch(instance, bound, true)
				pCost, pExpanded := r.runSearch(instance, bound, false)
				rec := ResultRecord{
					InstanceID:  currID,
					Degradation: degradation,
					BoundLabel:  bm.Label,
					HCost:       hCost,
					HExpanded:   hExpanded,
					PCost:       pCost,
					PExpanded:   pExpanded,
				}
				if err := AppendResult(resultsFile, rec); err != nil {
					return err
				}
			}
		}

		if r.ProgressBar != nil {
			_ = r.ProgressBar.Add(1)
		}
		currID++
	}
	return nil
}

// runSearch runs PotentialSearch and maps its distinguished errors to the
// sentinel costs spec §6 requires, returning whatever expansion count the
// attempt reached regardless of outcome.
func (r *Runner[S]) runSearch(instance S, bound int, pureHeuristic bool) (cost, expanded int) {
	cost, _, stats, err := search.PotentialSearch[S](r.Domain, instance, bound, pureHeuristic, r.Config.BoundedTimeout)
	switch {
	case err == nil:
		return cost, stats.Expanded
	case errors.Is(err, search.ErrTimeout):
		return SentinelTimeout, stats.Expanded
	case errors.Is(err, search.ErrNoSolution):
		return SentinelNoSolution, stats.Expanded
	default:
		return SentinelNoSolution, stats.Expanded
	}
}

// createInstance repeatedly asks Domain for a random-walk instance until
// it finds one that is neither the goal nor already in seen, mirroring
// pts_heu_comparison.py's create_instance.
func (r *Runner[S]) createInstance(seen map[string]struct{}) S {
	for {
		candidate := r.Domain.GenerateInstances(1, r.Config.MinWalkOps, r.Config.MaxWalkOps, r.RNG)[0]
		key := fmt.Sprint(candidate)
		if _, dup := seen[key]; dup {
			continue
		}
		if r.Domain.GoalTest(candidate) {
			continue
		}
		return candidate
	}
}

// setup mirrors pts_heu_comparison.py's setup(): both files must exist or
// neither must. If both exist, it returns the next instance_id to use and
// the set of already-recorded instance strings; otherwise it writes fresh
// headers to both and starts from instance_id 0.
func (r *Runner[S]) setup(instancesPath, resultsPath string) (int, map[string]struct{}, error) {
	_, instancesErr := os.Stat(instancesPath)
	_, resultsErr := os.Stat(resultsPath)
	instancesExist := instancesErr == nil
	resultsExist := resultsErr == nil

	if instancesExist != resultsExist {
		return 0, nil, ErrInconsistentFiles
	}

	seen := make(map[string]struct{})
	if !instancesExist {
		f, err := os.Create(instancesPath)
		if err != nil {
			return 0, nil, err
		}
		defer f.Close()
		if err := WriteInstanceHeader(f); err != nil {
			return 0, nil, err
		}

		rf, err := os.Create(resultsPath)
		if err != nil {
			return 0, nil, err
		}
		defer rf.Close()
		if err := WriteResultsHeader(rf); err != nil {
			return 0, nil, err
		}
		return 0, seen, nil
	}

	f, err := os.Open(instancesPath)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	records, err := ReadInstances(f)
	if err != nil {
		return 0, nil, err
	}

	currID := 0
	for _, rec := range records {
		seen[rec.Stack] = struct{}{}
		if rec.ID >= currID {
			currID = rec.ID + 1
		}
	}
	return currID, seen, nil
}
