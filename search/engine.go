package search

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/ptsearch/domain"
)

// engineMode captures the three points where A* and Potential Search
// diverge: the priority formula, whether nodes are pruned by the cost
// bound before a priority is computed, and whether the goal test happens
// at pop time (A*) or at successor-generation time (Potential Search).
type engineMode struct {
	isAStar       bool
	bound         int // C, meaningful only when !isAStar
	pureHeuristic bool
}

func (m engineMode) priority(g, h int) priority {
	switch {
	case m.isAStar:
		return intPriority(g + h)
	case m.pureHeuristic:
		return intPriority(h)
	default:
		return ratioPriority(h, m.bound, g)
	}
}

// solve runs the shared best-first loop described in §4.4: a min-heap
// open set, a state->node closed map, lazy invalidation on priority
// improvement, and the mode-specific goal-check timing and bound pruning.
func solve[S State](d domain.Domain[S], start S, mode engineMode, timeout time.Duration, opts ...Option) (int, time.Duration, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startTime := time.Now()
	var stats Stats

	closed := make(map[S]*searchNode[S])
	h0 := d.Heuristic(start)
	root := &searchNode[S]{
		f:       mode.priority(0, h0),
		h:       h0,
		g:       0,
		state:   start,
		inOpen:  true,
		isValid: true,
	}
	stats.Generated++
	closed[start] = root

	var open openHeap[S]
	heap.Init(&open)
	heap.Push(&open, root)

	for open.Len() > 0 {
		if time.Since(startTime) > timeout {
			elapsed := time.Since(startTime)
			o.Logger.Debug().Dur("elapsed", elapsed).Msg("search timed out")
			return 0, elapsed, stats, &TimeoutError{Elapsed: elapsed}
		}

		n := heap.Pop(&open).(*searchNode[S])
		n.inOpen = false
		if !n.isValid {
			continue
		}

		if mode.isAStar && d.GoalTest(n.state) {
			elapsed := time.Since(startTime)
			o.Logger.Info().Int("cost", n.g).Int("expanded", stats.Expanded).
				Int("generated", stats.Generated).Int("reopened", stats.Reopened).
				Dur("elapsed", elapsed).Msg("search succeeded")
			return n.g, elapsed, stats, nil
		}

		stats.Expanded++
		if o.ProgressBar != nil && stats.Expanded%o.ProgressReportEvery == 0 {
			_ = o.ProgressBar.Add(o.ProgressReportEvery)
		}
		if stats.Expanded%o.logEvery == 0 {
			o.Logger.Debug().Int("expanded", stats.Expanded).Int("generated", stats.Generated).Msg("search progress")
		}

		for _, succ := range d.Successors(n.state) {
			gNew := n.g + succ.Cost

			if prior, ok := closed[succ.State]; ok && prior.g <= gNew {
				continue // dominated
			}

			hNew := d.Heuristic(succ.State)

			if !mode.isAStar && gNew+hNew >= mode.bound {
				continue // cannot improve over the bound
			}
			if !mode.isAStar && d.GoalTest(succ.State) {
				elapsed := time.Since(startTime)
				o.Logger.Info().Int("cost", gNew).Int("expanded", stats.Expanded).
					Int("generated", stats.Generated).Int("reopened", stats.Reopened).
					Dur("elapsed", elapsed).Msg("search succeeded")
				return gNew, elapsed, stats, nil
			}

			newNode := &searchNode[S]{
				f:       mode.priority(gNew, hNew),
				h:       hNew,
				g:       gNew,
				state:   succ.State,
				parent:  n,
				inOpen:  true,
				isValid: true,
			}
			stats.Generated++

			if prior, ok := closed[succ.State]; ok {
				if prior.inOpen {
					prior.isValid = false
				} else {
					stats.Reopened++
				}
			}
			closed[succ.State] = newNode
			heap.Push(&open, newNode)
		}
	}

	elapsed := time.Since(startTime)
	o.Logger.Debug().Int("bound", mode.bound).Dur("elapsed", elapsed).Msg("search exhausted open set")
	return 0, elapsed, stats, &NoSolutionError{Bound: mode.bound, Elapsed: elapsed}
}
