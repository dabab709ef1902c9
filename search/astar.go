package search

import (
	"time"

	"github.com/katalvlaran/ptsearch/domain"
)

// AStar runs the classic A* algorithm from start against d: priority
// f = g + h, goal test on pop (guaranteeing optimality for an admissible
// heuristic per spec §4.4's "why A* checks goal on pop" rationale). It
// returns the optimal cost and elapsed wall time on success, or wraps
// ErrTimeout / ErrNoSolution on failure.
//
// AStar has no cost bound: it explores until it pops a goal state or the
// open set empties (which, for a connected domain, only happens on
// timeout — ErrNoSolution is reachable in principle for a domain whose
// goal is unreachable from start).
func AStar[S State](d domain.Domain[S], start S, timeout time.Duration, opts ...Option) (cost int, elapsed time.Duration, stats Stats, err error) {
	return solve(d, start, engineMode{isAStar: true}, timeout, opts...)
}
