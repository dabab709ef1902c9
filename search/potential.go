package search

import (
	"time"

	"github.com/katalvlaran/ptsearch/domain"
)

// PotentialSearch runs bounded-suboptimal Potential Search from start
// against d, returning the first discovered path with cost strictly less
// than bound. Nodes whose g+h would not beat bound are pruned before a
// priority is ever computed; the goal test happens at successor
// generation rather than at pop, since any path under bound is
// acceptable (spec §4.4).
//
// pureHeuristic switches the priority formula from the ratio
// h/(bound-g) to plain h, turning the bounded-cost framework into greedy
// best-first search while keeping the same pruning and goal-check
// semantics — useful as the "h_*" comparison arm in experiment runs
// alongside the ratio-driven "p_*" arm.
func PotentialSearch[S State](d domain.Domain[S], start S, bound int, pureHeuristic bool, timeout time.Duration, opts ...Option) (cost int, elapsed time.Duration, stats Stats, err error) {
	return solve(d, start, engineMode{isAStar: false, bound: bound, pureHeuristic: pureHeuristic}, timeout, opts...)
}
