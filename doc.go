// Package ptsearch is a bounded-cost heuristic search engine for classical
// deterministic planning domains.
//
// Given a start state, a heuristic estimate of remaining cost, and (for
// Potential Search) a cost bound C, ptsearch finds a path whose total cost
// is strictly less than C, using either A* (unbounded, optimal) or
// Potential Search (bounded-suboptimal, typically much faster in practice).
//
// Two concrete domains are bundled: the rectangular sliding-tile puzzle
// (package tilepuzzle) and the burnt-pancake prefix-reversal puzzle
// (package pancake), both with tunable heuristic degradation for studying
// how heuristic error affects search behavior.
//
// Package layout:
//
//	domain/       — the Domain[S] contract every planning domain satisfies
//	tilepuzzle/   — concrete Domain[tilepuzzle.State]
//	pancake/      — concrete Domain[pancake.State]
//	search/       — the shared best-first engine: search.AStar, search.PotentialSearch
//	experiment/   — CSV/text instance and result I/O, viper-backed experiment config
//	cmd/ptsearch/ — a cobra-based CLI driving solve/experiment/analyze
//
// A typical solve:
//
//	p, _ := tilepuzzle.New(3, 3)
//	start, _ := tilepuzzle.NewState([]int{1, 2, 3, 4, 5, 6, 0, 7, 8})
//	cost, elapsed, stats, err := search.AStar[tilepuzzle.State](p, start, 30*time.Second)
package ptsearch
