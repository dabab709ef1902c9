// Package search implements the generic bounded-cost best-first search
// engine shared by A* and Potential Search.
//
// Both algorithms run the same single-threaded loop over a min-heap "open"
// set and a state-to-node "closed" map, differing only in their priority
// formula and their goal-check timing (A* checks on pop, to guarantee
// optimality; Potential Search checks on generation, since it only needs
// any path strictly under its cost bound). Priority updates never
// decrease-key in place: an improved path to a state pushes a fresh node
// and marks the superseded heap entry stale (isValid=false), the same
// lazy-invalidation idiom lvlath's dijkstra package uses for its nodePQ.
//
// Complexity:
//
//	Time:  O(E log E) where E is the number of successor edges generated,
//	       since every push/pop on the heap costs O(log E) and a state may
//	       be pushed more than once before its best entry is expanded.
//	Space: O(E) for the heap, O(V) for the closed map, where V is the
//	       number of distinct states discovered.
//
// Error handling: a search fails with ErrTimeout (wall-clock budget
// exceeded) or ErrNoSolution (open set exhausted before any qualifying goal
// was found), returned as a *TimeoutError carrying the elapsed duration or
// a *NoSolutionError carrying the bound (0 for A*) and the elapsed
// duration. Both types unwrap to their sentinel, so callers can both
// errors.Is and read a formatted message.
//
// Concurrency: AStar and PotentialSearch are not safe for concurrent use on
// the same domain instance if the domain's own mutable state (e.g. a
// tilepuzzle.Puzzle's goal) changes mid-search; the domain must stay
// read-only for the duration of a call. Separate calls against the same
// read-only domain from different goroutines are safe.
package search
