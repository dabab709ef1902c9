// Package tilepuzzle implements the rectangular sliding-tile puzzle as a
// domain.Domain[State].
//
// A puzzle of width W and height H has N = W*H cells arranged row-major,
// holding the values 0..N-1 where 0 is the blank. A move slides one of the
// blank's orthogonal neighbors into the blank's cell; the returned
// successor list follows a configurable operator order so that tie-breaking
// in the search engine is reproducible across runs.
//
// Heuristic:
//
//	the weighted Manhattan-distance heuristic sums, over every tile whose
//	value exceeds IgnoreTilesUpTo, the row-plus-column distance between its
//	current cell and its goal cell. The per-tile, per-cell increments are
//	precomputed whenever the goal changes (New, SetGoal) so Heuristic itself
//	is O(N).
//
// Construction uses the functional-options idiom: New(width, height,
// opts...) together with WithGoal, WithOperatorOrder and
// WithIgnoreTilesUpTo, mirroring dijkstra's Option/DefaultOptions pattern.
//
// Error handling: construction-time failures (non-permutation goal,
// negative ignore count, malformed dimensions, bad operator order) return
// sentinel errors; see ErrNotPermutation, ErrBadDimensions,
// ErrBadIgnoreCount, ErrBadOperatorOrder in types.go. A goal whose length
// does not match the puzzle size returns ErrBadDimensions wrapped with
// fmt.Errorf/%w; the other failures return the bare sentinel.
package tilepuzzle
