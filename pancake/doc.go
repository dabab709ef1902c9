// Package pancake implements the burnt-pancake-style prefix-reversal
// puzzle as a domain.Domain[State].
//
// A stack of N distinct values is addressed so index 0 is the "top". The
// single operator family is a prefix reversal: for i in 0..N-2, flipping
// the suffix starting at i yields one successor, giving exactly N-1
// successors per state, all of cost 1.
//
// Heuristic: the Gap heuristic counts adjacent pairs whose values differ
// by more than 1, plus 1 if the top element is not the largest value.
// Heuristic degradation (a non-negative multiple of 0.5) relaxes the gap
// count by ignoring gaps below a threshold; see gap in pancake.go for the
// exact integer/half-integer formulas.
//
// This package fixes the value convention at 0..N-1 (the goal is
// (N-1, N-2, ..., 0)); see DESIGN.md for why this convention was chosen
// over the 1..N variant.
package pancake
