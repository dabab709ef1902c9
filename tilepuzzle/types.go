package tilepuzzle

import (
	"errors"
)

// MaxCells bounds the array-backed State representation. 5x5 (25 cells) is
// far beyond any instance this package is exercised against (the classic
// benchmark is the 4x4 15-puzzle) but keeps State a fixed-size, comparable
// value type usable directly as a map key in the search engine's closed
// set, the way core.Vertex values are used by ID in lvlath's adjacency maps.
const MaxCells = 25

// Sentinel errors returned by New, SetGoal and the functional options.
var (
	// ErrBadDimensions indicates width or height was non-positive, or their
	// product exceeds MaxCells.
	ErrBadDimensions = errors.New("tilepuzzle: width and height must be positive and width*height <= MaxCells")

	// ErrNotPermutation indicates a proposed goal or start state is not a
	// permutation of 0..N-1.
	ErrNotPermutation = errors.New("tilepuzzle: state is not a permutation of 0..N-1")

	// ErrBadIgnoreCount indicates a negative IgnoreTilesUpTo value.
	ErrBadIgnoreCount = errors.New("tilepuzzle: ignore-tiles-up-to must be non-negative")

	// ErrBadOperatorOrder indicates WithOperatorOrder was given a slice that
	// is not a permutation of the four Direction values.
	ErrBadOperatorOrder = errors.New("tilepuzzle: operator order must be a permutation of all four directions")
)

// Direction names one of the four slide operators.
type Direction int

const (
	Left Direction = iota
	Up
	Down
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// defaultOperatorOrder matches the order named in the glossary: left, up,
// down, right.
var defaultOperatorOrder = [4]Direction{Left, Up, Down, Right}

// Options configures a Puzzle at construction time.
type Options struct {
	Goal           []int
	OperatorOrder  [4]Direction
	IgnoreTilesUpTo int
}

// Option is a functional option for New, following the teacher's
// Option func(*Options) convention (dijkstra.Option, prim_kruskal.Option).
type Option func(*Options)

// WithGoal overrides the default goal (1,2,...,N-1,0), blank in the last
// cell, with an explicit permutation.
func WithGoal(goal []int) Option {
	return func(o *Options) {
		o.Goal = append([]int(nil), goal...)
	}
}

// WithOperatorOrder overrides the default {Left,Up,Down,Right} successor
// enumeration order.
func WithOperatorOrder(order [4]Direction) Option {
	return func(o *Options) {
		o.OperatorOrder = order
	}
}

// WithIgnoreTilesUpTo sets the heuristic-degradation parameter: tiles whose
// value is <= this threshold do not contribute to the Manhattan-distance
// sum. Zero (the default) ignores only the blank.
func WithIgnoreTilesUpTo(n int) Option {
	return func(o *Options) {
		o.IgnoreTilesUpTo = n
	}
}

// DefaultOptions returns the zero-degradation defaults for an N-cell puzzle:
// goal (1,2,...,N-1,0) with the blank in the last cell, {Left,Up,Down,Right}
// order, IgnoreTilesUpTo=0.
func DefaultOptions(n int) Options {
	goal := make([]int, n)
	for i := 0; i < n-1; i++ {
		goal[i] = i + 1
	}
	return Options{
		Goal:            goal,
		OperatorOrder:   defaultOperatorOrder,
		IgnoreTilesUpTo: 0,
	}
}
