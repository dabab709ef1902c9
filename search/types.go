package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Sentinel errors for a failed AStar or PotentialSearch call. The search
// returns them inside *TimeoutError / *NoSolutionError, which attach the
// elapsed time (and, for no-solution, the bound); callers recover them
// with errors.Is.
var (
	// ErrTimeout indicates the wall-clock budget was exceeded before the
	// search terminated.
	ErrTimeout = errors.New("search: timed out")

	// ErrNoSolution indicates the open set was exhausted before any
	// qualifying goal state was found.
	ErrNoSolution = errors.New("search: no solution within bound")
)

// TimeoutError wraps ErrTimeout with the elapsed duration at the point the
// timeout fired.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: elapsed=%s", ErrTimeout, e.Elapsed)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// NoSolutionError wraps ErrNoSolution with the bound (0 for A*, which has
// no bound) and the elapsed duration.
type NoSolutionError struct {
	Bound   int
	Elapsed time.Duration
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("%s: bound=%d elapsed=%s", ErrNoSolution, e.Bound, e.Elapsed)
}

func (e *NoSolutionError) Unwrap() error { return ErrNoSolution }

// Logger is the package-level zerolog.Logger used by searches that do
// not override it via WithLogger, mirroring dijkstra's package-scoped,
// overridable default state. It starts as zerolog's global log.Logger
// (writing to stderr), so which events it emits is governed by zerolog's
// global level.
var Logger = log.Logger

// SetLogger overrides the package-level default Logger used by future
// searches. It does not affect searches already in flight or calls made
// with an explicit WithLogger option.
func SetLogger(l zerolog.Logger) { Logger = l }

// Stats carries the search loop's counters, reported regardless of
// success or failure (on failure they reflect progress up to the point of
// termination).
type Stats struct {
	Expanded  int
	Generated int
	Reopened  int
}

// Options configures one AStar or PotentialSearch call. Construct with DefaultOptions and
// functional-option overrides, mirroring dijkstra.Options/Option.
type Options struct {
	ProgressBar         *progressbar.ProgressBar
	ProgressReportEvery int
	Logger              zerolog.Logger
	logEvery            int
}

// Option is a functional option for AStar and PotentialSearch.
type Option func(*Options)

// WithProgressBar attaches a *progressbar.ProgressBar that advances every
// ProgressReportEvery expansions. Nil (the default) disables progress
// reporting entirely; progress updates are always best-effort and never
// block the search loop.
func WithProgressBar(bar *progressbar.ProgressBar) Option {
	return func(o *Options) { o.ProgressBar = bar }
}

// WithProgressReportEvery overrides how many expansions elapse between
// progress-bar advances.
func WithProgressReportEvery(n int) Option {
	return func(o *Options) { o.ProgressReportEvery = n }
}

// WithLogger overrides the package-default zerolog.Logger used to emit
// debug/info events during the search.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the defaults: no progress bar, progress reported
// every 10000 expansions, and the package-default Logger. The search's
// wall-clock budget is the timeout argument of AStar/PotentialSearch, not
// an option.
func DefaultOptions() Options {
	return Options{
		ProgressReportEvery: 10000,
		Logger:              Logger,
		logEvery:            100000,
	}
}
