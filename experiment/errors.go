package experiment

import "errors"

// Sentinel errors returned by the experiment package's I/O and runner
// functions, following the per-package sentinel-error convention used
// throughout the rest of this module (domain.ErrInvalidInput,
// search.ErrTimeout, tilepuzzle.ErrNotPermutation, ...).
var (
	// ErrInconsistentFiles indicates an instances-ids path exists without
	// its paired results path, or vice versa — setup() cannot safely
	// resume from a half-written experiment.
	ErrInconsistentFiles = errors.New("experiment: instances-ids file and results file must both exist or both be absent")

	// ErrMalformedRecord indicates a CSV or state-cost line could not be
	// parsed into the expected shape.
	ErrMalformedRecord = errors.New("experiment: malformed record")
)
