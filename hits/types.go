// Package hits provides tunable options, result types, and error
// definitions for the HITS solver.
package hits

import (
	"errors"
	"fmt"
)

// Default solver parameters, matching the canonical algorithm.
const (
	// DefaultMaxIterations caps the power iteration at 100 rounds.
	DefaultMaxIterations = 100

	// DefaultTolerance is the per-vertex convergence tolerance; the
	// round delta must drop below N·DefaultTolerance.
	DefaultTolerance = 1e-5
)

// Sentinel errors for HITS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("hits: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hits: invalid option supplied")

	// ErrBadNStart is returned when the starting vector has the wrong
	// length, a negative entry, or no positive mass at all.
	ErrBadNStart = errors.New("hits: invalid starting vector")

	// ErrNotConverged is the sentinel matched (via errors.Is) by every
	// *ConvergenceError returned from Solve.
	ErrNotConverged = errors.New("hits: failed to converge within iteration limit")
)

// ConvergenceError reports that the iteration cap was exhausted before
// the convergence test passed. The call is failed, but the last computed
// iterate is exposed for diagnostics: Hub and Authority hold the final
// (L2-normalized) vectors, Delta the final Σ|hub'−hub|, and Iterations
// the number of rounds performed.
type ConvergenceError struct {
	Hub        []float64
	Authority  []float64
	Delta      float64
	Iterations int
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("hits: no convergence after %d iterations (delta=%.6g)", e.Iterations, e.Delta)
}

// Unwrap lets callers branch with errors.Is(err, ErrNotConverged).
func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// Result holds a successful HITS run:
//   - Hub, Authority: dense score vectors indexed by vertex, each with
//     unit L2 norm (or all zero when the graph feeds it no mass).
//   - Iterations: rounds performed before the convergence test passed.
//   - Delta: the final Σ_v |hub'[v] − hub[v]|.
type Result struct {
	Hub        []float64
	Authority  []float64
	Iterations int
	Delta      float64
}

// Option configures HITS behavior via functional arguments.
// If an Option is invalid (e.g. zero tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters customizing a Solve call.
type Options struct {
	// MaxIterations caps the number of power-iteration rounds (≥ 1).
	MaxIterations int

	// Tolerance governs the convergence test: the round delta must be
	// below N·Tolerance. Must be > 0.
	Tolerance float64

	// NStart optionally seeds the hub vector in place of the uniform
	// start. Validated at solve time against the graph's vertex count.
	NStart []float64

	// Normalized mirrors the canonical interface; only true is
	// supported. WithNormalized(false) is an option violation.
	Normalized bool

	// Workers shards per-round vertex updates across this many
	// goroutines. 0 means fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with canonical defaults:
//   - MaxIterations = 100
//   - Tolerance     = 1e-5
//   - uniform start (NStart == nil)
//   - Normalized    = true
//   - sequential execution (Workers == 0).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		NStart:        nil,
		Normalized:    true,
		Workers:       0,
		err:           nil,
	}
}

// WithMaxIterations caps the power iteration at k rounds.
//
//	k ≥ 1: valid cap
//	k < 1: invalid option → ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be ≥ 1 (got %d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithTolerance sets the convergence tolerance.
//
//	tol > 0: valid
//	tol ≤ 0 (or NaN): invalid option → ErrOptionViolation
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be > 0 (got %g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithNStart seeds the hub vector with the given values instead of the
// uniform start. The slice is validated against the graph at solve time:
// its length must equal N, every entry must be non-negative, and at
// least one entry must be positive. The seed is rescaled to unit L2 norm
// before the first round.
func WithNStart(seed []float64) Option {
	return func(o *Options) {
		o.NStart = seed
	}
}

// WithNormalized exists for interface parity with the canonical
// algorithm, whose normalized flag is contractually always true.
// Passing false does not silently change numeric behavior — it is
// rejected as ErrOptionViolation when Solve runs.
func WithNormalized(normalized bool) Option {
	return func(o *Options) {
		if !normalized {
			o.err = fmt.Errorf("%w: Normalized=false is not supported", ErrOptionViolation)
			return
		}
		o.Normalized = true
	}
}

// WithWorkers shards each round's vertex updates across w goroutines.
//
//	w > 0:  parallel phases with w workers
//	w == 0: explicit sequential execution
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}
