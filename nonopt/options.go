package nonopt

import "github.com/nonopt-go/nonopt/direction"

// Options configures Solve's outer loop, mirroring the teacher's
// tsp.Options/DefaultOptions convention: one exported struct, one
// Default constructor, zero value not meaningful.
type Options struct {
	// Direction configures each direction.ComputeDirection call.
	Direction direction.Options

	// MaxOuterIterations caps the number of outer iterations before
	// Solve gives up with StatusMaxOuterIterations.
	MaxOuterIterations int

	// ConvergenceNormInf: Solve declares StatusConverged once the
	// accepted direction's ‖d‖∞ drops to or below this value. This is the
	// only convergence test Solve applies; the trust-region radius and
	// quantities.StationarityRadius do not enter it.
	ConvergenceNormInf float64

	// RequireLineSearch: if true, a line-search failure (ok == false)
	// is treated as StatusLineSearchFailure instead of falling back to
	// accepting the direction core's own trial iterate unscaled.
	RequireLineSearch bool
}

// DefaultOptions returns Options with conservative defaults: 500 outer
// iterations, a convergence floor of 1e-6, line-search failures treated
// as non-fatal (fall back to the unscaled trial iterate).
func DefaultOptions() Options {
	return Options{
		Direction:          direction.DefaultOptions(),
		MaxOuterIterations: 500,
		ConvergenceNormInf: 1e-6,
		RequireLineSearch:  false,
	}
}
