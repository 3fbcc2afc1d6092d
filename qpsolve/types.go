package qpsolve

import (
	"errors"

	"github.com/nonopt-go/nonopt/vector"
)

// Sentinel errors for qpsolve.
var (
	// ErrDimensionMismatch indicates the gradient list and linear-term list
	// passed to SetVectorList/SetVector/AddData have different lengths.
	ErrDimensionMismatch = errors.New("qpsolve: |G| != |b|")

	// ErrEmptyBundle indicates SolveQP/SolveQPHot was called with no rows.
	ErrEmptyBundle = errors.New("qpsolve: empty bundle")

	// ErrNotSolved indicates a read-only query was made before any solve.
	ErrNotSolved = errors.New("qpsolve: no solve has been performed yet")
)

// Status is the outcome of a QP solve attempt.
type Status int

const (
	// StatusUnsolved is the zero value: no solve has been attempted yet.
	StatusUnsolved Status = iota

	// StatusSuccess indicates the solver converged to within its inexact
	// solution tolerance.
	StatusSuccess

	// StatusIterationLimit indicates the solver's internal iteration cap
	// was reached before convergence; the returned primal/dual solution is
	// the best found so far, not a certified optimum.
	StatusIterationLimit

	// StatusFailure indicates a non-recoverable numerical failure (e.g. a
	// degenerate, empty, or otherwise malformed bundle).
	StatusFailure
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusIterationLimit:
		return "ITERATION_LIMIT"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNSOLVED"
	}
}

// Options configures a Solver's internal convergence behavior.
type Options struct {
	// MaxIterations caps the solver's internal (Frank-Wolfe) iteration count
	// for a single SolveQP/SolveQPHot call.
	MaxIterations int
}

// DefaultOptions returns the solver's default internal convergence knobs.
func DefaultOptions() Options {
	return Options{MaxIterations: 200}
}

// Solver is the contract the direction-computation core consumes. It models
// a structured convex QP parameterized by a list of gradients G and linear
// terms b:
//
//	min_d (1/2) d^T H d + max_i (b_i + ⟨g_i, d⟩ − f(x_k))  s.t. ‖d‖ ≤ Δ
//
// where H is the caller's approximate Hessian (opaque to this contract —
// SimplexQP uses H = I) and dual weights ω live on the simplex over bundle
// rows.
type Solver interface {
	// SetScalar sets the trust-region radius Δ.
	SetScalar(delta float64)

	// SetInexactSolutionTolerance sets the stationarity radius ρ, used as
	// the solver's internal stopping tolerance on its duality gap.
	SetInexactSolutionTolerance(rho float64)

	// SetVectorList bulk-replaces the gradient list G, resetting any
	// previous solve state.
	SetVectorList(g []vector.Vector) error

	// SetVector bulk-replaces the linear-term list b. len(b) must equal the
	// length last given to SetVectorList.
	SetVector(b []float64) error

	// AddData incrementally appends gNew/bNew to the current bundle for a
	// subsequent hot solve.
	AddData(gNew []vector.Vector, bNew []float64) error

	// SolveQP performs a cold solve: dual weights are reset before iterating.
	SolveQP(opts Options) Status

	// SolveQPHot performs a warm-started solve, resuming from the previous
	// dual solution (extended with zero weight on any rows added since).
	SolveQPHot(opts Options) Status

	// SetPrimalSolutionToZero forces the primal solution to the zero vector.
	// The direction-computation core does not call it; its QP-failure
	// recovery re-solves the seed-only bundle instead.
	SetPrimalSolutionToZero()

	// Status returns the outcome of the most recent solve.
	Status() Status

	// PrimalSolution writes the primal step d into out, which must have
	// length equal to the problem dimension.
	PrimalSolution(out vector.Vector)

	// PrimalSolutionNorm2Squared returns ‖d‖₂².
	PrimalSolutionNorm2Squared() float64

	// PrimalSolutionNormInf returns ‖d‖∞.
	PrimalSolutionNormInf() float64

	// DualObjectiveQuadraticValue returns the QP model's predicted-decrease
	// quantity, nonnegative by construction under the downshift invariant
	// (b_i ≤ f(x_k) for all i).
	DualObjectiveQuadraticValue() float64

	// CombinationTranslatedNorm2Squared returns ‖Σ ω_i g_i‖₂² — the
	// pre-trust-region-clip combination norm.
	CombinationTranslatedNorm2Squared() float64

	// DualSolutionOmegaLength returns len(ω), i.e. the current bundle size.
	DualSolutionOmegaLength() int

	// DualSolutionOmega writes ω into out, which must have length
	// DualSolutionOmegaLength().
	DualSolutionOmega(out []float64)

	// NumberOfIterations returns the internal iteration count used by the
	// most recent solve.
	NumberOfIterations() int

	// VectorListLength returns the current bundle size |G|.
	VectorListLength() int

	// KKTErrorDual returns the solver's internal duality-gap estimate at the
	// end of the most recent solve (0 at an exact optimum).
	KKTErrorDual() float64
}
