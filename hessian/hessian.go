package hessian

import (
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/vector"
)

// Strategy is the Hessian-update capability the Strategies façade exposes.
type Strategy interface {
	// Update refreshes the approximate-Hessian scaling given the most
	// recent step sPrev = x_{k+1} - x_k and gradient change
	// yPrev = ∇f(x_{k+1}) - ∇f(x_k).
	Update(q *quantities.Quantities, sPrev, yPrev vector.Vector) error

	// IterationNullString returns a fixed-width placeholder for this
	// strategy's column(s) on a row where it did not run. Package reporter
	// does not print it; Reporter.Null writes its own fixed NullLine.
	IterationNullString() string
}

// DiagonalBFGS maintains a single scalar curvature estimate via the
// Barzilai-Borwein secant update γ = ⟨s,y⟩ / ⟨y,y⟩, the diagonal
// (memory-light) analogue of full BFGS. Its scalar-update bookkeeping is
// grounded on the Fletcher-Reeves/Polak-Ribière γ = nume/deno step of the
// retrieved gosl ConjGrad reference, repurposed here for curvature scaling
// instead of conjugate-direction mixing.
type DiagonalBFGS struct {
	Scale float64
}

// NewDiagonalBFGS returns a DiagonalBFGS with an initial unit scale.
func NewDiagonalBFGS() *DiagonalBFGS {
	return &DiagonalBFGS{Scale: 1}
}

// Update implements Strategy. If ⟨y,y⟩ is degenerate (no curvature
// information yet, e.g. the first outer iteration), the scale is left
// unchanged.
func (d *DiagonalBFGS) Update(_ *quantities.Quantities, sPrev, yPrev vector.Vector) error {
	yy := yPrev.Dot(yPrev)
	if yy <= 1e-18 {
		return nil
	}
	sy := sPrev.Dot(yPrev)
	if sy <= 0 {
		// Non-positive curvature: keep the previous scale rather than
		// accepting a non-positive-definite update.
		return nil
	}
	d.Scale = sy / yy

	return nil
}

// IterationNullString implements Strategy.
func (d *DiagonalBFGS) IterationNullString() string { return "--------" }
