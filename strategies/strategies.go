package strategies

import (
	"github.com/nonopt-go/nonopt/hessian"
	"github.com/nonopt-go/nonopt/linesearch"
	"github.com/nonopt-go/nonopt/pointset"
	"github.com/nonopt-go/nonopt/qpsolve"
	"github.com/nonopt-go/nonopt/quantities"
)

// Termination is the contract spec.md §4.4 describes: it inspects
// iterate/radius/QP state and may raise an "update radii" flag that also
// acts as an escape-success condition within direction.ComputeDirection's
// inner loop.
type Termination interface {
	// CheckConditionsDirectionComputation inspects q and the QP solver's
	// most recent solve and reports whether the outer loop should adjust
	// the trust-region radius Δ or stationarity radius ρ.
	CheckConditionsDirectionComputation(q *quantities.Quantities, solver qpsolve.Solver) (updateRadii bool)
}

// Strategies is the façade holding pointers to the QP solver, termination,
// line search, Hessian update, and point-set update components, per
// spec.md §4.2.
type Strategies struct {
	QPSolver        qpsolve.Solver
	Termination     Termination
	LineSearch      linesearch.Strategy
	HessianUpdate   hessian.Strategy
	PointSetUpdate  pointset.Strategy
}

// New assembles a Strategies façade from its five components.
func New(qp qpsolve.Solver, term Termination, ls linesearch.Strategy, hu hessian.Strategy, psu pointset.Strategy) *Strategies {
	return &Strategies{
		QPSolver:       qp,
		Termination:    term,
		LineSearch:     ls,
		HessianUpdate:  hu,
		PointSetUpdate: psu,
	}
}

// Default assembles a Strategies façade from the reference
// implementations: qpsolve.SimplexQP, this package's RadiusTermination,
// linesearch.Armijo, hessian.DiagonalBFGS, and a pointset.SlidingWindow
// point-set cap.
func Default(maxPointSetSize int) *Strategies {
	return New(
		qpsolve.NewSimplexQP(),
		NewRadiusTermination(),
		linesearch.NewArmijo(),
		hessian.NewDiagonalBFGS(),
		pointset.NewSlidingWindow(maxPointSetSize),
	)
}
