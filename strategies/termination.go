package strategies

import (
	"github.com/nonopt-go/nonopt/qpsolve"
	"github.com/nonopt-go/nonopt/quantities"
)

// RadiusTermination is a reference Termination: it grows the trust-region
// radius Δ after a run of clean QP successes with a small duality gap
// (the model is predicting well, so the solver can safely take bigger
// steps), and shrinks the stationarity radius ρ after a run of QP stalls
// (iteration-limit/failure statuses), tightening which bundle points are
// considered "close enough" to contribute. This mirrors, in spirit, the
// adaptive bound-tightening the teacher's branch-and-bound engine applies
// to its own incumbent — a simple, real heuristic rather than a
// theoretically tuned trust-region rule (spec.md does not mandate one).
type RadiusTermination struct {
	GrowFactor   float64
	ShrinkFactor float64
	GapFraction  float64
	Patience     int

	successRun int
	stallRun   int
}

// NewRadiusTermination returns a RadiusTermination with conservative
// defaults: grow Δ by 1.5x, shrink ρ by 0.5x, after 3 consecutive
// successes/stalls respectively.
func NewRadiusTermination() *RadiusTermination {
	return &RadiusTermination{
		GrowFactor:   1.5,
		ShrinkFactor: 0.5,
		GapFraction:  0.1,
		Patience:     3,
	}
}

// CheckConditionsDirectionComputation implements strategies.Termination.
func (r *RadiusTermination) CheckConditionsDirectionComputation(q *quantities.Quantities, solver qpsolve.Solver) bool {
	switch solver.Status() {
	case qpsolve.StatusSuccess:
		r.stallRun = 0
		if solver.KKTErrorDual() <= r.GapFraction*q.StationarityRadius {
			r.successRun++
		} else {
			r.successRun = 0
		}
		if r.successRun >= r.Patience {
			q.TrustRegionRadius *= r.GrowFactor
			r.successRun = 0

			return true
		}
	default:
		r.successRun = 0
		r.stallRun++
		if r.stallRun >= r.Patience {
			q.StationarityRadius *= r.ShrinkFactor
			r.stallRun = 0

			return true
		}
	}

	return false
}
