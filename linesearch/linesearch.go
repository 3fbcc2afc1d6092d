package linesearch

import (
	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/vector"
)

// Strategy is the line-search capability the Strategies façade exposes.
type Strategy interface {
	// Search attempts to find a stepsize alpha such that
	// currentIterate + alpha*direction is an acceptable next point.
	// Returns ok == false if no acceptable stepsize was found.
	Search(q *quantities.Quantities, oracle iterate.Oracle) (alpha float64, ok bool)

	// IterationNullString returns a fixed-width placeholder for this
	// strategy's column(s) on a row where it did not run. Package reporter
	// does not print it; Reporter.Null writes its own fixed NullLine.
	IterationNullString() string
}

// Armijo is a classic backtracking line search with sufficient-decrease
// parameter c1 and contraction factor beta.
type Armijo struct {
	C1         float64
	Beta       float64
	MaxBacktracks int
}

// NewArmijo returns an Armijo line search with standard defaults
// (c1=1e-4, beta=0.5, 30 backtracks).
func NewArmijo() *Armijo {
	return &Armijo{C1: 1e-4, Beta: 0.5, MaxBacktracks: 30}
}

// Search implements Strategy.
func (a *Armijo) Search(q *quantities.Quantities, oracle iterate.Oracle) (float64, bool) {
	if !q.CurrentIterate.HasValue() {
		q.CurrentIterate.EvaluateObjectiveAndGradient(oracle)
	}
	f0 := q.CurrentIterate.Value()
	g0 := q.CurrentIterate.Gradient()
	slope := g0.Dot(q.Direction)

	alpha := 1.0
	for i := 0; i < a.MaxBacktracks; i++ {
		trialPos, err := vector.LinearCombination(1, q.CurrentIterate.Position(), alpha, q.Direction)
		if err != nil {
			return 0, false
		}
		trial := iterate.New(trialPos)
		if !trial.EvaluateObjective(oracle) {
			alpha *= a.Beta

			continue
		}
		if trial.Value() <= f0+a.C1*alpha*slope {
			return alpha, true
		}
		alpha *= a.Beta
	}

	return 0, false
}

// IterationNullString implements Strategy.
func (a *Armijo) IterationNullString() string { return "--------" }
