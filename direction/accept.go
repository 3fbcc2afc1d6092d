package direction

import "github.com/nonopt-go/nonopt/qpsolve"

// predictedDecrease returns min(Q_dual, max(N_comb, N_prim)) — the QP
// model's predicted-reduction quantity spec.md §4.1 describes in its
// "Sufficient-decrease rationale".
func predictedDecrease(qp qpsolve.Solver) float64 {
	qDual := qp.DualObjectiveQuadraticValue()
	nComb := qp.CombinationTranslatedNorm2Squared()
	nPrim := qp.PrimalSolutionNorm2Squared()
	maxCombPrim := nComb
	if nPrim > maxCombPrim {
		maxCombPrim = nPrim
	}
	if qDual < maxCombPrim {
		return qDual
	}

	return maxCombPrim
}

// accepts implements the sufficient-decrease acceptance test (S):
//
//	f(trial) − f(x_k) < −τ · prefactor · min(Q_dual, max(N_comb, N_prim))
//
// prefactor is η_g for the gradient fast path (spec.md §4.1 step 3),
// α_s for the shortened-step probe (step 8(d)), and 1 for the full-bundle
// inner-loop test (step 8(a)) — the asymmetry (the gradient/shortened
// tests carry an explicit stepsize factor the full-bundle test omits) is
// intentional: the full-bundle QP step d already is the displacement, not
// a direction to be separately scaled (spec.md §9 "Design Notes").
func accepts(fTrial, fCurrent, tau, prefactor float64, qp qpsolve.Solver) bool {
	return fTrial-fCurrent < -tau*prefactor*predictedDecrease(qp)
}
