package direction

import (
	"strconv"
	"time"

	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/qpsolve"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/reporter"
	"github.com/nonopt-go/nonopt/strategies"
	"github.com/nonopt-go/nonopt/vector"
)

// ComputeDirection implements spec.md §4.1: builds and solves a sequence of
// cutting-plane QP subproblems over a bundle rooted at the current iterate,
// populating quantities.Direction and quantities.TrialIterate on success.
// It never returns StatusUnset — every exit path below sets a definite
// Status before returning.
func ComputeDirection(opts Options, q *quantities.Quantities, strat *strategies.Strategies, rep *reporter.Reporter, oracle iterate.Oracle) Status {
	start := time.Now()
	defer func() {
		q.Counters.DirectionComputationTime += time.Since(start)
		q.Counters.TotalInner += q.Counters.InnerIteration
		q.Counters.TotalQP += q.Counters.QPIteration
		rep.Flush()
	}()

	q.ResetDirection()
	q.Counters.Reset()
	q.TrialIterate = q.CurrentIterate

	qp := strat.QPSolver
	qpOpts := qpsolve.DefaultOptions()

	// Step 1: evaluate f(x_k), ∇f(x_k).
	if !evaluateCurrent(q, oracle) {
		rep.Null()

		return StatusEvaluationFailure
	}
	qp.SetScalar(q.TrustRegionRadius)
	qp.SetInexactSolutionTolerance(q.StationarityRadius)

	// Step 2: seed bundle — [∇f(x_k)], [f(x_k)].
	bd := newSeedBundle(q.CurrentIterate.Gradient(), q.CurrentIterate.Value())

	// Step 3: gradient-step fast path.
	if opts.TryGradientStep {
		if status, done := tryGradientStep(opts, q, strat, rep, oracle, &bd); done {
			return status
		}
	}

	// Step 4: initial bundle expansion over nearby point-set members.
	expandBundleFromPointSet(opts, q, oracle, &bd)

	// Step 5: initial full QP solve.
	installCold(qp, &bd, qpOpts)
	q.Counters.QPIteration += qp.NumberOfIterations()
	convertQPSolutionToStep(q, qp)

	// Step 6: hard QP-failure handling.
	if qp.Status() != qpsolve.StatusSuccess {
		if opts.FailOnQPFailure {
			reportRow(rep, q, qp)

			return StatusQPFailure
		}
		bd = newSeedBundle(q.CurrentIterate.Gradient(), q.CurrentIterate.Value())
		installCold(qp, &bd, qpOpts)
		q.Counters.QPIteration += qp.NumberOfIterations()
		convertQPSolutionToStep(q, qp)
		if qp.Status() != qpsolve.StatusSuccess {
			reportRow(rep, q, qp)

			return StatusQPFailure
		}
	}
	reportRow(rep, q, qp)

	// Step 7: aggregation state.
	bdAgg := bd.clone()
	switchedToFull := false

	// Step 8: inner loop.
	for {
		q.Counters.InnerIteration++
		if q.Counters.InnerIteration > opts.InnerIterationLimit {
			reportRow(rep, q, qp)
			if opts.FailOnIterationLimit {
				return StatusIterationLimit
			}

			return StatusSuccess
		}

		// (a) evaluate trial, ask termination, test acceptance.
		if !evaluateTrial(q, oracle) {
			rep.Null()

			return StatusEvaluationFailure
		}
		updateRadii := strat.Termination.CheckConditionsDirectionComputation(q, qp)
		fTrial := q.TrialIterate.Value()
		if updateRadii || accepts(fTrial, q.CurrentIterate.Value(), opts.StepAcceptanceTolerance, 1, qp) {
			reportRow(rep, q, qp)

			return StatusSuccess
		}

		if q.CPUTimeExceeded() {
			reportRow(rep, q, qp)

			return StatusCPUTimeLimit
		}

		// (b) aggregation refresh.
		if opts.TryAggregation && !switchedToFull {
			refreshAggregate(qp, &bdAgg, q.CurrentIterate)
		}

		// (c) bundle additions.
		var bdNew bundle
		if status, failed := addFarPoint(opts, q, rep, qp, oracle, &bd, &bdAgg, switchedToFull, &bdNew); failed {
			return status
		}
		if opts.TryShortenedStep {
			if status, done := tryShortenedStep(opts, q, strat, rep, oracle, &bd, &bdAgg, switchedToFull, &bdNew); done {
				return status
			}
		}

		// (d) re-solve.
		if opts.TryAggregation && !switchedToFull {
			if q.PointSet.Len() < int(opts.AggregationSizeThreshold*float64(q.NumberOfVariables)) {
				installCold(qp, &bdAgg, qpOpts)
			} else {
				installCold(qp, &bd, qpOpts)
				switchedToFull = true
			}
		} else {
			_ = qp.AddData(bdNew.g, bdNew.b)
			qp.SolveQPHot(qpOpts)
		}
		q.Counters.QPIteration += qp.NumberOfIterations()

		// (e) convert solution to step.
		convertQPSolutionToStep(q, qp)

		// (f) QP-failure recovery.
		if qp.Status() != qpsolve.StatusSuccess {
			if opts.FailOnQPFailure {
				reportRow(rep, q, qp)

				return StatusQPFailure
			}
			bd = newSeedBundle(q.CurrentIterate.Gradient(), q.CurrentIterate.Value())
			if opts.TryAggregation && !switchedToFull {
				bdAgg = bd.clone()
			}
			installCold(qp, &bd, qpOpts)
			q.Counters.QPIteration += qp.NumberOfIterations()
			convertQPSolutionToStep(q, qp)
			if qp.Status() != qpsolve.StatusSuccess {
				reportRow(rep, q, qp)

				return StatusQPFailure
			}
		}
		reportRow(rep, q, qp)
		rep.Flush()
	}
}

// evaluateCurrent evaluates f and ∇f at the current iterate, jointly or
// separately per quantities.EvaluateFunctionWithGradient.
func evaluateCurrent(q *quantities.Quantities, oracle iterate.Oracle) bool {
	if q.EvaluateFunctionWithGradient {
		return q.CurrentIterate.EvaluateObjectiveAndGradient(oracle)
	}

	return q.CurrentIterate.EvaluateObjective(oracle) && q.CurrentIterate.EvaluateGradient(oracle)
}

// evaluateTrial evaluates f (and, when cheap, ∇f) at the trial iterate.
func evaluateTrial(q *quantities.Quantities, oracle iterate.Oracle) bool {
	if q.EvaluateFunctionWithGradient {
		return q.TrialIterate.EvaluateObjectiveAndGradient(oracle)
	}

	return q.TrialIterate.EvaluateObjective(oracle)
}

// ensureTrialGradient evaluates ∇f at the trial iterate if not already cached.
func ensureTrialGradient(q *quantities.Quantities, oracle iterate.Oracle) bool {
	if q.TrialIterate.HasGradient() {
		return true
	}

	return q.TrialIterate.EvaluateGradient(oracle)
}

// convertQPSolutionToStep writes the QP's primal step d into q.Direction and
// sets q.TrialIterate = x_k + d (spec.md §8 invariant 2).
func convertQPSolutionToStep(q *quantities.Quantities, qp qpsolve.Solver) {
	qp.PrimalSolution(q.Direction)
	trial, _ := q.CurrentIterate.MakeNewLinearCombination(1, 1, q.Direction)
	q.TrialIterate = trial
}

// installCold bulk-installs bd into qp and performs a cold solve. bd keeps
// its g/b slices in lockstep (bundle.append/clone/newSeedBundle), so the
// dimension-mismatch errors SetVectorList/SetVector can return never occur
// here.
func installCold(qp qpsolve.Solver, bd *bundle, opts qpsolve.Options) {
	_ = qp.SetVectorList(bd.g)
	_ = qp.SetVector(bd.b)
	qp.SolveQP(opts)
}

// reportRow emits one reporter summary line for the most recent QP solve.
func reportRow(rep *reporter.Reporter, q *quantities.Quantities, qp qpsolve.Solver) {
	rep.Summary(
		q.Counters.InnerIteration,
		qp.VectorListLength(),
		qp.NumberOfIterations(),
		strconv.Itoa(int(qp.Status())),
		qp.KKTErrorDual(),
		q.Direction.NormInf(),
		qp.DualObjectiveQuadraticValue(),
	)
}

// tryGradientStep implements spec.md §4.1 step 3: solve the 1-point QP
// rooted at the seed bundle, probe x_k + η_g·d, and accept if sufficient
// decrease holds or termination requests a radii update.
func tryGradientStep(opts Options, q *quantities.Quantities, strat *strategies.Strategies, rep *reporter.Reporter, oracle iterate.Oracle, bd *bundle) (Status, bool) {
	qp := strat.QPSolver
	installCold(qp, bd, qpsolve.DefaultOptions())
	if qp.Status() != qpsolve.StatusSuccess {
		return StatusUnset, false
	}

	dRaw := vector.NewZero(q.NumberOfVariables)
	qp.PrimalSolution(dRaw)

	probe, err := q.CurrentIterate.MakeNewLinearCombination(1, opts.GradientStepsize, dRaw)
	if err != nil {
		return StatusUnset, false
	}
	if !probe.EvaluateObjective(oracle) {
		rep.Null()

		return StatusEvaluationFailure, true
	}

	updateRadii := strat.Termination.CheckConditionsDirectionComputation(q, qp)
	if updateRadii || accepts(probe.Value(), q.CurrentIterate.Value(), opts.StepAcceptanceTolerance, opts.GradientStepsize, qp) {
		q.Direction = vector.Scale(opts.GradientStepsize, dRaw)
		q.TrialIterate = probe
		reportRow(rep, q, qp)

		return StatusSuccess, true
	}

	return StatusUnset, false
}

// expandBundleFromPointSet implements spec.md §4.1 step 4: add a cut for
// every point-set member within the stationarity radius ρ of x_k.
func expandBundleFromPointSet(opts Options, q *quantities.Quantities, oracle iterate.Oracle, bd *bundle) {
	for _, p := range q.PointSet.Snapshot() {
		diff, err := vector.Sub(q.CurrentIterate.Position(), p.Position())
		if err != nil {
			continue
		}
		if diff.NormInf() > q.StationarityRadius {
			continue
		}
		if !p.HasValue() && !p.EvaluateObjective(oracle) {
			continue
		}
		if !p.HasGradient() && !p.EvaluateGradient(oracle) {
			continue
		}
		bi, err := downshift(q.CurrentIterate, p, p.Gradient(), p.Value(), opts.DownshiftConstant)
		if err != nil {
			continue
		}
		bd.append(p.Gradient(), bi)
	}
}

// refreshAggregate collapses bdAgg's most recently solved dual weights into
// a single aggregate cut alongside the current-iterate seed cut.
func refreshAggregate(qp qpsolve.Solver, bdAgg *bundle, current *iterate.Iterate) {
	m := qp.DualSolutionOmegaLength()
	if m == 0 || m != bdAgg.len() {
		return
	}
	omega := make([]float64, m)
	qp.DualSolutionOmega(omega)

	gAgg := vector.NewZero(current.Position().Len())
	bAgg := 0.0
	for i, w := range omega {
		if w == 0 {
			continue
		}
		gAgg.AddScaled(w, bdAgg.g[i])
		bAgg += w * bdAgg.b[i]
	}

	*bdAgg = newSeedBundle(current.Gradient(), current.Value())
	bdAgg.append(gAgg, bAgg)
}

// addFarPoint implements the far-point half of spec.md §4.1 step 8(c): when
// the current step leaves x_k's stationarity ball (or AddFarPoints forces
// it), evaluate the trial's gradient, add its downshifted cut, and push the
// trial onto the point set permanently.
func addFarPoint(opts Options, q *quantities.Quantities, rep *reporter.Reporter, qp qpsolve.Solver, oracle iterate.Oracle, bd, bdAgg *bundle, switchedToFull bool, bdNew *bundle) (Status, bool) {
	if !(opts.AddFarPoints || q.Direction.NormInf() <= q.StationarityRadius) {
		return StatusUnset, false
	}
	if !ensureTrialGradient(q, oracle) {
		reportRow(rep, q, qp)

		return StatusEvaluationFailure, true
	}
	b, err := downshift(q.CurrentIterate, q.TrialIterate, q.TrialIterate.Gradient(), q.TrialIterate.Value(), opts.DownshiftConstant)
	if err != nil {
		return StatusUnset, false
	}

	q.PointSet.Append(q.TrialIterate)
	bdNew.append(q.TrialIterate.Gradient(), b)
	bd.append(q.TrialIterate.Gradient(), b)
	if opts.TryAggregation && !switchedToFull {
		bdAgg.append(q.TrialIterate.Gradient(), b)
	}

	return StatusUnset, false
}

// tryShortenedStep implements spec.md §4.1 step 8(d): probe a shortened
// version of the current step, accept on sufficient decrease, otherwise fold
// its cut into the bundle.
func tryShortenedStep(opts Options, q *quantities.Quantities, strat *strategies.Strategies, rep *reporter.Reporter, oracle iterate.Oracle, bd, bdAgg *bundle, switchedToFull bool, bdNew *bundle) (Status, bool) {
	normInf := q.Direction.NormInf()
	if normInf == 0 {
		return StatusUnset, false
	}

	alphaS := opts.ShortenedStepsize * minFloat(q.StationarityRadius, normInf) / normInf

	trial, err := q.CurrentIterate.MakeNewLinearCombination(1, alphaS, q.Direction)
	if err != nil {
		return StatusUnset, false
	}
	qp := strat.QPSolver
	if !trial.EvaluateObjectiveAndGradient(oracle) {
		reportRow(rep, q, qp)

		return StatusEvaluationFailure, true
	}

	if accepts(trial.Value(), q.CurrentIterate.Value(), opts.StepAcceptanceTolerance, alphaS, qp) {
		q.Direction = vector.Scale(alphaS, q.Direction)
		q.TrialIterate = trial
		reportRow(rep, q, qp)

		return StatusSuccess, true
	}

	if !trial.HasGradient() {
		return StatusUnset, false
	}
	b, err := downshift(q.CurrentIterate, trial, trial.Gradient(), trial.Value(), opts.DownshiftConstant)
	if err != nil {
		return StatusUnset, false
	}
	bdNew.append(trial.Gradient(), b)
	bd.append(trial.Gradient(), b)
	if opts.TryAggregation && !switchedToFull {
		bdAgg.append(trial.Gradient(), b)
	}

	return StatusUnset, false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
