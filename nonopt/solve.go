package nonopt

import (
	"github.com/nonopt-go/nonopt/direction"
	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/reporter"
	"github.com/nonopt-go/nonopt/strategies"
	"github.com/nonopt-go/nonopt/vector"
)

// solveEngine holds all outer-loop state. A dedicated engine struct (rather
// than closures captured over Solve's locals) keeps dependencies explicit
// and the outer loop's state predictable, mirroring the teacher's bbEngine.
type solveEngine struct {
	opts   Options
	q      *quantities.Quantities
	strat  *strategies.Strategies
	rep    *reporter.Reporter
	oracle iterate.Oracle

	outerIter int
}

// Solve runs the outer iteration loop: evaluate, compute a direction, line
// search along it, update the Hessian scale, prune the point set, and test
// for convergence, repeating until one of Status's terminal conditions is
// reached.
func Solve(opts Options, q *quantities.Quantities, strat *strategies.Strategies, rep *reporter.Reporter, oracle iterate.Oracle) Result {
	e := &solveEngine{opts: opts, q: q, strat: strat, rep: rep, oracle: oracle}

	return e.run()
}

func (e *solveEngine) run() Result {
	e.rep.IterationHeader()

	for {
		if e.q.CPUTimeExceeded() {
			return e.result(StatusCPUTimeLimit)
		}
		e.outerIter++
		if e.outerIter > e.opts.MaxOuterIterations {
			return e.result(StatusMaxOuterIterations)
		}

		status := direction.ComputeDirection(e.opts.Direction, e.q, e.strat, e.rep, e.oracle)
		if status != direction.StatusSuccess {
			e.q.TrialIterate = e.q.CurrentIterate

			if status == direction.StatusCPUTimeLimit {
				return e.resultWithDirectionStatus(StatusCPUTimeLimit, status)
			}

			return e.resultWithDirectionStatus(StatusDirectionFailure, status)
		}

		if e.q.Direction.NormInf() <= e.opts.ConvergenceNormInf {
			e.q.CurrentIterate = e.q.TrialIterate

			return e.result(StatusConverged)
		}

		next, ok := e.advance()
		if !ok {
			return e.result(StatusLineSearchFailure)
		}

		e.updateHessianScale(next)
		e.q.CurrentIterate = next
		if e.strat.PointSetUpdate != nil {
			_ = e.strat.PointSetUpdate.Prune(e.q)
		}
	}
}

// advance applies the strategies façade's line search along the
// direction-computation core's accepted direction, falling back to the
// core's own trial iterate (already sufficient-decrease tested) when no
// line search is configured, it fails, and Options.RequireLineSearch is
// false.
func (e *solveEngine) advance() (*iterate.Iterate, bool) {
	if e.strat.LineSearch == nil {
		return e.q.TrialIterate, true
	}

	alpha, ok := e.strat.LineSearch.Search(e.q, e.oracle)
	if !ok {
		return e.q.TrialIterate, !e.opts.RequireLineSearch
	}

	pos, err := vector.LinearCombination(1, e.q.CurrentIterate.Position(), alpha, e.q.Direction)
	if err != nil {
		return e.q.TrialIterate, !e.opts.RequireLineSearch
	}
	next := iterate.New(pos)
	if !next.EvaluateObjectiveAndGradient(e.oracle) {
		return e.q.TrialIterate, !e.opts.RequireLineSearch
	}

	return next, true
}

// updateHessianScale feeds the accepted step and gradient change to the
// Hessian-update strategy, if one is configured.
func (e *solveEngine) updateHessianScale(next *iterate.Iterate) {
	if e.strat.HessianUpdate == nil {
		return
	}
	if !e.q.CurrentIterate.HasGradient() || !next.HasGradient() {
		return
	}
	sPrev, err := vector.Sub(next.Position(), e.q.CurrentIterate.Position())
	if err != nil {
		return
	}
	yPrev, err := vector.Sub(next.Gradient(), e.q.CurrentIterate.Gradient())
	if err != nil {
		return
	}
	_ = e.strat.HessianUpdate.Update(e.q, sPrev, yPrev)
}

func (e *solveEngine) result(status Status) Result {
	return Result{
		Status:          status,
		FinalIterate:    e.q.CurrentIterate,
		OuterIterations: e.outerIter,
	}
}

func (e *solveEngine) resultWithDirectionStatus(status Status, dirStatus direction.Status) Result {
	r := e.result(status)
	r.LastDirectionStatus = dirStatus.String()

	return r
}
