package direction_test

import (
	"github.com/nonopt-go/nonopt/qpsolve"
	"github.com/nonopt-go/nonopt/reporter"
	"github.com/nonopt-go/nonopt/strategies"
	"github.com/nonopt-go/nonopt/vector"
)

// absOracle implements f(x) = |x| on R^1, a textbook nonsmooth test function
// with a single kink at the origin.
type absOracle struct{}

func (absOracle) Evaluate(x vector.Vector) (float64, bool) {
	v := x.At(0)
	if v < 0 {
		v = -v
	}

	return v, true
}

func (absOracle) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	if x.At(0) < 0 {
		return vector.New([]float64{-1}), true
	}

	return vector.New([]float64{1}), true
}

func (o absOracle) EvaluateBoth(x vector.Vector) (float64, vector.Vector, bool) {
	f, _ := o.Evaluate(x)
	g, _ := o.EvaluateGradient(x)

	return f, g, true
}

// quadraticOracle implements f(x) = x^2 on R^1: smooth, with a zero
// gradient and zero descent direction at the origin.
type quadraticOracle struct{}

func (quadraticOracle) Evaluate(x vector.Vector) (float64, bool) {
	v := x.At(0)

	return v * v, true
}

func (quadraticOracle) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	return vector.New([]float64{2 * x.At(0)}), true
}

func (o quadraticOracle) EvaluateBoth(x vector.Vector) (float64, vector.Vector, bool) {
	f, _ := o.Evaluate(x)
	g, _ := o.EvaluateGradient(x)

	return f, g, true
}

// maxOracle implements f(x) = max(x[0], x[1]) on R^2, the textbook
// two-piece polyhedral bundle-method test function.
type maxOracle struct{}

func (maxOracle) Evaluate(x vector.Vector) (float64, bool) {
	if x.At(0) > x.At(1) {
		return x.At(0), true
	}

	return x.At(1), true
}

func (maxOracle) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	if x.At(0) > x.At(1) {
		return vector.New([]float64{1, 0}), true
	}

	return vector.New([]float64{0, 1}), true
}

func (o maxOracle) EvaluateBoth(x vector.Vector) (float64, vector.Vector, bool) {
	f, _ := o.Evaluate(x)
	g, _ := o.EvaluateGradient(x)

	return f, g, true
}

// failingOracle refuses every evaluation, modeling an infeasible point.
type failingOracle struct{}

func (failingOracle) Evaluate(vector.Vector) (float64, bool)               { return 0, false }
func (failingOracle) EvaluateGradient(vector.Vector) (vector.Vector, bool) { return vector.Vector{}, false }
func (failingOracle) EvaluateBoth(vector.Vector) (float64, vector.Vector, bool) {
	return 0, vector.Vector{}, false
}

// stubFailSolver always reports StatusFailure, exercising QP-failure paths
// without depending on SimplexQP's numerics.
type stubFailSolver struct{}

func (stubFailSolver) SetScalar(float64)                          {}
func (stubFailSolver) SetInexactSolutionTolerance(float64)        {}
func (stubFailSolver) SetVectorList([]vector.Vector) error        { return nil }
func (stubFailSolver) SetVector([]float64) error                  { return nil }
func (stubFailSolver) AddData([]vector.Vector, []float64) error   { return nil }
func (stubFailSolver) SolveQP(qpsolve.Options) qpsolve.Status     { return qpsolve.StatusFailure }
func (stubFailSolver) SolveQPHot(qpsolve.Options) qpsolve.Status  { return qpsolve.StatusFailure }
func (stubFailSolver) SetPrimalSolutionToZero()                   {}
func (stubFailSolver) Status() qpsolve.Status                     { return qpsolve.StatusFailure }
func (stubFailSolver) PrimalSolution(vector.Vector)                {}
func (stubFailSolver) PrimalSolutionNorm2Squared() float64         { return 0 }
func (stubFailSolver) PrimalSolutionNormInf() float64               { return 0 }
func (stubFailSolver) DualObjectiveQuadraticValue() float64         { return 0 }
func (stubFailSolver) CombinationTranslatedNorm2Squared() float64   { return 0 }
func (stubFailSolver) DualSolutionOmegaLength() int                 { return 0 }
func (stubFailSolver) DualSolutionOmega([]float64)                  {}
func (stubFailSolver) NumberOfIterations() int                      { return 0 }
func (stubFailSolver) VectorListLength() int                        { return 0 }
func (stubFailSolver) KKTErrorDual() float64                        { return 0 }

// flakyQP wraps a real SimplexQP and forces its first failFirst cold solves
// to report StatusFailure, modeling a QP that fails transiently then
// recovers — spec.md §8 scenario E4.
type flakyQP struct {
	*qpsolve.SimplexQP
	failFirst int
	calls     int
	forcing   bool
}

func newFlakyQP(failFirst int) *flakyQP {
	return &flakyQP{SimplexQP: qpsolve.NewSimplexQP(), failFirst: failFirst}
}

func (f *flakyQP) SolveQP(opts qpsolve.Options) qpsolve.Status {
	real := f.SimplexQP.SolveQP(opts)
	f.calls++
	if f.calls <= f.failFirst {
		f.forcing = true

		return qpsolve.StatusFailure
	}
	f.forcing = false

	return real
}

func (f *flakyQP) Status() qpsolve.Status {
	if f.forcing {
		return qpsolve.StatusFailure
	}

	return f.SimplexQP.Status()
}

func newTestStrategies(qp qpsolve.Solver) *strategies.Strategies {
	return strategies.New(qp, strategies.NewRadiusTermination(), nil, nil, nil)
}

func newTestReporter() *reporter.Reporter {
	r := reporter.New(discardWriter{})
	r.Verbose = false

	return r
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
