package strategies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/qpsolve"
	"github.com/nonopt-go/nonopt/strategies"
	"github.com/nonopt-go/nonopt/vector"
)

type stubSolver struct {
	status qpsolve.Status
	gap    float64
}

func (s stubSolver) SetScalar(float64)                               {}
func (s stubSolver) SetInexactSolutionTolerance(float64)             {}
func (s stubSolver) SetVectorList([]vector.Vector) error             { return nil }
func (s stubSolver) SetVector([]float64) error                       { return nil }
func (s stubSolver) AddData([]vector.Vector, []float64) error        { return nil }
func (s stubSolver) SolveQP(qpsolve.Options) qpsolve.Status           { return s.status }
func (s stubSolver) SolveQPHot(qpsolve.Options) qpsolve.Status        { return s.status }
func (s stubSolver) SetPrimalSolutionToZero()                        {}
func (s stubSolver) Status() qpsolve.Status                          { return s.status }
func (s stubSolver) PrimalSolution(vector.Vector)                    {}
func (s stubSolver) PrimalSolutionNorm2Squared() float64             { return 0 }
func (s stubSolver) PrimalSolutionNormInf() float64                  { return 0 }
func (s stubSolver) DualObjectiveQuadraticValue() float64            { return 0 }
func (s stubSolver) CombinationTranslatedNorm2Squared() float64      { return 0 }
func (s stubSolver) DualSolutionOmegaLength() int                    { return 0 }
func (s stubSolver) DualSolutionOmega([]float64)                     {}
func (s stubSolver) NumberOfIterations() int                         { return 0 }
func (s stubSolver) VectorListLength() int                           { return 0 }
func (s stubSolver) KKTErrorDual() float64                           { return s.gap }

func TestRadiusTerminationGrowsAfterPatienceSuccesses(t *testing.T) {
	term := strategies.NewRadiusTermination()
	q := quantities.New(1, vector.New([]float64{0}), 1, 1)
	solver := stubSolver{status: qpsolve.StatusSuccess, gap: 0.001}

	var triggered bool
	for i := 0; i < term.Patience; i++ {
		triggered = term.CheckConditionsDirectionComputation(q, solver)
	}
	assert.True(t, triggered)
	assert.Greater(t, q.TrustRegionRadius, 1.0)
}

func TestRadiusTerminationShrinksAfterPatienceStalls(t *testing.T) {
	term := strategies.NewRadiusTermination()
	q := quantities.New(1, vector.New([]float64{0}), 1, 1)
	solver := stubSolver{status: qpsolve.StatusFailure}

	var triggered bool
	for i := 0; i < term.Patience; i++ {
		triggered = term.CheckConditionsDirectionComputation(q, solver)
	}
	assert.True(t, triggered)
	assert.Less(t, q.StationarityRadius, 1.0)
}

func TestDefaultFacadeAssembled(t *testing.T) {
	s := strategies.Default(20)
	assert.NotNil(t, s.QPSolver)
	assert.NotNil(t, s.Termination)
	assert.NotNil(t, s.LineSearch)
	assert.NotNil(t, s.HessianUpdate)
	assert.NotNil(t, s.PointSetUpdate)
}
