package iterate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/vector"
)

// absOracle implements iterate.Oracle for f(x) = |x_1| + |x_2| + ... (n=1 in tests).
type absOracle struct{ evalFails bool }

func (o absOracle) Evaluate(x vector.Vector) (float64, bool) {
	if o.evalFails {
		return 0, false
	}
	var s float64
	for i := 0; i < x.Len(); i++ {
		v := x.At(i)
		if v < 0 {
			v = -v
		}
		s += v
	}

	return s, true
}

func (o absOracle) EvaluateGradient(x vector.Vector) (vector.Vector, bool) {
	if o.evalFails {
		return vector.Vector{}, false
	}
	g := vector.NewZero(x.Len())
	for i := 0; i < x.Len(); i++ {
		if x.At(i) >= 0 {
			g.Set(i, 1)
		} else {
			g.Set(i, -1)
		}
	}

	return g, true
}

func (o absOracle) EvaluateBoth(x vector.Vector) (float64, vector.Vector, bool) {
	f, ok := o.Evaluate(x)
	if !ok {
		return 0, vector.Vector{}, false
	}
	g, _ := o.EvaluateGradient(x)

	return f, g, true
}

func TestEvaluateObjectiveAndGradient(t *testing.T) {
	it := iterate.New(vector.New([]float64{1}))
	ok := it.EvaluateObjectiveAndGradient(absOracle{})
	require.True(t, ok)
	assert.True(t, it.HasValue())
	assert.True(t, it.HasGradient())
	assert.Equal(t, 1.0, it.Value())
	assert.Equal(t, 1.0, it.Gradient().At(0))
}

func TestEvaluateFailure(t *testing.T) {
	it := iterate.New(vector.New([]float64{1}))
	ok := it.EvaluateObjective(absOracle{evalFails: true})
	assert.False(t, ok)
	assert.False(t, it.HasValue())
}

func TestNilOracle(t *testing.T) {
	it := iterate.New(vector.New([]float64{1}))
	assert.False(t, it.EvaluateObjective(nil))
	assert.False(t, it.EvaluateGradient(nil))
	assert.False(t, it.EvaluateObjectiveAndGradient(nil))
}

func TestMakeNewLinearCombination(t *testing.T) {
	it := iterate.New(vector.New([]float64{1, 1}))
	d := vector.New([]float64{2, -1})
	trial, err := it.MakeNewLinearCombination(1, 0.5, d)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 0.5}, trial.Position().Data(), 1e-12)
}
