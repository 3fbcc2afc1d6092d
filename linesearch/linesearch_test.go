package linesearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonopt-go/nonopt/linesearch"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/vector"
)

// quadraticOracle implements f(x) = x^2 for Armijo's backtracking tests.
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

func newQuantitiesAt(x0 float64, direction float64) *quantities.Quantities {
	q := quantities.New(1, vector.New([]float64{x0}), 1.0, 1e-3)
	q.Direction = vector.New([]float64{direction})

	return q
}

func TestArmijoAcceptsDescentDirection(t *testing.T) {
	a := linesearch.NewArmijo()
	q := newQuantitiesAt(3, -1) // descent direction at x=3 (f'=6)

	alpha, ok := a.Search(q, quadraticOracle{})

	require.True(t, ok)
	assert.Greater(t, alpha, 0.0)
	assert.LessOrEqual(t, alpha, 1.0)
}

func TestArmijoRejectsAscentDirection(t *testing.T) {
	a := linesearch.NewArmijo()
	a.MaxBacktracks = 5 // keep the failure path fast
	q := newQuantitiesAt(3, 1) // ascent direction at x=3

	_, ok := a.Search(q, quadraticOracle{})

	assert.False(t, ok)
}

func TestArmijoIterationNullStringIsFixedWidth(t *testing.T) {
	a := linesearch.NewArmijo()
	assert.Equal(t, len(a.IterationNullString()), 8)
}
