package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonopt-go/nonopt/vector"
)

func TestDotAndNorms(t *testing.T) {
	v := vector.New([]float64{3, -4})
	assert.Equal(t, 25.0, v.Norm2Squared())
	assert.Equal(t, 5.0, v.Norm2())
	assert.Equal(t, 4.0, v.NormInf())
}

func TestAddScaled(t *testing.T) {
	v := vector.New([]float64{1, 1})
	w := vector.New([]float64{2, 3})
	v.AddScaled(2, w)
	assert.InDeltaSlice(t, []float64{5, 7}, v.Data(), 1e-12)
}

func TestLinearCombination(t *testing.T) {
	x := vector.New([]float64{1, 0})
	y := vector.New([]float64{0, 1})
	c, err := vector.LinearCombination(2, x, 3, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, c.Data(), 1e-12)

	_, err = vector.LinearCombination(1, x, 1, vector.New([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func TestNormInfEmpty(t *testing.T) {
	v := vector.NewZero(0)
	assert.Equal(t, 0.0, v.NormInf())
}

func TestCloneIndependence(t *testing.T) {
	v := vector.New([]float64{1, 2})
	c := v.Clone()
	c.Set(0, math.Pi)
	assert.Equal(t, 1.0, v.At(0))
	assert.Equal(t, math.Pi, c.At(0))
}
