package hessian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nonopt-go/nonopt/hessian"
	"github.com/nonopt-go/nonopt/vector"
)

func TestDiagonalBFGSUpdatesScaleOnPositiveCurvature(t *testing.T) {
	d := hessian.NewDiagonalBFGS()
	s := vector.New([]float64{1})
	y := vector.New([]float64{2}) // sy=2>0, yy=4 -> scale=0.5

	require := assert.New(t)
	err := d.Update(nil, s, y)
	require.NoError(err)
	require.InDelta(0.5, d.Scale, 1e-12)
}

func TestDiagonalBFGSKeepsScaleOnNonPositiveCurvature(t *testing.T) {
	d := hessian.NewDiagonalBFGS()
	d.Scale = 3.0
	s := vector.New([]float64{1})
	y := vector.New([]float64{-2}) // sy=-2<=0

	err := d.Update(nil, s, y)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, d.Scale)
}

func TestDiagonalBFGSKeepsScaleOnDegenerateY(t *testing.T) {
	d := hessian.NewDiagonalBFGS()
	d.Scale = 2.0
	s := vector.New([]float64{1})
	y := vector.New([]float64{0})

	err := d.Update(nil, s, y)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, d.Scale)
}

func TestDiagonalBFGSIterationNullStringIsFixedWidth(t *testing.T) {
	d := hessian.NewDiagonalBFGS()
	assert.Len(t, d.IterationNullString(), 8)
}
