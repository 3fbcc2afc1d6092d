package quantities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/vector"
)

func TestNewInitializesTrialToCurrrent(t *testing.T) {
	q := quantities.New(2, vector.New([]float64{1, 1}), 1, 1)
	assert.Same(t, q.CurrentIterate, q.TrialIterate)
	assert.Equal(t, 0.0, q.Direction.At(0))
}

func TestCPUTimeExceeded(t *testing.T) {
	q := quantities.New(1, vector.New([]float64{0}), 1, 1)
	assert.False(t, q.CPUTimeExceeded(), "zero limit means no limit")

	q.CPUTimeLimit = time.Nanosecond
	time.Sleep(time.Millisecond)
	assert.True(t, q.CPUTimeExceeded())
}

func TestCountersReset(t *testing.T) {
	var c quantities.Counters
	c.InnerIteration = 5
	c.QPIteration = 3
	c.TotalInner = 10
	c.Reset()
	assert.Equal(t, 0, c.InnerIteration)
	assert.Equal(t, 0, c.QPIteration)
	assert.Equal(t, 10, c.TotalInner, "totals survive Reset")
}

func TestPointSetAppendOnlySnapshot(t *testing.T) {
	ps := quantities.NewPointSet()
	ps.Append(iterate.New(vector.New([]float64{0})))
	snap := ps.Snapshot()
	ps.Append(iterate.New(vector.New([]float64{1})))
	assert.Len(t, snap, 1, "snapshot is unaffected by later appends")
	assert.Equal(t, 2, ps.Len())
}

func TestPointSetPrune(t *testing.T) {
	ps := quantities.NewPointSet()
	for i := 0; i < 5; i++ {
		ps.Append(iterate.New(vector.New([]float64{float64(i)})))
	}
	ps.Prune(2)
	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, 3.0, ps.At(0).Position().At(0))
}
