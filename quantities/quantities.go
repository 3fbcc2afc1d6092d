package quantities

import (
	"time"

	"github.com/nonopt-go/nonopt/iterate"
	"github.com/nonopt-go/nonopt/vector"
)

// Counters accumulates the running totals the direction-computation core
// and outer loop report on. InnerIteration/QPIteration are reset at the
// start of each direction computation (spec.md §4.1 step 1); TotalInner/
// TotalQP accumulate across the whole solve.
type Counters struct {
	InnerIteration int
	QPIteration    int
	TotalInner     int
	TotalQP        int

	// DirectionComputationTime accumulates wall-clock time spent inside
	// computeDirection across the whole solve.
	DirectionComputationTime time.Duration
}

// Reset zeroes the per-call counters at the start of a direction computation.
func (c *Counters) Reset() {
	c.InnerIteration = 0
	c.QPIteration = 0
}

// Quantities is the shared mutable state threaded through one solve.
type Quantities struct {
	CurrentIterate *iterate.Iterate
	TrialIterate   *iterate.Iterate
	Direction      vector.Vector

	PointSet *PointSet

	NumberOfVariables int

	TrustRegionRadius float64
	StationarityRadius float64

	Counters Counters

	StartTime     time.Time
	CPUTimeLimit  time.Duration

	// EvaluateFunctionWithGradient indicates the user's oracle returns value
	// and gradient jointly (iterate.Oracle.EvaluateBoth) rather than via two
	// separate calls.
	EvaluateFunctionWithGradient bool
}

// New returns Quantities initialized for a problem of dimension n, starting
// from x0, with the given initial trust-region radius Δ and stationarity
// radius ρ.
func New(n int, x0 vector.Vector, trustRegionRadius, stationarityRadius float64) *Quantities {
	q := &Quantities{
		CurrentIterate:      iterate.New(x0),
		NumberOfVariables:   n,
		TrustRegionRadius:   trustRegionRadius,
		StationarityRadius:  stationarityRadius,
		PointSet:            NewPointSet(),
		Direction:           vector.NewZero(n),
		StartTime:           time.Now(),
	}
	q.TrialIterate = q.CurrentIterate

	return q
}

// ElapsedCPUTime returns the wall-clock time elapsed since StartTime.
// The spec describes a CPU-time budget; wall clock is used as the portable
// stand-in, exactly as the teacher's tsp.Options.TimeLimit/time.Now() pair
// does for its own soft deadline checks.
func (q *Quantities) ElapsedCPUTime() time.Duration {
	return time.Since(q.StartTime)
}

// CPUTimeExceeded reports whether the CPU budget has been exhausted. A
// zero CPUTimeLimit means "no limit", matching tsp.Options.TimeLimit's
// "Zero means no limit" convention.
func (q *Quantities) CPUTimeExceeded() bool {
	if q.CPUTimeLimit <= 0 {
		return false
	}

	return q.ElapsedCPUTime() >= q.CPUTimeLimit
}

// ResetDirection zeroes the working direction vector in place.
func (q *Quantities) ResetDirection() {
	for i := 0; i < q.Direction.Len(); i++ {
		q.Direction.Set(i, 0)
	}
}
