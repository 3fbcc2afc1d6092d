package pointset

import "github.com/nonopt-go/nonopt/quantities"

// Strategy is the point-set-maintenance capability the Strategies façade
// exposes.
type Strategy interface {
	// Prune bounds quantities.Quantities.PointSet's memory footprint
	// between outer iterations.
	Prune(q *quantities.Quantities) error

	// IterationNullString returns a fixed-width placeholder for this
	// strategy's column(s) on a row where it did not run. Package reporter
	// does not print it; Reporter.Null writes its own fixed NullLine.
	IterationNullString() string
}

// SlidingWindow keeps at most MaxPoints of the most recently visited
// points, dropping the oldest once the cap is exceeded.
type SlidingWindow struct {
	MaxPoints int
}

// NewSlidingWindow returns a SlidingWindow capped at maxPoints.
func NewSlidingWindow(maxPoints int) *SlidingWindow {
	return &SlidingWindow{MaxPoints: maxPoints}
}

// Prune implements Strategy.
func (w *SlidingWindow) Prune(q *quantities.Quantities) error {
	q.PointSet.Prune(w.MaxPoints)

	return nil
}

// IterationNullString implements Strategy.
func (w *SlidingWindow) IterationNullString() string { return "--------" }
