package nonopt

import "github.com/nonopt-go/nonopt/iterate"

// Result summarizes one Solve run.
type Result struct {
	Status Status

	// FinalIterate is the current iterate when Solve stopped. It is not
	// necessarily the lowest-valued point visited, and it is unevaluated
	// if no direction computation ran.
	FinalIterate *iterate.Iterate

	// OuterIterations is the outer-iteration counter when Solve stopped.
	// It is incremented before the MaxOuterIterations check, so a run
	// stopped by that cap reports MaxOuterIterations+1.
	OuterIterations int

	// LastDirectionStatus is the direction.Status from the final
	// direction.ComputeDirection call, kept for diagnostics.
	LastDirectionStatus string
}
