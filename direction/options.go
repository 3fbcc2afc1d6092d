package direction

// Options configures ComputeDirection's behavior, per spec.md §4.1.
// Zero value is not meaningful; use DefaultOptions and override fields as
// needed, matching the teacher's tsp.Options/DefaultOptions convention.
type Options struct {
	// AddFarPoints: if true, accept trial iterates into the bundle even
	// when ‖d‖∞ > ρ. Default: false.
	AddFarPoints bool

	// FailOnIterationLimit: if true, exceeding the inner-iteration limit
	// yields StatusIterationLimit; otherwise StatusSuccess with the best
	// step found. Default: false.
	FailOnIterationLimit bool

	// FailOnQPFailure: if true, any QP non-success yields StatusQPFailure;
	// otherwise the recovery path (re-seed to the current-iterate cut
	// only) is taken. Default: false.
	FailOnQPFailure bool

	// TryAggregation: if true, operate on an aggregated bundle until
	// AggregationSizeThreshold is hit. Default: false.
	TryAggregation bool

	// TryGradientStep: try the pure gradient step as a fast path before
	// the full cutting-plane loop. Default: true.
	TryGradientStep bool

	// TryShortenedStep: try a shortened version of the current QP step
	// each inner iteration. Default: true.
	TryShortenedStep bool

	// AggregationSizeThreshold: switch from aggregated to full bundle when
	// |pointSet| ≥ threshold * n. Default: 10.0.
	AggregationSizeThreshold float64

	// DownshiftConstant κ: curvature penalty in the downshifting formula.
	// Default: 1e-2.
	DownshiftConstant float64

	// GradientStepsize η_g: stepsize for the gradient fast-path probe.
	// Default: 1e-4.
	GradientStepsize float64

	// ShortenedStepsize η_s: fraction used for the shortened probe.
	// Default: 1e-2.
	ShortenedStepsize float64

	// StepAcceptanceTolerance τ: sufficient-decrease coefficient.
	// Default: 1e-8.
	StepAcceptanceTolerance float64

	// InnerIterationLimit caps inner iterations within one direction
	// computation. Default: 20.
	InnerIterationLimit int
}

// DefaultOptions returns Options populated with spec.md §4.1's defaults.
func DefaultOptions() Options {
	return Options{
		AddFarPoints:             false,
		FailOnIterationLimit:     false,
		FailOnQPFailure:          false,
		TryAggregation:           false,
		TryGradientStep:          true,
		TryShortenedStep:         true,
		AggregationSizeThreshold: 10.0,
		DownshiftConstant:        1e-2,
		GradientStepsize:         1e-4,
		ShortenedStepsize:        1e-2,
		StepAcceptanceTolerance:  1e-8,
		InnerIterationLimit:      20,
	}
}
