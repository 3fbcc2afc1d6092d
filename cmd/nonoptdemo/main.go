// Command nonoptdemo runs the nonopt outer loop against a small built-in
// catalog of test objectives and prints the reporter's inner-iteration
// trace alongside the final result — a minimal, real driver so the whole
// system (direction computation, strategies façade, outer loop) is
// runnable end to end, per spec.md §6/SPEC_FULL.md §6.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nonopt-go/nonopt/nonopt"
	"github.com/nonopt-go/nonopt/quantities"
	"github.com/nonopt-go/nonopt/reporter"
	"github.com/nonopt-go/nonopt/strategies"
	"github.com/nonopt-go/nonopt/vector"
)

func main() {
	var (
		name        = flag.String("objective", "abs", "demo objective: "+listObjectives())
		delta       = flag.Float64("delta", 1.0, "initial trust-region radius")
		rho         = flag.Float64("rho", 1e-3, "initial stationarity radius")
		maxOuter    = flag.Int("max-outer", 200, "outer iteration cap")
		maxPoints   = flag.Int("max-points", 200, "point-set sliding-window cap")
		cpuTimeSecs = flag.Float64("cpu-time-limit", 0, "CPU-time budget in seconds (0 = unlimited)")
		verbose     = flag.Bool("verbose", true, "print the reporter's inner-iteration trace")
	)
	flag.Parse()

	obj, ok := catalog[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "nonoptdemo: unknown objective %q; choices are %s\n", *name, listObjectives())
		os.Exit(2)
	}

	x0 := vector.New(append([]float64(nil), obj.start...))
	q := quantities.New(x0.Len(), x0, *delta, *rho)
	if *cpuTimeSecs > 0 {
		q.CPUTimeLimit = time.Duration(*cpuTimeSecs * float64(time.Second))
	}

	strat := strategies.Default(*maxPoints)
	rep := reporter.New(os.Stdout)
	rep.Verbose = *verbose

	opts := nonopt.DefaultOptions()
	opts.MaxOuterIterations = *maxOuter

	oracle := oracleAdapter{obj.build()}
	res := nonopt.Solve(opts, q, strat, rep, oracle)

	fmt.Printf("objective:        %s\n", obj.name)
	fmt.Printf("status:           %s\n", res.Status)
	fmt.Printf("outer iterations: %d\n", res.OuterIterations)
	if res.LastDirectionStatus != "" {
		fmt.Printf("direction status: %s\n", res.LastDirectionStatus)
	}
	if res.FinalIterate != nil && res.FinalIterate.HasValue() {
		fmt.Printf("f(x*):            %.6e\n", res.FinalIterate.Value())
		fmt.Printf("x*:               %v\n", res.FinalIterate.Position().Data())
	}
}
