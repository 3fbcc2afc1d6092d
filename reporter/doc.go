// Package reporter implements the buffered, fixed-width column output
// contract of spec.md §6: one header line, one summary line per inner
// iteration and one per outer iteration, and a null-value template for
// rows where a strategy is inactive.
//
// Output is buffered and flushed once per inner iteration, matching the
// teacher's allocation-conscious, deterministic-formatting discipline
// (tsp package doc comments: "no hidden allocations; preallocate where
// needed") and the Verbose/History toggles of the retrieved gosl
// ConjGrad reference (other_examples) — Reporter.Verbose gates whether
// anything is written at all.
package reporter
