// Package strategies defines the Strategies façade and the Termination
// contract, matching spec.md §4.2/§4.4.
//
// The façade is a container of polymorphic capabilities: any
// implementation satisfying each narrow contract may be substituted
// (encoded here as plain Go interfaces, not an inheritance hierarchy —
// spec.md §9 "Dynamic polymorphism over strategies"). The
// direction-computation core (package direction) only ever calls
// Strategies.QPSolver and Strategies.Termination; the other three fields
// are driven only by the ambient outer loop (package nonopt). Their
// IterationNullString placeholders are not printed by the core or by
// package reporter.
package strategies
