// Package vector provides a dense, fixed-length floating-point vector with
// the small set of linear-algebra operations the cutting-plane direction
// computation needs: scaled addition, inner product, 2-norm, ∞-norm, and
// construction of a vector as a linear combination of two others.
//
// Dot products, the 2-norm and scaled addition delegate to gonum/floats
// rather than hand-rolled loops (the ∞-norm and linear combinations are
// plain loops); at the small dimensions this solver targets the
// difference is style, not speed, but it keeps the codebase honest about
// using a real linear-algebra library instead of reinventing BLAS1.
package vector
