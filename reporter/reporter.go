package reporter

import (
	"bufio"
	"fmt"
	"io"
)

// header is the fixed-width column layout mandated by spec.md §6.
const header = "In. Its.  QP Pts.  QP Its. QP   QP KKT    |Step|   |Step|_H"

// NullLine is printed in place of a summary line for a strategy that did
// not run on a given row, keeping columns aligned.
const NullLine = "-------- -------- -------- -- --------- --------- ---------"

// Reporter is a buffered, fixed-width formatted-output sink. Output is
// flushed once per inner iteration (Flush), never per Printf-style call,
// so a long-running solve does not thrash the underlying writer.
type Reporter struct {
	w       *bufio.Writer
	Verbose bool
}

// New wraps w in a buffered Reporter. Verbose defaults to true; set it to
// false to silence all output without changing call sites (mirrors the
// gosl ConjGrad Verbose toggle).
func New(w io.Writer) *Reporter {
	return &Reporter{w: bufio.NewWriter(w), Verbose: true}
}

// IterationHeader writes the fixed-width column header line.
func (r *Reporter) IterationHeader() {
	if !r.Verbose {
		return
	}
	fmt.Fprintln(r.w, header)
}

// Summary writes one inner- or outer-iteration summary line with fields
// {innerCount, bundleSize, qpIters, qpStatusCode, kktDualError, stepInfNorm,
// qDual}, per spec.md §6.
func (r *Reporter) Summary(innerCount, bundleSize, qpIters int, qpStatusCode string, kktDualError, stepInfNorm, qDual float64) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.w, "%8d %8d %8d %2s %9.3e %9.3e %9.3e\n",
		innerCount, bundleSize, qpIters, qpStatusCode, kktDualError, stepInfNorm, qDual)
}

// Null writes the fixed-width placeholder line for a row where no strategy
// produced data (e.g. the first inner iteration, before any QP solve).
func (r *Reporter) Null() {
	if !r.Verbose {
		return
	}
	fmt.Fprintln(r.w, NullLine)
}

// Flush flushes buffered output. Called once per inner iteration by the
// direction-computation core (spec.md §5), and once more at return.
func (r *Reporter) Flush() error {
	return r.w.Flush()
}
