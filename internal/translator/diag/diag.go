package diag

import (
	"fmt"
	"io"
)

// Reporter records syntax and semantic diagnostics for one translation run.
// Every diagnostic is written immediately and raises a failure flag that is
// never cleared for the remainder of the run. One Reporter is created per
// input file; it is never shared across runs.
type Reporter struct {
	out    io.Writer
	failed bool
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Errorf emits "Error: <message> on line <N>" and sets the failure flag.
func (r *Reporter) Errorf(line int, format string, args ...any) {
	r.failed = true
	fmt.Fprintf(r.out, "Error: %s on line %d\n", fmt.Sprintf(format, args...), line)
}

// InvalidSymbol reports a reference to an identifier with no prior assignment.
func (r *Reporter) InvalidSymbol(name string, line int) {
	r.Errorf(line, "Invalid Symbol (%s)", name)
}

// Failed reports whether any diagnostic has fired. Emission is gated on this.
func (r *Reporter) Failed() bool {
	return r.failed
}
