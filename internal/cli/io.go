package cli

import (
	"fmt"
	"io"
)

// IO handles command output and keeps warnings visible next to it.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	warnings []string
	flushed  int
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records a non-fatal problem with the invocation.
//
// Parameters:
//   - issue: what went wrong
//   - action: what was done about it
//
// Warnings go to stderr just before the next stdout line, or at Finish if
// nothing else is printed. They never change the exit code.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Println writes to stdout, flushing pending warnings to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarnings()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout, flushing pending warnings to
// stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarnings()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Finish prints any warnings not yet shown.
func (o *IO) Finish() {
	o.flushWarnings()
}

func (o *IO) flushWarnings() {
	for _, w := range o.warnings[o.flushed:] {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}

	o.flushed = len(o.warnings)
}
