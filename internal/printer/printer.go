// Package printer writes CLI output. Demo text goes to Out unchanged; headings
// and errors are coloured unless colour is disabled.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Printer struct {
	Out io.Writer
	Err io.Writer

	heading *color.Color
	red     *color.Color
	yellow  *color.Color
}

// New returns a printer. With noColor set no escape codes are written,
// otherwise colour is forced even when the writers are not terminals.
func New(out, errOut io.Writer, noColor bool) *Printer {
	p := &Printer{
		Out:     out,
		Err:     errOut,
		heading: color.New(color.FgCyan, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		yellow:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.heading, p.red, p.yellow} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

// Line writes s and a newline to Out.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.Out, s)
}

// Heading writes a section heading to Out.
func (p *Printer) Heading(format string, a ...any) {
	p.heading.Fprintf(p.Out, format+"\n", a...)
}

// Warning writes a yellow warning to Err.
func (p *Printer) Warning(format string, a ...any) {
	p.yellow.Fprintf(p.Err, "warning: "+format+"\n", a...)
}

// Error writes err to Err in red, followed by an optional hint, and returns
// err unchanged so commands can `return p.Error(err, "...")`.
func (p *Printer) Error(err error, hint string) error {
	p.red.Fprintf(p.Err, "Error: %v\n", err)
	if hint != "" {
		fmt.Fprintf(p.Err, "\n%s\n", hint)
	}
	return err
}
