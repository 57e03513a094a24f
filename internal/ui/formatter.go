package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"wpb/internal/execution"
)

// ErrorPrefix marks child process stderr in the console
const ErrorPrefix = "ERR > "

// Printer writes command output and status lines
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// Chunk prints one chunk of child output: stdout verbatim, stderr prefixed in red.
// It can be used as an execution.OutputFunc.
func (p *Printer) Chunk(kind execution.StreamKind, chunk []byte) {
	if kind == execution.Stderr {
		fmt.Fprint(p.err, color.RedString(ErrorPrefix)+string(chunk))
		return
	}
	_, _ = p.out.Write(chunk)
}

// Line prints a plain line to stdout
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Success prints a green status line
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, color.GreenString(format, args...))
}

// Warning prints a yellow status line to stderr
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.err, color.YellowString(format, args...))
}

// Error prints a red status line to stderr
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.err, color.RedString(format, args...))
}
