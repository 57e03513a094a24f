package command

import (
	"io"

	"wpb/internal/domain"
)

// Input gives commands access to their positional arguments and options
type Input interface {
	Argument(name string) (string, bool)
	Option(name string) (string, bool)
}

// Output is where a command writes, along with the verbosity the user asked for
type Output interface {
	io.Writer
	Verbosity() domain.Verbosity
}

// MapInput is an Input backed by plain maps. A nil MapInput has no arguments and no options.
type MapInput struct {
	Arguments map[string]string
	Options   map[string]string
}

// Argument returns the named argument if it was given
func (in MapInput) Argument(name string) (string, bool) {
	value, ok := in.Arguments[name]
	return value, ok
}

// Option returns the named option if it was given
func (in MapInput) Option(name string) (string, bool) {
	value, ok := in.Options[name]
	return value, ok
}

// ConsoleOutput is an Output writing to an io.Writer
type ConsoleOutput struct {
	io.Writer
	verbosity domain.Verbosity
}

// NewOutput creates an Output writing to w at the given verbosity
func NewOutput(w io.Writer, verbosity domain.Verbosity) *ConsoleOutput {
	return &ConsoleOutput{Writer: w, verbosity: verbosity}
}

// Verbosity returns the verbosity of the output
func (o *ConsoleOutput) Verbosity() domain.Verbosity {
	return o.verbosity
}

// ArgumentOr returns the named argument, or def when it is missing or empty
func ArgumentOr(in Input, name, def string) string {
	if in == nil {
		return def
	}
	if value, ok := in.Argument(name); ok && value != "" {
		return value
	}
	return def
}

// OptionOr returns the named option, or def when it is missing or empty
func OptionOr(in Input, name, def string) string {
	if in == nil {
		return def
	}
	if value, ok := in.Option(name); ok && value != "" {
		return value
	}
	return def
}
