package execution

import (
	"io"
	"maps"
	"time"
)

// ProcessBuilder builds processes that are ready to run but not started
type ProcessBuilder interface {
	ForCommand(args []string, dir string, env map[string]string, input io.Reader, timeout time.Duration) *Process
}

// Builder is the default ProcessBuilder
type Builder struct{}

// NewBuilder creates a new Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// ForCommand returns a process for the given command line.
// dir empty means the current working directory, a nil env means the
// environment of the current process, a nil input means no stdin and a zero
// timeout disables the timeout. Nothing is validated here: a command that
// cannot be started fails when it is run.
func (b *Builder) ForCommand(args []string, dir string, env map[string]string, input io.Reader, timeout time.Duration) *Process {
	return &Process{
		args:    append([]string(nil), args...),
		dir:     dir,
		env:     maps.Clone(env),
		input:   input,
		timeout: timeout,
	}
}
