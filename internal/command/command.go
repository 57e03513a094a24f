package command

import (
	"context"
	"os"

	"wpb/internal/execution"
)

// CommandLiner computes the external command line of a command. It must be a
// pure function of the input and the command configuration.
type CommandLiner interface {
	CommandLine(in Input, out Output) ([]string, error)
}

// Command is a CLI command backed by an external process.
// out may be nil in every method.
type Command interface {
	CommandLiner

	// Name returns the identifier the command is registered under
	Name() string

	// Process returns the command process, ready to run
	Process(in Input, out Output) (*execution.Process, error)

	// Output runs the command process to completion and returns its standard output.
	// It fails if the process does not exit with status 0.
	Output(ctx context.Context, in Input, out Output) (string, error)
}

// Base provides the default Process and Output behaviour on top of a CommandLiner.
// Commands embed *Base and implement CommandLine; they may override Output.
type Base struct {
	support Support
	liner   CommandLiner
	dir     string
}

// NewBase creates a Base for liner. dir is the working directory the process
// runs in, the current one when empty.
func NewBase(support Support, liner CommandLiner, dir string) *Base {
	return &Base{
		support: support,
		liner:   liner,
		dir:     dir,
	}
}

// Support returns the command support facade the command was built with
func (b *Base) Support() Support {
	return b.support
}

// Process builds the command process in the working directory, forwarding PATH
func (b *Base) Process(in Input, out Output) (*execution.Process, error) {
	args, err := b.liner.CommandLine(in, out)
	if err != nil {
		return nil, err
	}

	return b.support.ProcessForCommand(args, b.workingDir(), ForwardedEnv(), nil, 0), nil
}

// Output runs the command process and returns what it printed on stdout
func (b *Base) Output(ctx context.Context, in Input, out Output) (string, error) {
	p, err := b.process(in, out)
	if err != nil {
		return "", err
	}

	if err := p.MustRun(ctx, nil); err != nil {
		return "", err
	}

	return p.Output(), nil
}

// process goes through the embedding command so an overridden Process is honoured
func (b *Base) process(in Input, out Output) (*execution.Process, error) {
	if processor, ok := b.liner.(interface {
		Process(Input, Output) (*execution.Process, error)
	}); ok {
		return processor.Process(in, out)
	}
	return b.Process(in, out)
}

func (b *Base) workingDir() string {
	if b.dir != "" {
		return b.dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// ForwardedEnv returns the part of the current environment handed to command processes
func ForwardedEnv() map[string]string {
	env := map[string]string{}
	if path, ok := os.LookupEnv("PATH"); ok {
		env["PATH"] = path
	}
	return env
}
