package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wpb/internal/domain"
	"wpb/internal/execution"
)

type countingDetector struct {
	family domain.Family
	calls  int
}

func (d *countingDetector) Family() domain.Family {
	d.calls++
	return d.family
}

type recordingBuilder struct {
	args    []string
	dir     string
	env     map[string]string
	timeout time.Duration
}

func (b *recordingBuilder) ForCommand(args []string, dir string, env map[string]string, input io.Reader, timeout time.Duration) *execution.Process {
	b.args, b.dir, b.env, b.timeout = args, dir, env, timeout
	return execution.NewBuilder().ForCommand(args, dir, env, input, timeout)
}

// printCommand prints its "message" argument
type printCommand struct {
	*Base
	exitCode string
}

func newPrintCommand(exitCode string) Factory {
	return func(support Support) Command {
		c := &printCommand{exitCode: exitCode}
		c.Base = NewBase(support, c, "")
		return c
	}
}

func (c *printCommand) Name() string { return "test:print" }

func (c *printCommand) CommandLine(in Input, out Output) ([]string, error) {
	message := ArgumentOr(in, "message", "hello")
	return []string{"/bin/sh", "-c", `printf '%s' "$0"; exit ` + c.exitCode, message}, nil
}

type brokenCommand struct{ *Base }

var errNoLine = errors.New("no command line")

func (c *brokenCommand) Name() string { return "test:broken" }

func (c *brokenCommand) CommandLine(Input, Output) ([]string, error) { return nil, errNoLine }

func newSupport(t *testing.T, opts ...Option) *CommandSupport {
	t.Helper()
	registry := NewRegistry()
	registry.Register("test:print", newPrintCommand("0"))
	registry.Register("test:fail", newPrintCommand("4"))
	registry.Register("test:broken", func(s Support) Command {
		c := &brokenCommand{}
		c.Base = NewBase(s, c, "")
		return c
	})
	return NewCommandSupport(append([]Option{WithRegistry(registry)}, opts...)...)
}

func TestCommandSupport_OperatingSystemFamily(t *testing.T) {
	t.Run("delegates to the injected detector on every call", func(t *testing.T) {
		detector := &countingDetector{family: domain.FamilyBSD}
		support := newSupport(t, WithDetector(detector))

		assert.Equal(t, domain.FamilyBSD, support.OperatingSystemFamily())
		assert.Equal(t, domain.FamilyBSD, support.OperatingSystemFamily())
		assert.Equal(t, 2, detector.calls)
	})

	t.Run("builds a detector when none is given", func(t *testing.T) {
		support := NewCommandSupport()
		assert.NotEmpty(t, support.OperatingSystemFamily())
	})
}

func TestCommandSupport_ProcessForCommand(t *testing.T) {
	builder := &recordingBuilder{}
	support := newSupport(t, WithProcessBuilder(builder))

	p := support.ProcessForCommand([]string{"ip", "-4"}, "/srv", map[string]string{"PATH": "/bin"}, nil, time.Minute)

	assert.Equal(t, []string{"ip", "-4"}, builder.args)
	assert.Equal(t, "/srv", builder.dir)
	assert.Equal(t, map[string]string{"PATH": "/bin"}, builder.env)
	assert.Equal(t, time.Minute, builder.timeout)
	assert.Nil(t, p.ExitCode(), "the process must not be started")
}

func TestCommandSupport_CommandProcess(t *testing.T) {
	builder := &recordingBuilder{}
	support := newSupport(t, WithProcessBuilder(builder))
	in := MapInput{Arguments: map[string]string{"message": "world"}}

	p, err := support.CommandProcess("test:print", in, nil)

	require.NoError(t, err)
	assert.Equal(t, "world", p.Args()[3])
	assert.Nil(t, p.ExitCode())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, builder.dir)
	assert.Equal(t, os.Getenv("PATH"), builder.env["PATH"])
}

func TestCommandSupport_CommandOutput(t *testing.T) {
	support := newSupport(t)
	ctx := context.Background()

	t.Run("returns the command output", func(t *testing.T) {
		out, err := support.CommandOutput(ctx, "test:print", MapInput{}, NewOutput(&bytes.Buffer{}, domain.VerbosityNormal))
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("propagates a failed process unchanged", func(t *testing.T) {
		_, err := support.CommandOutput(ctx, "test:fail", MapInput{}, nil)

		var failed *execution.FailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, 4, *failed.ExitCode)
	})

	t.Run("propagates command line errors unchanged", func(t *testing.T) {
		_, err := support.CommandOutput(ctx, "test:broken", MapInput{}, nil)
		assert.Same(t, errNoLine, err)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := support.CommandOutput(ctx, "test:missing", MapInput{}, nil)
		assert.ErrorIs(t, err, ErrUnknownCommand)

		_, err = support.CommandProcess("test:missing", MapInput{}, nil)
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})
}

func TestRegistry_IDs(t *testing.T) {
	registry := NewRegistry()
	registry.Register("container:run", newPrintCommand("0"))
	registry.Register("container:host-address", newPrintCommand("0"))

	assert.Equal(t, []string{"container:host-address", "container:run"}, registry.IDs())
}

type relocatedCommand struct {
	*Base
	dir string
}

func (c *relocatedCommand) Name() string { return "test:pwd" }

func (c *relocatedCommand) CommandLine(Input, Output) ([]string, error) {
	return []string{"pwd"}, nil
}

func (c *relocatedCommand) Process(in Input, out Output) (*execution.Process, error) {
	args, err := c.CommandLine(in, out)
	if err != nil {
		return nil, err
	}
	return c.Support().ProcessForCommand(args, c.dir, nil, nil, 0), nil
}

func TestBase_Output_UsesOverriddenProcess(t *testing.T) {
	dir, err := os.MkdirTemp("", "wpb-base-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	c := &relocatedCommand{dir: dir}
	c.Base = NewBase(NewCommandSupport(), c, "")

	out, err := c.Output(context.Background(), MapInput{}, nil)

	require.NoError(t, err)
	resolved, err := os.Getwd()
	require.NoError(t, err)
	assert.NotEqual(t, resolved+"\n", out)
	assert.Contains(t, out, "wpb-base-")
}

func TestMapInput_Defaults(t *testing.T) {
	in := MapInput{
		Arguments: map[string]string{"suite": ""},
		Options:   map[string]string{"container-name": "runner"},
	}

	assert.Equal(t, "unit", ArgumentOr(in, "suite", "unit"))
	assert.Equal(t, "runner", OptionOr(in, "container-name", "wpbrowser"))
	assert.Equal(t, "x", ArgumentOr(nil, "suite", "x"))

	_, ok := MapInput{}.Option("anything")
	assert.False(t, ok)
}
