package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sh(script string) []string {
	return []string{"/bin/sh", "-c", script}
}

func TestBuilder_ForCommand(t *testing.T) {
	args := []string{"echo", "hello"}
	env := map[string]string{"FOO": "bar"}

	p := NewBuilder().ForCommand(args, "/tmp", env, nil, 5*time.Second)

	args[0] = "changed"
	env["FOO"] = "changed"

	assert.Equal(t, []string{"echo", "hello"}, p.Args())
	assert.Equal(t, "/tmp", p.Dir())
	assert.Equal(t, map[string]string{"FOO": "bar"}, p.Env())
	assert.Equal(t, 5*time.Second, p.Timeout())
	assert.Nil(t, p.ExitCode(), "an unstarted process has no exit code")
}

func TestProcess_Run_CapturesOutput(t *testing.T) {
	p := NewBuilder().ForCommand(sh("echo out; echo err >&2"), "", nil, nil, 0)

	require.NoError(t, p.Run(context.Background(), nil))

	assert.Equal(t, "out\n", p.Output())
	assert.Equal(t, "err\n", p.ErrorOutput())
	require.NotNil(t, p.ExitCode())
	assert.Equal(t, 0, *p.ExitCode())
	assert.True(t, p.Result().Succeeded())
}

func TestProcess_Run_StreamsChunks(t *testing.T) {
	p := NewBuilder().ForCommand(sh("printf one; printf two >&2"), "", nil, nil, 0)

	got := map[StreamKind]string{}
	err := p.Run(context.Background(), func(kind StreamKind, chunk []byte) {
		got[kind] += string(chunk)
	})

	require.NoError(t, err)
	assert.Equal(t, "one", got[Stdout])
	assert.Equal(t, "two", got[Stderr])
}

func TestProcess_Run_NonZeroExitIsNotAnError(t *testing.T) {
	p := NewBuilder().ForCommand(sh("echo failing; exit 3"), "", nil, nil, 0)

	require.NoError(t, p.Run(context.Background(), nil))
	require.NotNil(t, p.ExitCode())
	assert.Equal(t, 3, *p.ExitCode())
	assert.False(t, p.Result().Succeeded())
}

func TestProcess_MustRun(t *testing.T) {
	t.Run("succeeds on status 0", func(t *testing.T) {
		p := NewBuilder().ForCommand(sh("true"), "", nil, nil, 0)
		assert.NoError(t, p.MustRun(context.Background(), nil))
	})

	t.Run("fails on nonzero status", func(t *testing.T) {
		p := NewBuilder().ForCommand(sh("echo broken >&2; exit 2"), "", nil, nil, 0)

		err := p.MustRun(context.Background(), nil)

		var failed *FailedError
		require.ErrorAs(t, err, &failed)
		require.NotNil(t, failed.ExitCode)
		assert.Equal(t, 2, *failed.ExitCode)
		assert.Equal(t, "broken\n", failed.Stderr)
		assert.Contains(t, err.Error(), "exit code 2")
	})
}

func TestProcess_Run_SpawnFailure(t *testing.T) {
	p := NewBuilder().ForCommand([]string{"wpb-definitely-not-a-binary"}, "", nil, nil, 0)

	err := p.Run(context.Background(), nil)

	var spawn *SpawnError
	require.ErrorAs(t, err, &spawn)
	assert.Nil(t, p.ExitCode())
}

func TestProcess_Run_EmptyCommand(t *testing.T) {
	p := NewBuilder().ForCommand(nil, "", nil, nil, 0)

	err := p.Run(context.Background(), nil)

	assert.True(t, errors.Is(err, ErrEmptyCommand))
}

func TestProcess_Run_Timeout(t *testing.T) {
	p := NewBuilder().ForCommand(sh("exec sleep 5"), "", nil, nil, 50*time.Millisecond)

	err := p.Run(context.Background(), nil)

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 50*time.Millisecond, timeout.Timeout)
	assert.Nil(t, p.ExitCode())
}

func TestProcess_Run_WorkingDirectoryAndInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("here"), 0644))

	p := NewBuilder().ForCommand(sh("cat marker; cat"), dir, nil, strings.NewReader(" and stdin"), 0)

	require.NoError(t, p.Run(context.Background(), nil))
	assert.Equal(t, "here and stdin", p.Output())
}

func TestProcess_Run_Environment(t *testing.T) {
	t.Setenv("WPB_AMBIENT", "ambient")
	t.Setenv("WPB_REMOVED", "present")

	p := NewBuilder().ForCommand(
		sh(`printf '%s|%s|%s' "$WPB_AMBIENT" "$WPB_OVERRIDE" "${WPB_REMOVED-unset}"`),
		"",
		map[string]string{"WPB_OVERRIDE": "override", "WPB_REMOVED": ""},
		nil,
		0,
	)

	require.NoError(t, p.Run(context.Background(), nil))
	assert.Equal(t, "ambient|override|unset", p.Output())
}

func TestProcess_Run_ResetsBetweenRuns(t *testing.T) {
	p := NewBuilder().ForCommand(sh("echo again"), "", nil, nil, 0)

	require.NoError(t, p.Run(context.Background(), nil))
	require.NoError(t, p.Run(context.Background(), nil))

	assert.Equal(t, "again\n", p.Output())
}

func TestProcess_CommandLine(t *testing.T) {
	p := NewBuilder().ForCommand([]string{"docker-compose", "run", "--rm", "it's here", ""}, "", nil, nil, 0)

	assert.Equal(t, `docker-compose run --rm 'it'\''s here' ''`, p.CommandLine())
}

func TestEnviron(t *testing.T) {
	base := []string{"A=1", "B=2", "C=3"}

	t.Run("nil overlay keeps the base", func(t *testing.T) {
		assert.Equal(t, base, environ(base, nil))
	})

	t.Run("overrides, additions and removals", func(t *testing.T) {
		got := environ(base, map[string]string{"B": "20", "C": "", "D": "4"})
		assert.Equal(t, []string{"A=1", "B=20", "D=4"}, got)
	})
}
