package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"wpb/internal/domain"
)

// waitDelay bounds how long output is still read once a timed out process was killed
const waitDelay = time.Second

// StreamKind identifies the stream an output chunk was read from
type StreamKind int

const (
	Stdout StreamKind = iota
	Stderr
)

func (k StreamKind) String() string {
	if k == Stderr {
		return "err"
	}
	return "out"
}

// OutputFunc receives output chunks while a process runs. Calls are
// serialized; the order of chunks across the two streams is best effort.
type OutputFunc func(kind StreamKind, chunk []byte)

// Process is an external command, built but not yet run
type Process struct {
	args    []string
	dir     string
	env     map[string]string
	input   io.Reader
	timeout time.Duration

	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode *int
}

// Args returns a copy of the command line tokens
func (p *Process) Args() []string {
	return append([]string(nil), p.args...)
}

// Dir returns the working directory the process will run in
func (p *Process) Dir() string {
	return p.dir
}

// Env returns a copy of the environment overrides of the process
func (p *Process) Env() map[string]string {
	return maps.Clone(p.env)
}

// Timeout returns the process timeout, zero when disabled
func (p *Process) Timeout() time.Duration {
	return p.timeout
}

// CommandLine returns the command line as a shell would read it
func (p *Process) CommandLine() string {
	quoted := make([]string, len(p.args))
	for i, arg := range p.args {
		quoted[i] = quote(arg)
	}
	return strings.Join(quoted, " ")
}

// Run executes the process and blocks until it exits.
// A nonzero exit status is not an error: inspect ExitCode. Errors are
// returned only when the process could not be started or timed out.
func (p *Process) Run(ctx context.Context, onOutput OutputFunc) error {
	p.stdout.Reset()
	p.stderr.Reset()
	p.exitCode = nil

	if len(p.args) == 0 {
		return &SpawnError{Args: p.args, Err: ErrEmptyCommand}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.args[0], p.args[1:]...)
	cmd.Dir = p.dir
	cmd.WaitDelay = waitDelay
	cmd.Env = environ(os.Environ(), p.env)
	if p.input != nil {
		cmd.Stdin = p.input
	}

	var mu sync.Mutex
	cmd.Stdout = &streamWriter{kind: Stdout, buf: &p.stdout, mu: &mu, fn: onOutput}
	cmd.Stderr = &streamWriter{kind: Stderr, buf: &p.stderr, mu: &mu, fn: onOutput}

	err := cmd.Run()
	if err == nil {
		code := cmd.ProcessState.ExitCode()
		p.exitCode = &code
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && p.timeout > 0 {
			return &TimeoutError{Args: p.Args(), Timeout: p.timeout}
		}
		return fmt.Errorf("run %s: %w", p.CommandLine(), ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 means the process was terminated by a signal
		if code := exitErr.ExitCode(); code >= 0 {
			p.exitCode = &code
		}
		return nil
	}

	return &SpawnError{Args: p.Args(), Err: err}
}

// MustRun executes the process like Run and fails with a *FailedError
// unless the process exits with status 0.
func (p *Process) MustRun(ctx context.Context, onOutput OutputFunc) error {
	if err := p.Run(ctx, onOutput); err != nil {
		return err
	}

	if p.exitCode == nil || *p.exitCode != 0 {
		return &FailedError{
			Args:     p.Args(),
			ExitCode: p.ExitCode(),
			Stdout:   p.Output(),
			Stderr:   p.ErrorOutput(),
		}
	}

	return nil
}

// Output returns the captured standard output of the last run
func (p *Process) Output() string {
	return p.stdout.String()
}

// ErrorOutput returns the captured standard error of the last run
func (p *Process) ErrorOutput() string {
	return p.stderr.String()
}

// ExitCode returns the exit status of the last run, nil if the process did not
// run, is still running or was killed by a signal
func (p *Process) ExitCode() *int {
	if p.exitCode == nil {
		return nil
	}
	code := *p.exitCode
	return &code
}

// Result returns the captured outcome of the last run
func (p *Process) Result() domain.ProcessResult {
	return domain.ProcessResult{
		Stdout:   p.Output(),
		Stderr:   p.ErrorOutput(),
		ExitCode: p.ExitCode(),
	}
}

// streamWriter captures one stream and forwards each chunk to the callback
type streamWriter struct {
	kind StreamKind
	buf  *bytes.Buffer
	mu   *sync.Mutex
	fn   OutputFunc
}

func (w *streamWriter) Write(chunk []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.buf.Write(chunk)
	if w.fn != nil && n > 0 {
		w.fn(w.kind, slices.Clone(chunk[:n]))
	}
	return n, err
}

// environ overlays env on base. An empty value removes the variable.
func environ(base []string, env map[string]string) []string {
	if len(env) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(env))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := env[key]; overridden {
			continue
		}
		merged = append(merged, kv)
	}

	for _, key := range slices.Sorted(maps.Keys(env)) {
		if value := env[key]; value != "" {
			merged = append(merged, key+"="+value)
		}
	}

	return merged
}

func quote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`|&;<>()*?[]#~") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
