package wpcli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"wpb/internal/execution"
	"wpb/internal/parser"
)

// HostRequestEnv tells the WordPress installation the request comes from the host
const HostRequestEnv = "WPBROWSER_HOST_REQUEST"

// Result is the classified outcome of a wp-cli command
type Result struct {
	Output string
	Status int
}

// Runner runs wp-cli commands against one WordPress installation
type Runner struct {
	config  Config
	builder execution.ProcessBuilder
	logger  *slog.Logger
	blocked map[string]struct{}
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithProcessBuilder replaces the builder used to create wp-cli processes
func WithProcessBuilder(builder execution.ProcessBuilder) RunnerOption {
	return func(r *Runner) {
		r.builder = builder
	}
}

// WithLogger sets the logger debug sections are written to
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithBlockedKeys replaces the configuration keys never passed as options
func WithBlockedKeys(keys map[string]struct{}) RunnerOption {
	return func(r *Runner) {
		r.blocked = maps.Clone(keys)
	}
}

// NewRunner creates a new wp-cli runner
func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		config:  cfg,
		builder: execution.NewBuilder(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		blocked: DefaultBlockedKeys(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the runner configuration
func (r *Runner) Config() Config {
	return r.config
}

// Run validates the configuration, runs the command and classifies the result.
// userCommand is either a list of tokens or a single string split with shell rules.
func (r *Runner) Run(ctx context.Context, userCommand ...string) (Result, error) {
	root, err := r.config.root()
	if err != nil {
		return Result{}, err
	}
	timeout, err := r.config.timeout()
	if err != nil {
		return Result{}, err
	}
	tokens, err := Tokens(userCommand)
	if err != nil {
		return Result{}, err
	}

	args := r.commandLine(root, tokens)
	env := r.environment()

	r.logger.Debug("wp-cli command", "command", strings.Join(tokens, " "))
	r.logger.Debug("wp-cli full command line", "args", args)
	r.logger.Debug("wp-cli environment", "env", env)

	process := r.builder.ForCommand(args, root, env, nil, timeout)
	if err := process.Run(ctx, nil); err != nil {
		if r.config.ShouldThrow() {
			return Result{}, fmt.Errorf("wp-cli process failed: %w", err)
		}
		r.logger.Debug("wp-cli process failed", "error", err)
		return Result{Output: "", Status: 1}, nil
	}

	output := process.ErrorOutput()
	if output == "" {
		output = process.Output()
	}

	code := process.ExitCode()
	if code == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNotTerminated, process.CommandLine())
	}

	r.logger.Debug("wp-cli output", "output", output)
	r.logger.Debug("wp-cli status", "status", *code)

	if r.config.ShouldThrow() && *code != 0 {
		return Result{}, &CommandError{Status: *code, Output: output}
	}

	return Result{Output: output, Status: *code}, nil
}

// Cli runs the command and returns its exit status
func (r *Runner) Cli(ctx context.Context, userCommand ...string) (int, error) {
	result, err := r.Run(ctx, userCommand...)
	if err != nil {
		return 0, err
	}
	return result.Status, nil
}

// String runs the command and returns its output
func (r *Runner) String(ctx context.Context, userCommand ...string) (string, error) {
	result, err := r.Run(ctx, userCommand...)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Array runs the command and splits its output. A nil split uses parser.SplitOutput.
func (r *Runner) Array(ctx context.Context, split parser.Splitter, userCommand ...string) ([]string, error) {
	result, err := r.Run(ctx, userCommand...)
	if err != nil {
		return nil, err
	}
	if split == nil {
		return parser.SplitOutput(result.Output), nil
	}
	return parser.TrimAll(split(result.Output)), nil
}

func (r *Runner) commandLine(root string, tokens []string) []string {
	inline := InlineOptions(tokens)

	args := []string{r.config.Binary()}
	if _, ok := inline["path"]; !ok {
		args = append(args, "--path="+root)
	}
	args = append(args, buildOptions(r.config.Options, r.blocked, inline)...)
	return append(args, tokens...)
}

func (r *Runner) environment() map[string]string {
	env := r.config.Env.Vars()
	env[HostRequestEnv] = "1"
	return env
}
