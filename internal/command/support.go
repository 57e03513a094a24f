package command

import (
	"context"
	"io"
	"sync"
	"time"

	"wpb/internal/domain"
	"wpb/internal/environment"
	"wpb/internal/execution"
)

// Support is the set of utilities commands use to inspect the host, build
// processes and delegate to other commands
type Support interface {
	OperatingSystemFamily() domain.Family
	ProcessForCommand(args []string, dir string, env map[string]string, input io.Reader, timeout time.Duration) *execution.Process
	CommandProcess(id string, in Input, out Output) (*execution.Process, error)
	CommandOutput(ctx context.Context, id string, in Input, out Output) (string, error)
}

// FamilyDetector reports the operating system family
type FamilyDetector interface {
	Family() domain.Family
}

// CommandSupport is the default Support. Its collaborators are built on first use.
type CommandSupport struct {
	detector     FamilyDetector
	detectorOnce sync.Once
	builder      execution.ProcessBuilder
	builderOnce  sync.Once
	registry     *Registry
}

// Option configures a CommandSupport
type Option func(*CommandSupport)

// WithDetector sets the operating system detector
func WithDetector(detector FamilyDetector) Option {
	return func(s *CommandSupport) {
		s.detector = detector
	}
}

// WithProcessBuilder sets the process builder
func WithProcessBuilder(builder execution.ProcessBuilder) Option {
	return func(s *CommandSupport) {
		s.builder = builder
	}
}

// WithRegistry sets the registry commands are resolved from
func WithRegistry(registry *Registry) Option {
	return func(s *CommandSupport) {
		s.registry = registry
	}
}

// NewCommandSupport creates a CommandSupport
func NewCommandSupport(opts ...Option) *CommandSupport {
	s := &CommandSupport{}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	return s
}

// OperatingSystemFamily returns the family of the host operating system
func (s *CommandSupport) OperatingSystemFamily() domain.Family {
	s.detectorOnce.Do(func() {
		if s.detector == nil {
			s.detector = environment.NewDetector()
		}
	})
	return s.detector.Family()
}

// ProcessForCommand returns a process for the command line, ready to run
func (s *CommandSupport) ProcessForCommand(args []string, dir string, env map[string]string, input io.Reader, timeout time.Duration) *execution.Process {
	s.builderOnce.Do(func() {
		if s.builder == nil {
			s.builder = execution.NewBuilder()
		}
	})
	return s.builder.ForCommand(args, dir, env, input, timeout)
}

// CommandProcess builds the command registered under id and returns its process
func (s *CommandSupport) CommandProcess(id string, in Input, out Output) (*execution.Process, error) {
	cmd, err := s.registry.Build(id, s)
	if err != nil {
		return nil, err
	}
	return cmd.Process(in, out)
}

// CommandOutput builds the command registered under id, runs it and returns its output
func (s *CommandSupport) CommandOutput(ctx context.Context, id string, in Input, out Output) (string, error) {
	cmd, err := s.registry.Build(id, s)
	if err != nil {
		return "", err
	}
	return cmd.Output(ctx, in, out)
}
