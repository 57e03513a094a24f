package waiter

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTimeout is how long a wait lasts inside a container
	DefaultTimeout = 3 * time.Second
	// DefaultInterval is the pause between two checks
	DefaultInterval = time.Second
	// DefaultFlagEnvVar marks the process as running inside a container
	DefaultFlagEnvVar = "CONTAINER"
)

// Config holds the waiter settings
type Config struct {
	Timeout  time.Duration
	Interval time.Duration
	// FlagEnvVars are the variables any of which, when set, marks a container context
	FlagEnvVars []string
}

// DefaultConfig returns the default waiter settings
func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		Interval:    DefaultInterval,
		FlagEnvVars: []string{DefaultFlagEnvVar},
	}
}

// FileNotFoundError is returned when a waited for file never appeared
type FileNotFoundError struct {
	Path    string
	Timeout time.Duration
}

func (e *FileNotFoundError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("file %s not found after waiting %s", e.Path, e.Timeout)
	}
	return fmt.Sprintf("file %s not found", e.Path)
}

// Waiter polls conditions that other containers are expected to satisfy
type Waiter struct {
	config Config
	now    func() time.Time
	sleep  func(time.Duration)
	getenv func(string) string
}

// Option configures a Waiter
type Option func(*Waiter)

// WithClock replaces the clock used to compute deadlines and to pause
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(w *Waiter) {
		w.now = now
		w.sleep = sleep
	}
}

// WithGetenv replaces the environment lookup
func WithGetenv(getenv func(string) string) Option {
	return func(w *Waiter) {
		w.getenv = getenv
	}
}

// New creates a new Waiter; zero settings take their default
func New(cfg Config, opts ...Option) *Waiter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if len(cfg.FlagEnvVars) == 0 {
		cfg.FlagEnvVars = []string{DefaultFlagEnvVar}
	}

	w := &Waiter{
		config: cfg,
		now:    time.Now,
		sleep:  time.Sleep,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Config returns the waiter settings
func (w *Waiter) Config() Config {
	return w.config
}

// IsContainerContext reports whether any of the flag variables is set
func (w *Waiter) IsContainerContext() bool {
	for _, name := range w.config.FlagEnvVars {
		if w.getenv(name) != "" {
			return true
		}
	}
	return false
}

// WaitFor polls predicate until it holds or the timeout expires.
// The predicate is checked one last time at the deadline.
func (w *Waiter) WaitFor(predicate func() bool) bool {
	deadline := w.now().Add(w.config.Timeout)
	for w.now().Before(deadline) {
		if predicate() {
			return true
		}
		w.sleep(w.config.Interval)
	}
	return predicate()
}

// WaitForFile waits for path to exist. Outside a container the file is checked once.
// onFailure builds the returned error; nil returns a *FileNotFoundError.
func (w *Waiter) WaitForFile(path string, onFailure func(path string) error) error {
	exists := func() bool {
		_, err := os.Stat(path)
		return err == nil
	}

	var timeout time.Duration
	var found bool
	if w.IsContainerContext() {
		timeout = w.config.Timeout
		found = w.WaitFor(exists)
	} else {
		found = exists()
	}

	if found {
		return nil
	}
	if onFailure != nil {
		return onFailure(path)
	}
	return &FileNotFoundError{Path: path, Timeout: timeout}
}

// ParseFlagEnvVars splits a comma separated list of variable names
func ParseFlagEnvVars(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
