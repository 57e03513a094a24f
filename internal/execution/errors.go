package execution

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyCommand is returned when a process has no command line to run
var ErrEmptyCommand = errors.New("empty command line")

// SpawnError is returned when the operating system could not start a process
type SpawnError struct {
	Args []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned when a process runs longer than its timeout
type TimeoutError struct {
	Args    []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("process %q exceeded the timeout of %s", strings.Join(e.Args, " "), e.Timeout)
}

// FailedError is returned by MustRun when a process does not exit with status 0
type FailedError struct {
	Args     []string
	ExitCode *int // nil when the process did not report an exit status
	Stdout   string
	Stderr   string
}

func (e *FailedError) Error() string {
	var b strings.Builder
	if e.ExitCode == nil {
		fmt.Fprintf(&b, "process %q did not terminate with an exit status", strings.Join(e.Args, " "))
	} else {
		fmt.Fprintf(&b, "process %q failed with exit code %d", strings.Join(e.Args, " "), *e.ExitCode)
	}
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "\noutput: %s", out)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\nerror output: %s", out)
	}
	return b.String()
}
