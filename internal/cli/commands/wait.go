package commands

import (
	"fmt"
	"time"

	"wpb/internal/config"
	"wpb/internal/domain"
	"wpb/internal/ui"
	"wpb/internal/waiter"

	"github.com/spf13/cobra"
)

// WaitFileCommand handles the wait:file command
type WaitFileCommand struct {
	config *config.Config
}

// NewWaitFileCommand creates a new WaitFileCommand
func NewWaitFileCommand(cfg *config.Config) *WaitFileCommand {
	return &WaitFileCommand{config: cfg}
}

// Execute runs the command
func (wc *WaitFileCommand) Execute(cmd *cobra.Command, args []string) error {
	path := args[0]
	w, spinner := newWaiter(cmd, wc.config, fmt.Sprintf("Waiting for %s ", path))

	err := w.WaitForFile(path, nil)
	finish(spinner, err, fmt.Sprintf("File %s found", path))
	return err
}

// WaitDatabaseCommand handles the wait:db command
type WaitDatabaseCommand struct {
	config *config.Config
}

// NewWaitDatabaseCommand creates a new WaitDatabaseCommand
func NewWaitDatabaseCommand(cfg *config.Config) *WaitDatabaseCommand {
	return &WaitDatabaseCommand{config: cfg}
}

// Execute runs the command
func (dc *WaitDatabaseCommand) Execute(cmd *cobra.Command, args []string) error {
	db := waiter.DatabaseConfigFromEnv(dc.config.ProjectRoot)
	w, spinner := newWaiter(cmd, dc.config, fmt.Sprintf("Waiting for database at %s ", db.Address()))

	err := w.WaitForDatabase(cmd.Context(), db)
	finish(spinner, err, fmt.Sprintf("Database at %s is up", db.Address()))
	return err
}

// newWaiter returns a waiter ticking a spinner on every poll.
// The spinner is nil when quiet.
func newWaiter(cmd *cobra.Command, cfg *config.Config, description string) (*waiter.Waiter, *ui.Spinner) {
	if cfg.Verbosity() == domain.VerbosityQuiet {
		return waiter.New(cfg.WaiterSettings()), nil
	}

	spinner := ui.NewSpinner(cmd.ErrOrStderr(), description)
	sleep := func(d time.Duration) {
		spinner.Tick()
		time.Sleep(d)
	}
	return waiter.New(cfg.WaiterSettings(), waiter.WithClock(time.Now, sleep)), spinner
}

func finish(spinner *ui.Spinner, err error, success string) {
	if spinner == nil {
		return
	}
	if err != nil {
		spinner.Finish(false, "Gave up waiting")
		return
	}
	spinner.Finish(true, success)
}
