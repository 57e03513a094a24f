package commands

import (
	"fmt"
	"log/slog"

	"wpb/internal/config"
	"wpb/internal/ui"
	"wpb/internal/wpcli"

	"github.com/spf13/cobra"
)

// WPCLICommand handles the cli command
type WPCLICommand struct {
	config *config.Config
}

// NewWPCLICommand creates a new WPCLICommand
func NewWPCLICommand(cfg *config.Config) *WPCLICommand {
	return &WPCLICommand{config: cfg}
}

// Execute runs the command
func (wc *WPCLICommand) Execute(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	runner := wpcli.NewRunner(wc.config.WPCLI, wpcli.WithLogger(slog.Default()))

	if wc.config.Flags.Array {
		lines, err := runner.Array(cmd.Context(), nil, args...)
		if err != nil {
			return err
		}
		for _, line := range lines {
			printer.Line(line)
		}
		return nil
	}

	result, err := runner.Run(cmd.Context(), args...)
	if err != nil {
		return err
	}
	if result.Output != "" {
		printer.Line(result.Output)
	}
	if result.Status != 0 {
		return fmt.Errorf("wp-cli exited with status %d", result.Status)
	}
	return nil
}
