package commands

import (
	"log/slog"
	"strings"

	"wpb/internal/cli"
	"wpb/internal/command"
	"wpb/internal/command/container"
	"wpb/internal/config"
	"wpb/internal/ui"

	"github.com/spf13/cobra"
)

// HostAddressCommand handles the container:host-address command
type HostAddressCommand struct {
	config  *config.Config
	support supportFactory
}

// NewHostAddressCommand creates a new HostAddressCommand
func NewHostAddressCommand(cfg *config.Config, support supportFactory) *HostAddressCommand {
	return &HostAddressCommand{config: cfg, support: support}
}

// Execute runs the command
func (hc *HostAddressCommand) Execute(cmd *cobra.Command, args []string) error {
	out := command.NewOutput(cmd.OutOrStdout(), hc.config.Verbosity())

	address, err := hc.support().CommandOutput(cmd.Context(), container.HostAddressID, cli.Input(cmd, args), out)
	if err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Line(strings.TrimSpace(address))
	return nil
}

// ContainerRunCommand handles the container:run command
type ContainerRunCommand struct {
	config  *config.Config
	support supportFactory
}

// NewContainerRunCommand creates a new ContainerRunCommand
func NewContainerRunCommand(cfg *config.Config, support supportFactory) *ContainerRunCommand {
	return &ContainerRunCommand{config: cfg, support: support}
}

// Execute runs the command
func (rc *ContainerRunCommand) Execute(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	out := command.NewOutput(cmd.OutOrStdout(), rc.config.Verbosity())

	in := cli.Input(cmd, args, "suite")
	if _, ok := in.Arguments["suite"]; !ok {
		in.Arguments["suite"] = rc.config.Container.Suite
	}
	in.Options["container-name"] = rc.config.ContainerName()

	process, err := rc.support().CommandProcess(container.RunID, in, out)
	if err != nil {
		return err
	}

	slog.Debug("running suite", "command", process.CommandLine(), "dir", process.Dir())
	if err := process.Run(cmd.Context(), printer.Chunk); err != nil {
		return err
	}

	if code := process.ExitCode(); code == nil {
		printer.Warning("%s did not terminate normally", container.RunID)
	} else if *code != 0 {
		printer.Warning("%s exited with status %d", container.RunID, *code)
	}

	return nil
}
