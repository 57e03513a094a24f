package commands

import (
	"wpb/internal/cli"
	"wpb/internal/command"
	"wpb/internal/command/container"
	"wpb/internal/config"
	"wpb/internal/logging"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	HostAddress  *HostAddressCommand
	ContainerRun *ContainerRunCommand
	WPCLI        *WPCLICommand
	WaitFile     *WaitFileCommand
	WaitDatabase *WaitDatabaseCommand
}

// NewCommands creates all commands with dependencies.
// supportOpts are applied to the command support every container command runs with.
func NewCommands(cfg *config.Config, supportOpts ...command.Option) *Commands {
	support := newSupportFactory(cfg, supportOpts)

	return &Commands{
		HostAddress:  NewHostAddressCommand(cfg, support),
		ContainerRun: NewContainerRunCommand(cfg, support),
		WPCLI:        NewWPCLICommand(cfg),
		WaitFile:     NewWaitFileCommand(cfg),
		WaitDatabase: NewWaitDatabaseCommand(cfg),
	}
}

// supportFactory builds the command support once the project configuration is loaded
type supportFactory func() command.Support

func newSupportFactory(cfg *config.Config, opts []command.Option) supportFactory {
	return func() command.Support {
		registry := command.NewRegistry()
		container.Register(registry, cfg.ContainerSettings())
		return command.NewCommandSupport(append([]command.Option{command.WithRegistry(registry)}, opts...)...)
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	flags.RegisterGlobal(rootCmd)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Flags = flags.ToConfigFlags()
		logging.New(cmd.ErrOrStderr(), cfg.Verbosity())
		return cfg.LoadProject(flags.Project)
	}

	// Host address command
	hostAddressCmd := &cobra.Command{
		Use:   container.HostAddressID,
		Short: "Print the address containers reach the host machine at",
		Args:  cobra.NoArgs,
		RunE:  c.HostAddress.Execute,
	}
	rootCmd.AddCommand(hostAddressCmd)

	// Container run command
	runCmd := &cobra.Command{
		Use:   container.RunID + " [suite]",
		Short: "Run a Codeception suite in the docker-compose test container",
		Long:  "Run a Codeception suite in the docker-compose test container, pointing Xdebug back to the host",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.ContainerRun.Execute,
	}
	runCmd.Flags().StringVar(&flags.ContainerName, "container-name", "", "docker-compose service to run the suite in (default from wpbrowser.yml, else "+config.DefaultContainerName+")")
	rootCmd.AddCommand(runCmd)

	// wp-cli command
	wpCmd := &cobra.Command{
		Use:   "cli [--array] <wp-cli command...>",
		Short: "Run a wp-cli command against the configured WordPress installation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.WPCLI.Execute,
	}
	wpCmd.Flags().BoolVar(&flags.Array, "array", false, "Print the output split in lines")
	wpCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(wpCmd)

	// Wait for file command
	waitFileCmd := &cobra.Command{
		Use:   "wait:file <path>",
		Short: "Wait for a file to exist, polling only inside a container",
		Args:  cobra.ExactArgs(1),
		RunE:  c.WaitFile.Execute,
	}
	rootCmd.AddCommand(waitFileCmd)

	// Wait for database command
	waitDBCmd := &cobra.Command{
		Use:   "wait:db",
		Short: "Wait for the MySQL server configured in the DB_* variables to answer",
		Args:  cobra.NoArgs,
		RunE:  c.WaitDatabase.Execute,
	}
	rootCmd.AddCommand(waitDBCmd)
}
