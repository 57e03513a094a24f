package main

import (
	"fmt"
	"os"

	"wpb/internal/cli"
	"wpb/internal/cli/commands"
	"wpb/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "wpb",
		Short:   "WordPress test environment toolkit",
		Long:    `Commands used while testing WordPress sites: run suites in the docker-compose test container, run wp-cli against the test installation and wait for the services the tests need.`,
		Version: version,
	}

	// Create initial config with defaults, the project is loaded once flags are parsed
	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
