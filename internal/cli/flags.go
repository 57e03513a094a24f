package cli

import (
	"github.com/spf13/cobra"

	"wpb/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Project       string
	Quiet         bool
	Debug         bool
	Verbose       int
	ContainerName string
	Array         bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Quiet:         f.Quiet,
		Debug:         f.Debug,
		Verbose:       f.Verbose,
		ContainerName: f.ContainerName,
		Array:         f.Array,
	}
}

// RegisterGlobal adds the flags every command accepts to the root command
func (f *Flags) RegisterGlobal(rootCmd *cobra.Command) {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.Project, "project", config.DefaultProjectPath, "Project root holding wpbrowser.yml and docker-compose.yml")
	pf.BoolVarP(&f.Quiet, "quiet", "q", false, "Do not output any message")
	pf.BoolVar(&f.Debug, "debug", false, "Show debug output")
	pf.CountVarP(&f.Verbose, "verbose", "v", "Increase verbosity: -v, -vv or -vvv")
}
