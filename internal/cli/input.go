package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wpb/internal/command"
)

// Input builds a command.Input from the positional arguments, named in order,
// and the flags set on cmd
func Input(cmd *cobra.Command, args []string, names ...string) command.MapInput {
	in := command.MapInput{
		Arguments: map[string]string{},
		Options:   map[string]string{},
	}

	for i, name := range names {
		if i < len(args) {
			in.Arguments[name] = args[i]
		}
	}

	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			in.Options[f.Name] = f.Value.String()
		})
	}

	return in
}
