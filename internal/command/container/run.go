package container

import (
	"context"
	"strings"

	"wpb/internal/command"
	"wpb/internal/domain"
)

// Run runs a Codeception suite inside a docker-compose service
type Run struct {
	*command.Base
	composeBin string
}

// NewRun creates a Run command
func NewRun(support command.Support, settings Settings) *Run {
	settings = settings.withDefaults()
	c := &Run{composeBin: settings.ComposeBin}
	c.Base = command.NewBase(support, c, settings.ProjectRoot)
	return c
}

// Name returns the command identifier
func (c *Run) Name() string {
	return RunID
}

// CommandLine returns the docker-compose invocation running the suite.
// The host address is resolved through the host address command so Xdebug
// inside the container can connect back.
func (c *Run) CommandLine(in command.Input, out command.Output) ([]string, error) {
	containerName := command.OptionOr(in, "container-name", DefaultContainerName)
	suite := command.ArgumentOr(in, "suite", DefaultSuite)

	hostAddress, err := c.Support().CommandOutput(context.Background(), HostAddressID, in, out)
	if err != nil {
		return nil, err
	}

	line := []string{
		c.composeBin, "run", "--rm",
		"-e", "XDEBUG_REMOTE_HOST=" + strings.TrimSpace(hostAddress),
		containerName,
		"run", suite,
	}

	if out != nil {
		if flag := VerbosityFlag(out.Verbosity()); flag != "" {
			line = append(line, flag)
		}
	}

	return line, nil
}

// VerbosityFlag returns the codecept flag matching the console verbosity
func VerbosityFlag(v domain.Verbosity) string {
	switch v {
	case domain.VerbosityQuiet:
		return "-q"
	case domain.VerbosityDebug:
		return "--debug"
	case domain.VerbosityNormal:
		return ""
	}

	if level := v.Level(); level > 0 {
		return "-" + strings.Repeat("v", level)
	}
	return ""
}
