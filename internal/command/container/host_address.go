package container

import (
	"context"

	"wpb/internal/command"
	"wpb/internal/parser"
)

// HostAddress resolves the address of the host machine as seen from a container
type HostAddress struct {
	*command.Base
	iface string
}

// NewHostAddress creates a HostAddress command
func NewHostAddress(support command.Support, settings Settings) *HostAddress {
	settings = settings.withDefaults()
	c := &HostAddress{iface: settings.Interface}
	c.Base = command.NewBase(support, c, "")
	return c
}

// Name returns the command identifier
func (c *HostAddress) Name() string {
	return HostAddressID
}

// CommandLine returns the command printing the Docker bridge addresses
func (c *HostAddress) CommandLine(command.Input, command.Output) ([]string, error) {
	return []string{"ip", "-4", "addr", "show", c.iface}, nil
}

// Output returns the host address. On macOS and Windows Docker resolves
// host.docker.internal itself and no process is run.
func (c *HostAddress) Output(ctx context.Context, in command.Input, out command.Output) (string, error) {
	if c.Support().OperatingSystemFamily().ResolvesDockerHost() {
		return DockerHostName, nil
	}

	raw, err := c.Base.Output(ctx, in, out)
	if err != nil {
		return "", err
	}

	return parser.ParseHostAddress(raw)
}
