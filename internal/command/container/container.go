package container

import "wpb/internal/command"

const (
	// HostAddressID is the identifier of the host address command
	HostAddressID = "container:host-address"
	// RunID is the identifier of the container run command
	RunID = "container:run"

	// DockerHostName is the name Docker Desktop resolves to the host machine
	DockerHostName = "host.docker.internal"

	DefaultContainerName = "wpbrowser"
	DefaultSuite         = "unit"
	DefaultComposeBin    = "docker-compose"
	DefaultInterface     = "docker0"
)

// Settings holds the project level defaults of the container commands
type Settings struct {
	ProjectRoot string // Directory docker-compose runs in
	ComposeBin  string // docker-compose binary
	Interface   string // Network interface the Docker host listens on
}

func (s Settings) withDefaults() Settings {
	if s.ComposeBin == "" {
		s.ComposeBin = DefaultComposeBin
	}
	if s.Interface == "" {
		s.Interface = DefaultInterface
	}
	return s
}

// Register adds the container commands to the registry
func Register(registry *command.Registry, settings Settings) {
	settings = settings.withDefaults()
	registry.Register(HostAddressID, func(support command.Support) command.Command {
		return NewHostAddress(support, settings)
	})
	registry.Register(RunID, func(support command.Support) command.Command {
		return NewRun(support, settings)
	})
}
