package config

import (
	"wpb/internal/command/container"
	"wpb/internal/waiter"
)

const (
	// DefaultProjectPath is the default project root
	DefaultProjectPath = "."
	// DefaultConfigFile is looked up in the project root
	DefaultConfigFile = "wpbrowser.yml"
	// ConfigFileEnv points to a configuration file used instead of the default one
	ConfigFileEnv = "WPB_CONFIG"
	// DefaultEnvFile is loaded before the configuration file is expanded
	DefaultEnvFile = ".env"

	// DefaultContainerName is the docker-compose service tests run in
	DefaultContainerName = container.DefaultContainerName
	// DefaultSuite is the suite run when none is given
	DefaultSuite = container.DefaultSuite
	// DefaultComposeBin is the docker-compose executable
	DefaultComposeBin = container.DefaultComposeBin
	// DefaultInterface is the network interface the host address is read from
	DefaultInterface = container.DefaultInterface
)

var (
	// DefaultWaitTimeout is the waiter timeout in seconds
	DefaultWaitTimeout = waiter.DefaultTimeout.Seconds()
	// DefaultWaitInterval is the waiter polling interval in seconds
	DefaultWaitInterval = waiter.DefaultInterval.Seconds()
)
