package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wpb/internal/command/container"
	"wpb/internal/domain"
	"wpb/internal/waiter"
	"wpb/internal/wpcli"
)

// Config holds all configuration for the application
type Config struct {
	// ProjectRoot is the folder holding wpbrowser.yml and docker-compose.yml
	ProjectRoot string `yaml:"-"`
	// File is the configuration file that was read, empty when none was found
	File string `yaml:"-"`

	Container ContainerConfig `yaml:"container"`
	WPCLI     wpcli.Config    `yaml:"wpcli"`
	Waiter    WaiterConfig    `yaml:"waiter"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// ContainerConfig configures the container:* commands
type ContainerConfig struct {
	Name       string `yaml:"name"`
	Suite      string `yaml:"suite"`
	ComposeBin string `yaml:"compose-bin"`
	Interface  string `yaml:"interface"`
}

// WaiterConfig configures the wait:* commands, durations are in seconds
type WaiterConfig struct {
	Timeout  float64 `yaml:"timeout"`
	Interval float64 `yaml:"interval"`
	// FlagEnvVars is a list or a comma separated string
	FlagEnvVars any `yaml:"flag-env-vars"`
}

// Flags holds command-line flags
type Flags struct {
	Quiet         bool
	Debug         bool
	Verbose       int
	ContainerName string
	Array         bool
}

// LoadError reports a configuration file that could not be read or decoded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load configuration %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectRoot: DefaultProjectPath,
		Container: ContainerConfig{
			Name:       DefaultContainerName,
			Suite:      DefaultSuite,
			ComposeBin: DefaultComposeBin,
			Interface:  DefaultInterface,
		},
		Waiter: WaiterConfig{
			Timeout:  DefaultWaitTimeout,
			Interval: DefaultWaitInterval,
		},
	}
}

// Load creates a config for the project in root
func Load(root string) (*Config, error) {
	cfg := New()
	if err := cfg.LoadProject(root); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadProject loads the project .env and configuration file over the current values.
// A missing configuration file leaves the defaults in place.
func (c *Config) LoadProject(root string) error {
	if root == "" {
		root = DefaultProjectPath
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	c.ProjectRoot = root

	envFile := filepath.Join(root, DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &LoadError{Path: envFile, Err: err}
	}

	file, explicit := c.configFile()
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		c.applyProjectDefaults()
		return nil
	default:
		return &LoadError{Path: file, Err: err}
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c); err != nil {
		return &LoadError{Path: file, Err: err}
	}
	c.File = file
	c.applyProjectDefaults()

	return nil
}

// configFile returns the file to read and whether the user asked for it explicitly
func (c *Config) configFile() (string, bool) {
	if file := os.Getenv(ConfigFileEnv); file != "" {
		if !filepath.IsAbs(file) {
			file = filepath.Join(c.ProjectRoot, file)
		}
		return file, true
	}
	return filepath.Join(c.ProjectRoot, DefaultConfigFile), false
}

// applyProjectDefaults fills what the file left empty and resolves relative paths
func (c *Config) applyProjectDefaults() {
	if c.Container.Name == "" {
		c.Container.Name = DefaultContainerName
	}
	if c.Container.Suite == "" {
		c.Container.Suite = DefaultSuite
	}
	if c.Container.ComposeBin == "" {
		c.Container.ComposeBin = DefaultComposeBin
	}
	if c.Container.Interface == "" {
		c.Container.Interface = DefaultInterface
	}

	if c.WPCLI.Path == "" {
		c.WPCLI.Path = c.ProjectRoot
	} else if !filepath.IsAbs(c.WPCLI.Path) {
		c.WPCLI.Path = filepath.Join(c.ProjectRoot, c.WPCLI.Path)
	}
}

// Verbosity returns the console verbosity the flags ask for
func (c *Config) Verbosity() domain.Verbosity {
	return domain.VerbosityFromFlags(c.Flags.Quiet, c.Flags.Debug, c.Flags.Verbose)
}

// ContainerSettings returns the settings of the container:* commands
func (c *Config) ContainerSettings() container.Settings {
	return container.Settings{
		ProjectRoot: c.ProjectRoot,
		ComposeBin:  c.Container.ComposeBin,
		Interface:   c.Container.Interface,
	}
}

// ContainerName returns the container name, using the flag if provided
func (c *Config) ContainerName() string {
	if c.Flags.ContainerName != "" {
		return c.Flags.ContainerName
	}
	return c.Container.Name
}

// WaiterSettings converts the waiter section
func (c *Config) WaiterSettings() waiter.Config {
	return waiter.Config{
		Timeout:     seconds(c.Waiter.Timeout),
		Interval:    seconds(c.Waiter.Interval),
		FlagEnvVars: flagEnvVars(c.Waiter.FlagEnvVars),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func flagEnvVars(value any) []string {
	switch v := value.(type) {
	case string:
		return waiter.ParseFlagEnvVars(v)
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if name := strings.TrimSpace(fmt.Sprint(item)); name != "" {
				names = append(names, name)
			}
		}
		return names
	case []string:
		return v
	default:
		return nil
	}
}
