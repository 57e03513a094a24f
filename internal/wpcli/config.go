package wpcli

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBin is the wp-cli binary looked up in PATH
	DefaultBin = "wp"
	// DefaultTimeout is used when the configuration has no timeout
	DefaultTimeout = 60 * time.Second
)

// validate is shared: building a validator is expensive
var validate = newValidator()

// Config configures the wp-cli runner.
// Keys that are not fields are passed to wp-cli as options.
type Config struct {
	// Path is the root folder of the target WordPress installation
	Path string `yaml:"path" validate:"required,dir"`
	// Bin is the wp-cli executable, "wp" when empty
	Bin string `yaml:"bin"`
	// Throw makes failures returned as errors, true when unset
	Throw *bool `yaml:"throw"`
	// Timeout in seconds: nil means DefaultTimeout, an empty string, zero or
	// false disable it
	Timeout any `yaml:"timeout"`
	// Env configures the WP_CLI_* variables of the wp-cli process
	Env EnvConfig `yaml:"env"`
	// Options are passed to every wp-cli command, e.g. url, user or skip-plugins
	Options map[string]any `yaml:",inline"`
}

// EnvConfig maps to the environment variables wp-cli reads
type EnvConfig struct {
	CacheDir               string `yaml:"cache-dir"`
	ConfigPath             string `yaml:"config-path"`
	CustomShell            string `yaml:"custom-shell"`
	PackagesDir            string `yaml:"packages-dir"`
	PHP                    string `yaml:"php"`
	PHPArgs                string `yaml:"php-args"`
	StrictArgs             bool   `yaml:"strict-args"`
	DisableAutoCheckUpdate bool   `yaml:"disable-auto-check-update"`
}

// ShouldThrow reports whether failures are returned as errors
func (c Config) ShouldThrow() bool {
	return c.Throw == nil || *c.Throw
}

// Binary returns the wp-cli executable to run
func (c Config) Binary() string {
	if c.Bin == "" {
		return DefaultBin
	}
	return c.Bin
}

// Validate checks the installation path and the timeout
func (c Config) Validate() error {
	if _, err := c.root(); err != nil {
		return err
	}
	_, err := c.timeout()
	return err
}

// root returns the resolved WordPress root folder
func (c Config) root() (string, error) {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return "", fmt.Errorf("validate wp-cli config: %w", err)
		}
		fe := fieldErrs[0]
		if fe.Tag() == "dir" {
			return "", &ConfigError{Field: fe.Field(), Message: fmt.Sprintf("Specified path [%s] is not a directory.", c.Path)}
		}
		return "", &ConfigError{Field: fe.Field(), Message: fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())}
	}

	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return c.Path, nil
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// timeout parses the configured timeout; zero disables it
func (c Config) timeout() (time.Duration, error) {
	invalid := func() error {
		return &ConfigError{Field: "timeout", Message: fmt.Sprintf("Timeout [%v] is not valid.", c.Timeout)}
	}

	var seconds float64
	switch v := c.Timeout.(type) {
	case nil:
		return DefaultTimeout, nil
	case bool:
		if v {
			return 0, invalid()
		}
		return 0, nil
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	case uint64:
		seconds = float64(v)
	case float64:
		seconds = v
	case time.Duration:
		return v, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, invalid()
		}
		seconds = parsed
	default:
		return 0, invalid()
	}

	if seconds < 0 {
		return 0, invalid()
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// Vars returns the WP_CLI_* environment. Unset values are left out.
func (e EnvConfig) Vars() map[string]string {
	vars := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			vars[key] = value
		}
	}

	set("WP_CLI_CACHE_DIR", e.CacheDir)
	set("WP_CLI_CONFIG_PATH", e.ConfigPath)
	set("WP_CLI_CUSTOM_SHELL", e.CustomShell)
	set("WP_CLI_PACKAGES_DIR", e.PackagesDir)
	set("WP_CLI_PHP", e.PHP)
	set("WP_CLI_PHP_ARGS", e.PHPArgs)
	if e.StrictArgs {
		vars["WP_CLI_STRICT_ARGS_MODE"] = "1"
	}
	if e.DisableAutoCheckUpdate {
		vars["WP_CLI_DISABLE_AUTO_CHECK_UPDATE"] = "1"
	}

	return vars
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}
