package wpcli

import (
	"errors"
	"fmt"
)

// ErrNotTerminated is returned when the wp-cli process reports no exit status
var ErrNotTerminated = errors.New("wp-cli process did not terminate")

// ConfigError reports an invalid runner configuration
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("wp-cli configuration %s: %s", e.Field, e.Message)
}

// CommandError is returned, when throwing, for a wp-cli command exiting with a nonzero status
type CommandError struct {
	Status int
	Output string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("wp-cli terminated with status [%d] and output [%s]; "+
		"set the `throw` parameter to `false` to get the status back instead", e.Status, e.Output)
}
