package command

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownCommand is returned when no command is registered under an identifier
var ErrUnknownCommand = errors.New("unknown command")

// Factory builds a command bound to a support facade
type Factory func(support Support) Command

// Registry maps command identifiers to factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory, replacing any previous one for the same identifier
func (r *Registry) Register(id string, factory Factory) {
	r.factories[id] = factory
}

// Build creates the command registered under id
func (r *Registry) Build(id string, support Support) (Command, error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return factory(support), nil
}

// IDs returns the registered identifiers, sorted
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.factories))
}
