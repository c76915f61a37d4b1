package convention

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrAlreadyRegistered is returned by Register when a convention with the
// same name already exists in the registry.
var ErrAlreadyRegistered = errors.New("convention already registered")

// Registry is a named catalogue of conventions. It is append-only and safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Convention
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Convention)}
}

// Register adds a convention under its name and returns it for chaining.
// Names collide by string, not by rule identity: registering a second
// convention named like an existing one always fails with
// ErrAlreadyRegistered, even if the rules are identical.
func (r *Registry) Register(c *Convention) (*Convention, error) {
	if c.name == "" {
		return nil, fmt.Errorf("cannot register a convention without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[c.name]; exists {
		return nil, fmt.Errorf("%q: %w", c.name, ErrAlreadyRegistered)
	}
	r.entries[c.name] = c
	return c, nil
}

// Lookup returns the convention registered under the exact name. Absence is
// not an error; the second return is false when nothing matches.
func (r *Registry) Lookup(name string) (*Convention, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.entries[name]
	return c, ok
}

// Names returns the registered convention names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in conventions plus anything callers
// register at the package level.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry the built-ins live in.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a convention to the default registry.
func Register(c *Convention) (*Convention, error) {
	return defaultRegistry.Register(c)
}

// Lookup finds a convention in the default registry by exact name.
func Lookup(name string) (*Convention, bool) {
	return defaultRegistry.Lookup(name)
}

// Names lists the default registry's convention names in sorted order.
func Names() []string {
	return defaultRegistry.Names()
}
