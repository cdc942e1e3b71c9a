package transform

import (
	"errors"
	"fmt"
	"sort"
)

// Backend names registered in [DefaultRegistry].
const (
	BackendAlgoFFT = "algofft"
	BackendGonum   = "gonum"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendAlgoFFT

// Registry maps backend names to engine factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given backend name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("transform: empty backend name")
	}

	if factory == nil {
		return errors.New("transform: nil factory")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateBackend, name)
	}

	r.factories[name] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err.Error())
	}
}

// Lookup returns the factory for the given backend name, or nil.
func (r *Registry) Lookup(name string) Factory {
	return r.factories[name]
}

// Factory returns the factory for name. An empty name selects DefaultBackend.
func (r *Registry) Factory(name string) (Factory, error) {
	if name == "" {
		name = DefaultBackend
	}
	f := r.factories[name]
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return f, nil
}

// Names returns the registered backend names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry holds the built-in backends.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(BackendAlgoFFT, newAlgoFFTEngine)
	r.MustRegister(BackendGonum, newGonumEngine)
	return r
}

// New creates an engine of the given size using a backend from DefaultRegistry.
func New(backend string, size int) (Engine, error) {
	f, err := DefaultRegistry.Factory(backend)
	if err != nil {
		return nil, err
	}
	return f(size)
}
