package ruleset

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/speckit/pkg/specification"
)

// Registry maps names to specification prototypes. It is safe for concurrent use.
type Registry[T any] struct {
	specs map[string]specification.Specification[T]
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		specs: make(map[string]specification.Specification[T]),
	}
}

// Register adds spec under name.
func (r *Registry[T]) Register(name string, spec specification.Specification[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if specification.IsNil(spec) {
		return errors.Join(ErrNilSpecification, fmt.Errorf("name %q", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[name]; exists {
		return errors.Join(ErrDuplicateSpecification, fmt.Errorf("name %q", name))
	}
	r.specs[name] = spec
	return nil
}

// MustRegister works like Register but panics on error.
func (r *Registry[T]) MustRegister(name string, spec specification.Specification[T]) {
	if err := r.Register(name, spec); err != nil {
		panic(fmt.Sprintf("failed to register specification: %v", err))
	}
}

// Lookup returns the specification registered under name.
func (r *Registry[T]) Lookup(name string) (specification.Specification[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[name]
	return spec, ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.specs))
}

// NameOf returns the first name, in sorted order, registered for a
// specification of type t. Failure.Spec values can be passed directly.
func (r *Registry[T]) NameOf(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range slices.Sorted(maps.Keys(r.specs)) {
		if specification.TypeOf(r.specs[name]) == t {
			return name, true
		}
	}
	return "", false
}
