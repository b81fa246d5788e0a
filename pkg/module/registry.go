// SPDX-License-Identifier: MPL-2.0

package module

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/exp/slices"
)

var (
	// ErrDuplicateModule is the sentinel error wrapped by DuplicateModuleError.
	ErrDuplicateModule = errors.New("module already registered")
	// ErrRegistrySealed is returned by Register once the registration phase has ended.
	ErrRegistrySealed = errors.New("module registry is sealed")
	// ErrNilFactory is returned when an entry has no factory.
	ErrNilFactory = errors.New("module factory is nil")
)

type (
	// Registry maps module names to entries. At most one entry exists per
	// name. All methods are safe for concurrent use.
	Registry struct {
		mu      sync.RWMutex
		entries map[Name]Entry
		sealed  bool
	}

	// DuplicateModuleError is returned when a name is registered twice.
	// The first registration is kept.
	DuplicateModuleError struct {
		Name Name
	}
)

// Error implements the error interface.
func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %q already registered", e.Name)
}

// Unwrap returns ErrDuplicateModule so callers can use errors.Is for programmatic detection.
func (e *DuplicateModuleError) Unwrap() error { return ErrDuplicateModule }

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Name]Entry)}
}

// Register adds e under e.Name. It fails without modifying the registry if
// the entry is invalid, the name is taken, or the registry is sealed.
func (r *Registry) Register(e Entry) error {
	if err := e.Name.Validate(); err != nil {
		return err
	}
	if e.Factory == nil {
		return fmt.Errorf("module %q: %w", e.Name, ErrNilFactory)
	}
	if err := e.Description.Validate(); err != nil {
		return fmt.Errorf("module %q: %w", e.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("register module %q: %w", e.Name, ErrRegistrySealed)
	}
	if _, exists := r.entries[e.Name]; exists {
		return &DuplicateModuleError{Name: e.Name}
	}
	r.entries[e.Name] = e
	slog.Debug("Registered module.", "name", e.Name)
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name Name) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns all entries sorted by name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	list := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })
	return list
}

// Names returns the registered names in the same order as List.
func (r *Registry) Names() []Name {
	list := r.List()
	names := make([]Name, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Seal ends the registration phase. It is idempotent.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
