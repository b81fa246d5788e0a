// SPDX-License-Identifier: MPL-2.0

package module

import "fmt"

// Registrar binds a module type to its name and metadata. Applying it to a
// Registry performs exactly one registration.
type Registrar struct {
	entry Entry
}

// For returns the Registrar for module type T. The factory allocates a new
// zero T for every invocation. T must implement Module through its pointer
// type; anything else fails to compile.
func For[T any, PT interface {
	*T
	Module
}](name Name, meta Meta) Registrar {
	return Registrar{entry: Entry{
		Name:    name,
		Factory: func() Module { return PT(new(T)) },
		Meta:    meta,
	}}
}

// FromFactory returns a Registrar for modules that need custom construction.
func FromFactory(name Name, factory Factory, meta Meta) Registrar {
	return Registrar{entry: Entry{Name: name, Factory: factory, Meta: meta}}
}

// Name returns the module name the Registrar registers.
func (g Registrar) Name() Name { return g.entry.Name }

// Register inserts the Registrar's entry into r.
func (g Registrar) Register(r *Registry) error {
	return r.Register(g.entry)
}

// RegisterAll applies regs to r in order and stops at the first failure.
func RegisterAll(r *Registry, regs ...Registrar) error {
	for _, g := range regs {
		if err := g.Register(r); err != nil {
			return fmt.Errorf("register modules: %w", err)
		}
	}
	return nil
}

// MustRegister is like RegisterAll but panics on failure. Use it where a bad
// registration is a programming error, such as test fixtures.
func MustRegister(r *Registry, regs ...Registrar) {
	if err := RegisterAll(r, regs...); err != nil {
		panic(err)
	}
}
