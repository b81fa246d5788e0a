// SPDX-License-Identifier: MPL-2.0

package module

import "github.com/invowk/modrun/pkg/types"

// Entry is the registry record for one module.
//
// The schema is fixed: a name, the factory, and the descriptive fields
// enumerated in Meta. Entries are stored and returned by value.
type Entry struct {
	Name    Name
	Factory Factory
	Meta
}

// Meta holds the descriptive fields of an Entry.
type Meta struct {
	// Description is shown next to the name in the module listing.
	Description types.DescriptionText
	// Usage is an optional one-line argument synopsis, e.g. "[-n] [args...]".
	Usage string
}

// New calls the entry's factory and returns the new Module instance.
func (e Entry) New() Module {
	return e.Factory()
}
