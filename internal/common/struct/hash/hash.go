// Released under an MIT license. See LICENSE.

// Package hash provides setq's name to binding mapping type.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/reference"
	"github.com/michaelmacinnis/setq/internal/common/struct/slot"
)

// T (hash) maps names to bindings.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the binding associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Names returns every name in the hash h in sorted order.
func (h *hash) Names() []string {
	names := make([]string, 0, len(h.m))

	for k := range h.m {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
// An existing binding is updated in place.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.m)
}
