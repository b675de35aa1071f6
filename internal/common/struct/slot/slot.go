// Released under an MIT license. See LICENSE.

// Package slot provides setq's binding type.
package slot

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/reference"
)

// T (slot) holds the value bound to a name.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot holding the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slot

	// The slot type is a reference.
	_ = reference.I(&t)
}
