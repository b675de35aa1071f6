// Released under an MIT license. See LICENSE.

// Package integer converts a setq cell to an int64 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
)

// I (integer) is any type that may hold an integer value.
type I interface {
	Int64() (int64, bool)
}

// Value returns the int64 value for a cell. It panics if c has no
// integer value that fits in an int64.
func Value(c cell.I) int64 {
	if c == nil {
		panic("nothing cannot be converted to an integer value")
	}

	n, ok := c.(I)
	if !ok {
		panic(c.Name() + " cannot be converted to an integer value")
	}

	i, ok := n.Int64()
	if !ok {
		panic(c.Name() + " does not have an integer value")
	}

	return i
}
