// Released under an MIT license. See LICENSE.

// Package literal defines the interface for setq types that can be printed.
package literal

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
)

// I (literal) is any type that has a printed representation.
type I interface {
	Literal() string
}

// String returns the printed representation for a cell. Cells that have
// no literal form (procedures, environments) print as #<name>.
func String(c cell.I) string {
	if c == nil {
		return ""
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
