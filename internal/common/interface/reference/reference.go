// Released under an MIT license. See LICENSE.

// Package reference defines the interface for setq's binding type.
package reference

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() cell.I
	Set(cell.I)
}
