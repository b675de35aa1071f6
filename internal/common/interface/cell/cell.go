// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all setq terms.
package cell

// I (cell) is the basic unit of storage in setq. Atoms, forms,
// procedures and environments are all cells.
type I interface {
	Equal(c I) bool
	Name() string
}
