// Released under an MIT license. See LICENSE.

// Package env provides setq's environment type.
package env

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/reference"
	"github.com/michaelmacinnis/setq/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to the enclosing env, if any.
// A child never owns its parent. The global env has no parent.
type T struct {
	names    *hash.T
	previous *T
}

type env = T

// New creates a new env enclosed by previous.
func New(previous *env) *env {
	return &env{
		names:    hash.New(),
		previous: previous,
	}
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) {
	e.names.Set(k, v)
}

// Enclosing returns the enclosing env.
func (e *env) Enclosing() *env {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && o == e
}

// Find returns the innermost env where k is bound or nil.
func (e *env) Find(k string) *env {
	for ; e != nil; e = e.previous {
		if e.names.Get(k) != nil {
			return e
		}
	}

	return nil
}

// Global returns the outermost env in e's chain.
func (e *env) Global() *env {
	for e.previous != nil {
		e = e.previous
	}

	return e
}

// Local retrieves the binding for k in e only.
func (e *env) Local(k string) reference.I {
	return e.names.Get(k)
}

// Lookup retrieves the binding for k searching e and then each enclosing
// env. It returns nil if k is not bound anywhere in the chain.
func (e *env) Lookup(k string) reference.I {
	if f := e.Find(k); f != nil {
		return f.names.Get(k)
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the names visible from e, innermost first, without duplicates.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for ; e != nil; e = e.previous {
		for _, k := range e.names.Names() {
			if !seen[k] {
				seen[k] = true

				names = append(names, k)
			}
		}
	}

	return names
}

// Remove deletes the name k from the env e.
func (e *env) Remove(k string) bool {
	return e.names.Del(k)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}
