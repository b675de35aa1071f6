// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
)

// Applicable is anything that can be the operator of a procedure call.
type Applicable interface {
	cell.I

	Apply(t *T, args []cell.I) cell.I
}

// Builtin is a procedure implemented in Go.
type Builtin struct {
	fn   func(t *T, args []cell.I) cell.I
	name string
}

// NewBuiltin creates a builtin called name that runs fn.
func NewBuiltin(name string, fn func(t *T, args []cell.I) cell.I) *Builtin {
	return &Builtin{fn: fn, name: name}
}

// Apply calls the builtin with already evaluated arguments.
func (b *Builtin) Apply(t *T, args []cell.I) cell.I {
	return b.fn(t, args)
}

// Equal returns true if the cell c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	o, ok := c.(*Builtin)

	return ok && o == b
}

// Literal returns the printed representation of the builtin b.
func (b *Builtin) Literal() string {
	return "#<builtin " + b.name + ">"
}

// Name returns the name of the builtin type.
func (*Builtin) Name() string {
	return "builtin"
}

// Procedure is a closure over the environment where it was created.
type Procedure struct {
	Body   cell.I   // Body of the procedure.
	Params []string // Formal parameters.
	Scope  *env.T   // Environment at creation time.

	label string
}

// Apply binds args to the procedure's parameters in a fresh environment
// enclosed by the procedure's scope and evaluates the body there.
func (p *Procedure) Apply(t *T, args []cell.I) cell.I {
	label := p.label
	if label == "" {
		label = "LAMBDA"
	}

	if len(args) != len(p.Params) {
		errsys.Raise(
			errsys.Arity, "%s: expected %d arguments, passed %d",
			label, len(p.Params), len(args),
		)
	}

	scope := env.New(p.Scope)
	for i, k := range p.Params {
		scope.Define(k, bindable(k, args[i]))
	}

	t.enter(label, scope)
	defer t.leave()

	return t.Eval(p.Body, scope)
}

// Equal returns true if the cell c is the same procedure as p.
func (p *Procedure) Equal(c cell.I) bool {
	o, ok := c.(*Procedure)

	return ok && o == p
}

// Literal returns the printed representation of the procedure p.
func (p *Procedure) Literal() string {
	s := "#<procedure"
	if p.label != "" {
		s += " " + p.label
	}

	return s + " (" + strings.Join(p.Params, " ") + ")>"
}

// Name returns the name of the procedure type.
func (*Procedure) Name() string {
	return "procedure"
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var b Builtin

	// The builtin type is applicable.
	_ = Applicable(&b)

	var p Procedure

	// The procedure type is applicable.
	_ = Applicable(&p)
}
