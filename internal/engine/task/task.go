// Released under an MIT license. See LICENSE.

// Package task provides the setq evaluator.
package task

import (
	"io"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/struct/frame"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

// DefaultDepth is the default limit on nested procedure calls.
const DefaultDepth = 10000

// T (task) evaluates terms. Evaluation is synchronous and runs one
// top-level term at a time. Value-level signals are written to out.
type T struct {
	depth  int
	frame  *frame.T
	global *env.T
	out    io.Writer
}

// New creates a new task that evaluates against global and writes to out.
// Procedure calls may nest at most depth deep.
func New(global *env.T, out io.Writer, depth int) *T {
	if depth <= 0 {
		depth = DefaultDepth
	}

	return &T{
		depth:  depth,
		global: global,
		out:    out,
	}
}

// Emit writes the line s to the task's output.
func (t *T) Emit(s string) {
	_, _ = io.WriteString(t.out, s+"\n")
}

// Eval evaluates the term c in the environment e.
func (t *T) Eval(c cell.I, e *env.T) cell.I {
	switch c := c.(type) {
	case *sym.T:
		return t.resolve(c, e)
	case *list.T:
		return t.form(c, e)
	}

	return c
}

// Global returns the global environment.
func (t *T) Global() *env.T {
	return t.global
}

// Print writes the printed representation of c to the task's output.
func (t *T) Print(c cell.I) {
	t.Emit(literal.String(c))
}

// Reset discards any activation records left by a failed evaluation.
func (t *T) Reset() {
	t.frame = nil
}

// Trace returns the labels of the active procedure calls, innermost first.
func (t *T) Trace() []string {
	return t.frame.Trace()
}

func (t *T) enter(label string, scope *env.T) {
	if t.frame.Depth() >= t.depth {
		errsys.Raise(errsys.Depth, "%s: more than %d nested calls", label, t.depth)
	}

	t.frame = frame.New(label, scope, t.frame)
}

func (t *T) leave() {
	t.frame = t.frame.Previous()
}

// mismatch reports a type mismatch as a value.
func (t *T) mismatch() cell.I {
	t.Emit("ERROR")

	return nil
}

// nothing reports the absence of a result as a value.
func (t *T) nothing() cell.I {
	t.Emit("NIL")

	return nil
}

func (t *T) resolve(s *sym.T, e *env.T) cell.I {
	r := e.Lookup(s.String())
	if r == nil {
		errsys.Raise(errsys.Unbound, "%s", s.Canonical())
	}

	return r.Get()
}

// Helper functions.

// bindable returns the value to store in a binding. Lists are copied so
// that in-place changes through one binding are not seen through another.
func bindable(k string, c cell.I) cell.I {
	switch v := c.(type) {
	case *list.T:
		return v.Copy()
	case *Procedure:
		if v.label == "" {
			v.label = k
		}
	}

	return c
}

func isNumberForm(l *list.T) bool {
	return l.Len() > 0 && num.Is(l.Get(0))
}
