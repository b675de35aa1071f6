// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/validate"
	"github.com/michaelmacinnis/setq/internal/engine/commands"
)

// Actions associates the native procedures with their names in e.
func Actions(e *env.T) {
	e.Define("APPLY", NewBuiltin("APPLY", apply))
	e.Define("MAP", NewBuiltin("MAP", mapping))
	e.Define("PRINT", NewBuiltin("PRINT", display))
	e.Define("PROCEDURE?", NewBuiltin("PROCEDURE?", isProcedure))

	for k, v := range commands.Constants() {
		e.Define(k, v)
	}

	for k, v := range commands.Functions() {
		e.Define(k, f(k, v))
	}
}

func apply(t *T, args []cell.I) cell.I {
	v, args := validate.Variadic("APPLY", args, 1, 1)

	return applicable("APPLY", v[0]).Apply(t, commands.Spread(args))
}

func isProcedure(_ *T, args []cell.I) cell.I {
	v := validate.Fixed("PROCEDURE?", args, 1, 1)

	_, ok := v[0].(Applicable)

	return boolean.Bool(ok)
}

func mapping(t *T, args []cell.I) cell.I {
	v, args := validate.Variadic("MAP", args, 1, 1)

	p := applicable("MAP", v[0])

	args = commands.Spread(args)

	r := make([]cell.I, len(args))
	for i, a := range args {
		r[i] = p.Apply(t, []cell.I{a})
	}

	return list.New(r...)
}

func display(t *T, args []cell.I) cell.I {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = literal.String(a)
	}

	t.Emit(strings.Join(s, " "))

	return nil
}

// Helper functions.

func applicable(label string, c cell.I) Applicable {
	a, ok := c.(Applicable)
	if !ok {
		errsys.Raise(errsys.Type, "%s: expected a procedure", label)
	}

	return a
}

func f(name string, fn func([]cell.I) cell.I) *Builtin {
	return NewBuiltin(name, func(_ *T, args []cell.I) cell.I {
		return fn(args)
	})
}
