// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

// cons prepends its first argument to its second. A quoted list argument
// arrives already spliced, so any other shape is the assembled list.
func cons(args []cell.I) cell.I {
	validate.Variadic("CONS", args, 1, 1)

	if len(args) == 2 {
		if l, ok := args[1].(*list.T); ok {
			return list.Join(list.New(args[0]), l)
		}
	}

	return list.New(args...)
}

func isList(args []cell.I) cell.I {
	v := validate.Fixed("LISTP?", args, 1, 1)

	return boolean.Bool(list.Is(v[0]))
}

func isNull(args []cell.I) cell.I {
	v := validate.Fixed("NULL?", args, 0, 1)
	if len(v) == 0 {
		return boolean.True
	}

	l, ok := v[0].(*list.T)

	return boolean.Bool(ok && l.Len() == 0)
}

func length(args []cell.I) cell.I {
	return num.Int(int64(len(Spread(args))))
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}

func reverse(args []cell.I) cell.I {
	return list.Reverse(list.New(Spread(args)...))
}
