// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

func eq(args []cell.I) cell.I {
	return compare("=", args, func(c int) bool { return c == 0 })
}

func ge(args []cell.I) cell.I {
	return compare(">=", args, func(c int) bool { return c >= 0 })
}

func gt(args []cell.I) cell.I {
	return compare(">", args, func(c int) bool { return c > 0 })
}

func le(args []cell.I) cell.I {
	return compare("<=", args, func(c int) bool { return c <= 0 })
}

func lt(args []cell.I) cell.I {
	return compare("<", args, func(c int) bool { return c < 0 })
}

// compare returns true if ok holds for every adjacent pair of arguments.
func compare(label string, args []cell.I, ok func(int) bool) cell.I {
	v, args := validate.Variadic(label, args, 2, 1)

	prev := num.To(v[0])
	for _, a := range args {
		curr := num.To(a)
		if !ok(prev.Cmp(curr)) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}
