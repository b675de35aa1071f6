// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

// isEq compares atoms by value and everything else by identity.
func isEq(args []cell.I) cell.I {
	v := validate.Fixed("EQ?", args, 2, 2)

	if list.Is(v[0]) {
		return boolean.Bool(v[0] == v[1])
	}

	return boolean.Bool(equal(v[0], v[1]))
}

func isEqual(args []cell.I) cell.I {
	v := validate.Fixed("EQUAL?", args, 2, 2)

	return boolean.Bool(equal(v[0], v[1]))
}

func isNumber(args []cell.I) cell.I {
	v := validate.Fixed("NUMBERP?", args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

func not(args []cell.I) cell.I {
	v := validate.Fixed("NOT", args, 1, 1)

	return boolean.Bool(!truth.Value(v[0]))
}

func equal(a, b cell.I) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}
