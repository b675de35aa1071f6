// Released under an MIT license. See LICENSE.

// Package validate checks argument counts.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
)

// Variadic returns the first max arguments in actual and the remaining
// arguments. It raises an arity error if there are fewer than min.
func Variadic(label string, actual []cell.I, min, max int) ([]cell.I, []cell.I) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		errsys.Raise(errsys.Arity, "%s: expected %s, passed %d", label, s, len(actual))
	}

	if len(actual) < max {
		max = len(actual)
	}

	return actual[:max], actual[max:]
}

// Fixed returns actual if it holds between min and max arguments.
// Otherwise, it raises an arity error.
func Fixed(label string, actual []cell.I, min, max int) []cell.I {
	expected, rest := Variadic(label, actual, min, max)
	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = fmt.Sprintf("%d to %s", min, s)
		}

		errsys.Raise(errsys.Arity, "%s: expected %s, passed %d", label, s, len(actual))
	}

	return expected
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
