// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

func add(args []cell.I) cell.I {
	sum := num.Int(0)

	for _, a := range args {
		sum = sum.Add(num.To(a))
	}

	return sum
}

func div(args []cell.I) cell.I {
	v, args := validate.Variadic("/", args, 1, 1)

	quotient := num.To(v[0])
	if len(args) == 0 {
		return divide(num.Int(1), quotient)
	}

	for _, a := range args {
		quotient = divide(quotient, num.To(a))
	}

	return quotient
}

func mul(args []cell.I) cell.I {
	product := num.Int(1)

	for _, a := range args {
		product = product.Mul(num.To(a))
	}

	return product
}

func sub(args []cell.I) cell.I {
	v, args := validate.Variadic("-", args, 1, 1)

	difference := num.To(v[0])
	if len(args) == 0 {
		return difference.Neg()
	}

	for _, a := range args {
		difference = difference.Sub(num.To(a))
	}

	return difference
}

func divide(dividend, divisor *num.T) *num.T {
	if divisor.Sign() == 0 {
		panic("division by zero")
	}

	return dividend.Quo(divisor)
}
