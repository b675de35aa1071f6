// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/integer"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

func abs(args []cell.I) cell.I {
	n := num.To(validate.Fixed("ABS", args, 1, 1)[0])
	if n.Sign() < 0 {
		return n.Neg()
	}

	return n
}

func atan(args []cell.I) cell.I {
	v := validate.Fixed("ATAN", args, 1, 2)
	if len(v) == 2 {
		return num.Float(math.Atan2(num.To(v[0]).Float64(), num.To(v[1]).Float64()))
	}

	return num.Float(math.Atan(num.To(v[0]).Float64()))
}

func expt(args []cell.I) cell.I {
	v := validate.Fixed("EXPT", args, 2, 2)

	base := num.To(v[0])
	exponent := num.To(v[1])

	n, ok := exponent.Int64()
	if !ok || n < 0 || base.IsFloat() {
		return num.Float(math.Pow(base.Float64(), exponent.Float64()))
	}

	result := num.Int(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}

		base = base.Mul(base)
	}

	return result
}

func log(args []cell.I) cell.I {
	v := validate.Fixed("LOG", args, 1, 2)

	x := math.Log(num.To(v[0]).Float64())
	if len(v) == 2 {
		x /= math.Log(num.To(v[1]).Float64())
	}

	return num.Float(x)
}

func maximum(args []cell.I) cell.I {
	return extreme("MAX", Spread(args), 1)
}

func minimum(args []cell.I) cell.I {
	return extreme("MIN", Spread(args), -1)
}

func pow(args []cell.I) cell.I {
	v := validate.Fixed("POW", args, 2, 2)

	return num.Float(math.Pow(num.To(v[0]).Float64(), num.To(v[1]).Float64()))
}

func round(args []cell.I) cell.I {
	v := validate.Fixed("ROUND", args, 1, 2)

	n := num.To(v[0])
	if len(v) == 1 {
		if !n.IsFloat() {
			return n
		}

		return whole(math.RoundToEven(n.Float64()))
	}

	scale := math.Pow(10, float64(integer.Value(v[1])))

	return num.Float(math.RoundToEven(n.Float64()*scale) / scale)
}

// extreme returns the argument that compares as sign against every other.
func extreme(label string, args []cell.I, sign int) cell.I {
	v, args := validate.Variadic(label, args, 1, 1)

	best := num.To(v[0])
	for _, a := range args {
		if n := num.To(a); n.Cmp(best) == sign {
			best = n
		}
	}

	return best
}

// integral wraps a float function whose result is a whole number.
func integral(label string, fn func(float64) float64) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		n := num.To(validate.Fixed(label, args, 1, 1)[0])
		if !n.IsFloat() {
			return n
		}

		return whole(fn(n.Float64()))
	}
}

// math1 wraps a float function of one argument.
func math1(label string, fn func(float64) float64) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		return num.Float(fn(num.To(validate.Fixed(label, args, 1, 1)[0]).Float64()))
	}
}

// whole converts the whole number f to an integer num.
func whole(f float64) *num.T {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return num.Float(f)
	}

	z, _ := big.NewFloat(f).Int(nil)

	return num.Big(z)
}
