// Released under an MIT license. See LICENSE.

// Package num provides setq's number type.
package num

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/setq/internal/common"
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/integer"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
	"github.com/nukata/goarith"
)

const name = "number"

// T (num) wraps a goarith.Number. Integers grow into big integers as
// needed. Once a float is involved in an operation the result is a float.
type T struct {
	float bool
	v     goarith.Number
}

type num = T

// New creates a new num cell from a string. It panics if s is not a number.
func New(s string) cell.I {
	n, ok := Parse(s)
	if !ok {
		panic("'" + s + "' is not a valid number")
	}

	return n
}

// Parse reads s as an integer or, failing that, as a float.
func Parse(s string) (*num, bool) {
	z := &big.Int{}
	if _, ok := z.SetString(s, 10); ok {
		return &num{v: goarith.AsNumber(z)}, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}

	return nil, false
}

// Big creates a num from the integer z.
func Big(z *big.Int) *num {
	return &num{v: goarith.AsNumber(z)}
}

// Float creates a num from the float f.
func Float(f float64) *num {
	return &num{float: true, v: goarith.AsNumber(f)}
}

// Int creates a num from the integer i.
func Int(i int64) *num {
	return &num{v: goarith.AsNumber(big.NewInt(i))}
}

// Bool returns the boolean value of the num n. Zero is false.
func (n *num) Bool() bool {
	return n.v.Cmp(zero()) != 0
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.v.Cmp(To(c).v) == 0
}

// Literal returns the printed representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n. Floats always carry a decimal
// point or exponent so they read back as floats.
func (n *num) String() string {
	s := fmt.Sprint(n.v)

	if n.float && !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

// Methods specific to num.

// Add returns n + m.
func (n *num) Add(m *num) *num {
	return &num{float: n.float || m.float, v: n.v.Add(m.v)}
}

// Cmp compares n and m and returns -1, 0, or +1.
func (n *num) Cmp(m *num) int {
	return n.v.Cmp(m.v)
}

// Float64 returns the value of n as a float64.
func (n *num) Float64() float64 {
	f, err := strconv.ParseFloat(fmt.Sprint(n.v), 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// Int64 returns the value of n as an int64 if n is an integer that fits.
func (n *num) Int64() (int64, bool) {
	if n.float {
		return 0, false
	}

	i, err := strconv.ParseInt(fmt.Sprint(n.v), 10, 64)

	return i, err == nil
}

// IsFloat returns true if n is a float.
func (n *num) IsFloat() bool {
	return n.float
}

// Mul returns n * m.
func (n *num) Mul(m *num) *num {
	return &num{float: n.float || m.float, v: n.v.Mul(m.v)}
}

// Neg returns -n.
func (n *num) Neg() *num {
	return &num{float: n.float, v: zero().Sub(n.v)}
}

// Quo returns n / m as a float. Division by zero yields an infinity or NaN.
func (n *num) Quo(m *num) *num {
	return Float(n.Float64() / m.Float64())
}

// Sign returns -1, 0, or +1 depending on the sign of n.
func (n *num) Sign() int {
	return n.v.Cmp(zero())
}

// Sub returns n - m.
func (n *num) Sub(m *num) *num {
	return &num{float: n.float || m.float, v: n.v.Sub(m.v)}
}

// Functions specific to num.

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	if c == nil {
		panic("nothing cannot be used in a numeric context")
	}

	panic(c.Name() + " cannot be used in a numeric context")
}

func zero() goarith.Number {
	return goarith.AsNumber(big.NewInt(0))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type may hold an integer.
	_ = integer.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
