// Released under an MIT license. See LICENSE.

package commands

import (
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

type harness struct {
	*testing.T

	functions map[string]func([]cell.I) cell.I
}

func setup(t *testing.T) *harness {
	return &harness{T: t, functions: Functions()}
}

func (h *harness) call(name string, args ...cell.I) string {
	h.Helper()

	fn, ok := h.functions[name]
	if !ok {
		h.Fatalf("%s is not defined", name)
	}

	return literal.String(fn(args))
}

func (h *harness) expect(expected, name string, args ...cell.I) {
	h.Helper()

	if actual := h.call(name, args...); actual != expected {
		h.Fatalf("%s: expected %q, got %q", name, expected, actual)
	}
}

func (h *harness) panics(name string, args ...cell.I) {
	h.Helper()

	defer func() {
		if recover() == nil {
			h.Fatalf("%s: expected a panic", name)
		}
	}()

	h.call(name, args...)
}

func n(s string) cell.I {
	return num.New(s)
}

func s(v string) cell.I {
	return sym.New(v)
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("0", "+")
	h.expect("6", "+", n("1"), n("2"), n("3"))
	h.expect("3.5", "+", n("1"), n("2.5"))
	h.expect("-4", "-", n("4"))
	h.expect("5", "-", n("10"), n("3"), n("2"))
	h.expect("24", "*", n("2"), n("3"), n("4"))
	h.expect("2.5", "/", n("5"), n("2"))
	h.expect("2.0", "/", n("4"), n("2"))
	h.expect("0.5", "/", n("2"))

	h.panics("/", n("1"), n("0"))
	h.panics("+", n("1"), s("A"))
	h.panics("-")
}

func TestBigIntegers(t *testing.T) {
	h := setup(t)

	h.expect("1267650600228229401496703205376", "EXPT", n("2"), n("100"))
	h.expect("18446744073709551616", "*", n("4294967296"), n("4294967296"))
	h.expect("0.25", "EXPT", n("2"), n("-2"))
}

func TestConstants(t *testing.T) {
	c := Constants()

	for _, k := range []string{"E", "PI", "TAU"} {
		if !num.Is(c[k]) {
			t.Fatalf("%s is not a number", k)
		}
	}

	if pi := num.To(c["PI"]).Float64(); pi < 3.14159 || pi > 3.1416 {
		t.Fatalf("PI is %v", pi)
	}
}

func TestList(t *testing.T) {
	h := setup(t)

	l := list.New(n("2"), n("3"))

	h.expect("(1 2 3)", "CONS", n("1"), l)
	h.expect("(A B C)", "CONS", s("A"), s("B"), s("C"))
	h.expect("(1 2)", "LIST", n("1"), n("2"))
	h.expect("()", "LIST")
	h.expect("2", "LENGTH", l)
	h.expect("3", "LENGTH", s("A"), s("B"), s("C"))
	h.expect("(3 2)", "REVERSE", l)
	h.expect("(C B A)", "REVERSE", s("A"), s("B"), s("C"))
	h.expect("T", "LISTP?", l)
	h.expect("NIL", "LISTP?", n("1"))
	h.expect("T", "NULL?", list.New())
	h.expect("T", "NULL?")
	h.expect("NIL", "NULL?", l)

	if l.Len() != 2 {
		t.Fatalf("REVERSE changed its argument")
	}
}

func TestLogical(t *testing.T) {
	h := setup(t)

	l := list.New(n("1"))

	h.expect("T", "EQ?", s("A"), s("A"))
	h.expect("T", "EQ?", n("1"), n("1"))
	h.expect("T", "EQ?", l, l)
	h.expect("NIL", "EQ?", l, list.New(n("1")))
	h.expect("T", "EQUAL?", l, list.New(n("1")))
	h.expect("T", "NOT", n("0"))
	h.expect("NIL", "NOT", s("A"))
	h.expect("T", "NUMBERP?", n("1.5"))
	h.expect("NIL", "NUMBERP?", s("A"))
}

func TestMatch(t *testing.T) {
	h := setup(t)

	h.expect("T", "MATCH", s("A*"), s("ABC"))
	h.expect("NIL", "MATCH", s("B*"), s("ABC"))
	h.expect("T", "MATCH", s("?B?"), s("ABC"))
}

func TestNumber(t *testing.T) {
	h := setup(t)

	h.expect("5", "ABS", n("-5"))
	h.expect("1.5", "ABS", n("-1.5"))
	h.expect("9", "MAX", n("1"), n("9"), n("3"))
	h.expect("1", "MIN", list.New(n("4"), n("1"), n("3")))
	h.expect("2", "ROUND", n("2.5"))
	h.expect("4", "ROUND", n("3.5"))
	h.expect("7", "ROUND", n("7"))
	h.expect("2.57", "ROUND", n("2.567"), n("2"))
	h.expect("-2", "FLOOR", n("-1.5"))
	h.expect("2", "CEIL", n("1.2"))
	h.expect("-1", "TRUNC", n("-1.7"))
	h.expect("3.0", "SQRT", n("9"))
	h.expect("8.0", "POW", n("2"), n("3"))
	h.expect("0.0", "SIN", n("0"))
	h.expect("0.0", "LOG", n("1"))
}

func TestRelational(t *testing.T) {
	h := setup(t)

	h.expect("T", "<", n("1"), n("2"), n("3"))
	h.expect("NIL", "<", n("1"), n("3"), n("2"))
	h.expect("T", "<=", n("1"), n("1"))
	h.expect("T", "=", n("2"), n("2.0"))
	h.expect("T", ">", n("3"), n("2.5"))
	h.expect("NIL", ">=", n("1"), n("2"))

	h.panics("<", n("1"))
}

func TestSpread(t *testing.T) {
	l := list.New(n("1"), n("2"))

	if r := Spread([]cell.I{l}); len(r) != 2 {
		t.Fatalf("expected the elements of %s", literal.String(l))
	}

	if r := Spread([]cell.I{l, l}); len(r) != 2 || r[0] != l {
		t.Fatalf("expected the arguments unchanged")
	}
}
