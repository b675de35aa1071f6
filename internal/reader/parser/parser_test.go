package parser

import (
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
	"github.com/michaelmacinnis/setq/internal/reader/lexer"
)

func parse(t *testing.T, s string) cell.I {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s)

	c, err := New(l.Token).Parse()
	if err != nil {
		t.Fatalf("Parsing %q failed: %v", s, err)
	}

	return c
}

func check(t *testing.T, s string) {
	t.Helper()

	p := literal.String(parse(t, s))
	r := literal.String(parse(t, p))

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func failure(t *testing.T, s string) {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s)

	c, err := New(l.Token).Parse()
	if err == nil {
		t.Fatalf("Expected %q to fail; got %s", s, literal.String(c))
	}

	if !errsys.Is(err, errsys.Syntax) {
		t.Fatalf("Expected a syntax error for %q; got %v", s, err)
	}
}

func TestAtoms(t *testing.T) {
	c := parse(t, "(x 42 2.5 -7 1e3)")

	l := list.To(c)
	if l.Len() != 5 {
		t.Fatalf("Expected 5 elements; got %d", l.Len())
	}

	if !sym.Named(l.Get(0), "X") {
		t.Fatalf("Expected symbol X; got %s", literal.String(l.Get(0)))
	}

	for i, f := range []bool{false, true, false, true} {
		n := num.To(l.Get(i + 1))
		if n.IsFloat() != f {
			t.Fatalf("Expected %s float=%v", n, f)
		}
	}
}

func TestEmpty(t *testing.T) {
	if c := parse(t, "   "); c != nil {
		t.Fatalf("Expected nothing; got %s", literal.String(c))
	}
}

func TestEndOfInput(t *testing.T) {
	failure(t, "(+ 1 (2 3)")
	failure(t, "(")
}

func TestNested(t *testing.T) {
	check(t, "(a (b (c d)) () e)")
}

func TestNumbers(t *testing.T) {
	check(t, "(1 2.5 -3 4e2)")
}

func TestOneTermPerParse(t *testing.T) {
	l := lexer.New("test")

	l.Scan("(a) (b)")

	p := New(l.Token)

	for _, want := range []string{"(A)", "(B)"} {
		c, err := p.Parse()
		if err != nil {
			t.Fatal(err)
		}

		if s := literal.String(c); s != want {
			t.Fatalf("Expected %s; got %s", want, s)
		}
	}
}

func TestQuoteMarker(t *testing.T) {
	l := list.To(parse(t, "(member 'a l)"))

	if l.Get(1) != sym.Quote {
		t.Fatalf("Expected the quote marker; got %s", literal.String(l.Get(1)))
	}
}

func TestStringSpan(t *testing.T) {
	l := list.To(parse(t, `(setq s "1.50 x")`))

	if l.Get(2) != sym.Delimiter || l.Get(5) != sym.Delimiter {
		t.Fatalf("Expected delimiters around the span; got %s", l)
	}

	// Words inside a span are never numbers.
	if !sym.Named(l.Get(3), "1.50") {
		t.Fatalf("Expected symbol 1.50; got %s", literal.String(l.Get(3)))
	}
}

func TestUnexpectedClose(t *testing.T) {
	failure(t, ")")
	failure(t, ") (a)")
}
