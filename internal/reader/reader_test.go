package reader

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
)

func TestRoundTrip(t *testing.T) {
	r := New("test")

	for _, s := range []string{
		"(1 2 3)",
		"(A (B C) ((D)) E)",
		"(+ 1 2.5)",
		"()",
	} {
		c, err := r.Scan(s)
		if err != nil {
			t.Fatal(err)
		}

		p := literal.String(c)

		d, err := r.Scan(p)
		if err != nil {
			t.Fatal(err)
		}

		if q := literal.String(d); p != q || !c.Equal(d) {
			t.Fatalf("Read (%s) and reread (%s) do not match", p, q)
		}
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	r := New("test")

	if _, err := r.Scan("(a)"); err != nil {
		t.Fatal(err)
	}

	_, err := r.Scan("(b))")
	if err != nil {
		t.Fatalf("Trailing tokens should be ignored; got %v", err)
	}

	_, err = r.Scan("  )")
	if !errsys.Is(err, errsys.Syntax) {
		t.Fatalf("Expected a syntax error; got %v", err)
	}

	if !strings.HasPrefix(err.Error(), "test:3:3: ") {
		t.Fatalf("Expected the error to carry its location; got %q", err.Error())
	}
}

func TestRecoversAfterSyntaxError(t *testing.T) {
	r := New("test")

	if _, err := r.Scan("(a (b"); err == nil {
		t.Fatal("Expected an error")
	}

	c, err := r.Scan("(c)")
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(c); s != "(C)" {
		t.Fatalf("Expected (C); got %s", s)
	}
}
