// Released under an MIT license. See LICENSE.

package sym

import (
	"testing"
)

func TestCanonical(t *testing.T) {
	if s := To(New("ABC")).Canonical(); s != "ABC" {
		t.Fatalf("expected ABC, got %s", s)
	}

	if s := To(New("A B")).Canonical(); s == "A B" {
		t.Fatalf("expected a quoted rendering, got %s", s)
	}
}

func TestInterning(t *testing.T) {
	if New("A") != New("A") {
		t.Fatalf("expected the same symbol")
	}

	if !Named(Quote, "'") || !Named(Delimiter, "\"") {
		t.Fatalf("expected the quote marker and delimiter")
	}

	if To(New("")).Bool() {
		t.Fatalf("expected the empty symbol to be false")
	}
}
