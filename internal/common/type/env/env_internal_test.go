// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/type/num"
)

func TestLookup(t *testing.T) {
	global := New(nil)
	global.Define("X", num.Int(1))
	global.Define("Y", num.Int(2))

	local := New(global)
	local.Define("X", num.Int(3))

	if r := local.Lookup("X"); r == nil || !r.Get().Equal(num.Int(3)) {
		t.Fatalf("expected the local X")
	}

	if r := local.Lookup("Y"); r == nil || !r.Get().Equal(num.Int(2)) {
		t.Fatalf("expected the global Y")
	}

	if local.Lookup("Z") != nil {
		t.Fatalf("expected Z to be unbound")
	}

	if local.Local("Y") != nil {
		t.Fatalf("expected Y to be absent locally")
	}

	if local.Find("Y") != global || local.Global() != global {
		t.Fatalf("expected Y to be found in the global env")
	}
}

func TestNames(t *testing.T) {
	global := New(nil)
	global.Define("B", num.Int(1))
	global.Define("A", num.Int(1))

	local := New(global)
	local.Define("B", num.Int(2))

	names := local.Names()
	if len(names) != 2 || names[0] != "B" || names[1] != "A" {
		t.Fatalf("expected [B A], got %v", names)
	}

	if !global.Remove("A") || global.Lookup("A") != nil {
		t.Fatalf("expected A to be removed")
	}
}
