// Released under an MIT license. See LICENSE.

package integer_test

import (
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/integer"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

func TestValue(t *testing.T) {
	if integer.Value(num.Int(7)) != 7 {
		t.Fatalf("expected 7")
	}

	for _, c := range []cell.I{num.Float(1.5), sym.New("A"), nil} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected a panic for %v", c)
				}
			}()

			integer.Value(c)
		}()
	}
}
