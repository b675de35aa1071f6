// Released under an MIT license. See LICENSE.

package commands

import (
	"os"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/setq/internal/common"
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

func begin(args []cell.I) cell.I {
	if len(args) == 0 {
		return nil
	}

	return args[len(args)-1]
}

func debug(args []cell.I) cell.I {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = canonical(a)
	}

	_, _ = os.Stderr.WriteString(strings.Join(s, " ") + "\n")

	return boolean.True
}

func match(args []cell.I) cell.I {
	v := validate.Fixed("MATCH", args, 2, 2)

	ok, err := adapted.Match(common.String(v[0]), common.String(v[1]))
	if err != nil {
		panic(err.Error())
	}

	return boolean.Bool(ok)
}

// canonical renders c so that symbols holding whitespace read back.
func canonical(c cell.I) string {
	switch c := c.(type) {
	case *sym.T:
		return c.Canonical()
	case *list.T:
		s := make([]string, c.Len())
		for i, e := range c.Items() {
			s[i] = canonical(e)
		}

		return "(" + strings.Join(s, " ") + ")"
	}

	return literal.String(c)
}
