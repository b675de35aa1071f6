// Released under an MIT license. See LICENSE.

package task

import (
	"strings"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

// Mode says what happens to an argument not preceded by a quote marker.
type Mode int

// Argument modes.
const (
	Evaluate Mode = iota // Evaluate the argument.
	Literal              // Take the argument as written.
	Resolve              // A symbol must be bound and yields its value.
)

// Policy describes how a form collects its arguments.
//
// Modes assigns a mode to each value position. The last mode applies to
// every position past the end of Modes. An element preceded by a quote
// marker is always taken as written. If Splice is set, a quoted list
// contributes its elements instead of itself. A double-quoted span is
// always folded into a single symbol.
type Policy struct {
	Modes  []Mode
	Splice bool
}

var (
	evaluated = Policy{Modes: []Mode{Evaluate}}
	literally = Policy{Modes: []Mode{Literal}}
	resolved  = Policy{Modes: []Mode{Resolve}}
)

func (p Policy) mode(i int) Mode {
	if len(p.Modes) == 0 {
		return Evaluate
	}

	if i >= len(p.Modes) {
		i = len(p.Modes) - 1
	}

	return p.Modes[i]
}

// Collect returns the values for the raw arguments args according to p.
func (t *T) Collect(args []cell.I, e *env.T, p Policy) []cell.I {
	vals := make([]cell.I, 0, len(args))

	for i := 0; i < len(args); i++ {
		a := args[i]

		switch {
		case a == sym.Quote:
			i++
			if i == len(args) {
				errsys.Raise(errsys.Syntax, "quote marker without a following element")
			}

			q := args[i]
			if l, ok := q.(*list.T); ok {
				if p.Splice {
					vals = append(vals, l.Items()...)
				} else {
					vals = append(vals, l.Copy())
				}
			} else {
				vals = append(vals, q)
			}

		case a == sym.Delimiter:
			s, n := span(args[i+1:])
			vals = append(vals, s)
			i += n

		default:
			vals = append(vals, t.take(p.mode(len(vals)), a, e))
		}
	}

	return vals
}

func (t *T) take(m Mode, c cell.I, e *env.T) cell.I {
	switch m {
	case Evaluate:
		return t.Eval(c, e)
	case Literal:
		return c
	case Resolve:
		if s, ok := c.(*sym.T); ok {
			return t.resolve(s, e)
		}

		return c
	}

	return c
}

// span folds the elements up to the closing delimiter into one symbol.
// It returns the symbol and the number of elements consumed, including
// the closing delimiter.
func span(args []cell.I) (cell.I, int) {
	words := []string{}

	for i, a := range args {
		if a == sym.Delimiter {
			return sym.New(strings.Join(words, " ")), i + 1
		}

		words = append(words, literal.String(a))
	}

	errsys.Raise(errsys.Syntax, "unterminated string")

	return nil, 0
}

// quoted returns true if args starts with a quote marker.
func quoted(args []cell.I) bool {
	return len(args) > 0 && args[0] == sym.Quote
}

// stringed returns true if args starts with a string delimiter.
func stringed(args []cell.I) bool {
	return len(args) > 0 && args[0] == sym.Delimiter
}
