// Released under an MIT license. See LICENSE.

// Package sym provides setq's symbol cell type.
package sym

import (
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/setq/internal/common"
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
)

const (
	name  = "symbol"
	short = 8
)

// T (sym) wraps Go's string type. Short strings are interned.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	// Quote is the quote marker. It means the next element is data.
	Quote cell.I

	// Delimiter opens and closes a double-quoted string span.
	Delimiter cell.I
)

// New creates a sym cell. Case is normalized by the lexer, not here.
func New(v string) cell.I {
	return symnew(v)
}

// Canonical returns the text of the sym s in a form that cannot be
// confused with a sequence of symbols.
func (s *sym) Canonical() string {
	v := string(*s)

	if v == "" || strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return adapted.CanonicalString(v)
	}

	return v
}

// Bool returns the boolean value of the sym s.
func (s *sym) Bool() bool {
	return len(*s) > 0
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the printed representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// Named returns true if c is a sym with the text v.
func Named(c cell.I, v string) bool {
	s, ok := c.(*sym)

	return ok && string(*s) == v
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + name)
}

//nolint:gochecknoglobals
var cache = map[string]*sym{}

func init() { //nolint:gochecknoinits
	Quote = New("'")
	Delimiter = New(`"`)
}

func symnew(v string) *sym {
	if p, ok := cache[v]; ok {
		return p
	}

	s := sym(v)
	p := &s

	if len(v) <= short {
		cache[v] = p
	}

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)

	// The sym type has a truth value.
	_ = truth.I(&t)
}
