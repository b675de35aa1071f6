// Released under an MIT license. See LICENSE.

// Package reader encapsulates the setq lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/reader/lexer"
	"github.com/michaelmacinnis/setq/internal/reader/parser"
)

// T (reader) turns lines of program text into terms.
type T struct {
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{s: lexer.New(name)}
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Scan reads the first term on line. Tokens after the first complete
// term are ignored. It returns nil and no error for a line without tokens.
func (r *reader) Scan(line string) (cell.I, error) {
	r.s.Scan(line)

	return parser.New(r.s.Token).Parse()
}
