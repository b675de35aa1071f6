// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the setq language.
package parser

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/struct/token"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	last  *token.T        // Most recently consumed token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes the tokens that form exactly one term and returns it.
// If there are no tokens, Parse returns nil and no error.
func (p *T) Parse() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil

		e := errsys.Recovered(r)
		if e.Kind() != errsys.Syntax {
			e = errsys.New(errsys.Syntax, e.Err())
		}

		err = e
	}()

	if p.peek() == nil {
		return nil, nil
	}

	return p.term(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.last = t
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(what string) {
	where := ""
	if p.last != nil {
		where = p.last.Source().String() + ": "
	}

	errsys.Raise(errsys.Syntax, "%sunexpected %s", where, what)
}

// T state functions.

// <term> ::= '(' <term>* ')' | '\'' | '"' | Word | Symbol .
func (p *T) term() cell.I {
	t := p.peek()
	if t == nil {
		p.unexpected("end of input")
	}

	p.consume()

	switch {
	case t.Is('('):
		return p.form()
	case t.Is(')'):
		p.unexpected("')'")
	case t.Is('\''):
		return sym.Quote
	case t.Is('"'):
		return sym.Delimiter
	case t.Is(token.Word):
		return sym.New(t.Value())
	}

	return atom(t.Value())
}

func (p *T) form() cell.I {
	l := list.New()

	for !p.peek().Is(')') {
		l.Append(p.term())
	}

	p.consume()

	return l
}

// Helper functions (well, function).

// atom classifies a symbol token: integer, then float, then symbol.
func atom(s string) cell.I {
	if n, ok := num.Parse(s); ok {
		return n
	}

	return sym.New(s)
}
