// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the setq language.
//
// The setq lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
//
// Symbols are normalized to upper case. Parentheses, the quote marker
// and the string delimiter are always tokens of their own. Inside a
// double-quoted span, whitespace separates words, semicolons are
// dropped and backslash escapes are interpreted.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/setq/internal/common/struct/loc"
	"github.com/michaelmacinnis/setq/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	saved action // Escaped action.
	state action // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Line: 0,
			Name: label,
		},
		tokens: make(chan *token.T, 16),
	}
}

// Scan passes a line of text to the lexer for scanning. Any tokens
// left over from the previous line are discarded.
func (l *T) Scan(text string) {
	for len(l.tokens) > 0 {
		<-l.tokens
	}

	l.bytes = text
	l.first = 0
	l.index = 0
	l.runes = 1
	l.saved = nil
	l.state = skipWhitespace

	l.source.Char = 1
	l.source.Line++
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if the line is exhausted.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(_ token.Class, w int) {
	l.runes++
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof {
		l.emitWord()

		return nil
	}

	return l.resume()
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Symbol, strings.ToUpper(l.Text()))

			return nil
		case '\t', '\n', '\r', ' ', '"', '\'', '(', ')':
			l.emit(token.Symbol, strings.ToUpper(l.Text()))

			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emitWord()

			return nil
		case '\t', '\n', '\r', ' ', '"':
			l.emitWord()

			return skipStringSpace
		case '\\':
			l.accept(r, w)

			return l.escape(scanWord, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func skipStringSpace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', ';':
			l.skip()
		case '"':
			l.emit(r, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanWord, escapeNextCharacter)
		default:
			return scanWord
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.skip()
		case '\'', '(', ')':
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			l.emit(r, l.Text())

			return skipStringSpace
		default:
			return scanSymbol
		}
	}
}

// Helper functions (well, function).

// emitWord emits the word scanned inside a string span. Semicolons are
// stripped. A word left empty by stripping is dropped.
func (l *T) emitWord() {
	v := strings.ReplaceAll(l.Text(), ";", "")
	if v == "" {
		l.skip()

		return
	}

	if s, err := adapted.ActualBytes(v); err == nil {
		v = s
	}

	l.emit(token.Word, strings.ToUpper(v))
}
