// Released under an MIT license. See LICENSE.

// Package errsys provides setq's error type.
package errsys

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/setq/internal/common"
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
)

const name = "errsys"

// Kind classifies a failure.
type Kind int

// Kinds of failure.
const (
	Syntax  Kind = iota // Malformed parenthesization.
	Unbound             // Symbol with no binding in the chain.
	Type                // Value of the wrong type.
	Arity               // Wrong number of arguments.
	Depth               // Procedure calls nested too deeply.
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Unbound:
		return "unbound symbol"
	case Type:
		return "type mismatch"
	case Arity:
		return "arity mismatch"
	case Depth:
		return "too deep"
	}

	return "unknown error"
}

// T (errsys) is used to pass an error where a cell is expected.
type T struct {
	error
	kind Kind
}

type errsys = T

// New creates a new errsys of kind k to wrap the error err.
func New(k Kind, err error) *errsys {
	return &errsys{error: err, kind: k}
}

// Errorf creates a new errsys of kind k with a formatted message.
func Errorf(k Kind, format string, a ...interface{}) *errsys {
	return New(k, fmt.Errorf(format, a...))
}

// Raise panics with a new errsys of kind k with a formatted message.
func Raise(k Kind, format string, a ...interface{}) {
	panic(Errorf(k, format, a...))
}

// Bool returns the boolean value of the errsys e.
func (e *errsys) Bool() bool {
	return false
}

// Equal returns true if the cell c is an errsys that wraps the same error.
func (e *errsys) Equal(c cell.I) bool {
	o, ok := c.(*errsys)

	return ok && o == e
}

// Name returns the name of the errsys type.
func (e *errsys) Name() string {
	return name
}

// String returns the text of the errsys e.
func (e *errsys) String() string {
	return e.Error()
}

// Methods specific to errsys.

// Err returns the wrapped error.
func (e *errsys) Err() error {
	return e.error
}

// Kind returns the kind of failure.
func (e *errsys) Kind() Kind {
	return e.kind
}

// Unwrap returns the wrapped error.
func (e *errsys) Unwrap() error {
	return e.error
}

// Functions specific to errsys.

// Is returns true if err is, or wraps, an errsys of kind k.
func Is(err error, k Kind) bool {
	var e *errsys

	return errors.As(err, &e) && e.kind == k
}

// Recovered converts a value passed to panic into an errsys. Plain
// strings and errors are type mismatches raised by the cell packages.
func Recovered(r interface{}) *errsys {
	switch r := r.(type) {
	case *errsys:
		return r
	case error:
		return New(Type, r)
	case string:
		return New(Type, errors.New(r))
	case common.Stringer:
		return New(Type, errors.New(r.String()))
	}

	return New(Type, errors.New("unexpected error"))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errsys

	// The errsys type is a cell.
	_ = cell.I(&t)

	// The errsys type is a stringer.
	_ = common.Stringer(&t)

	// The errsys type has a truth value.
	_ = truth.I(&t)
}
