// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
)

// Form identifies how a compound term is evaluated.
type Form int

// Forms. Anything that is not a special form is a procedure call.
const (
	Call Form = iota
	Append
	Assoc
	Atom
	Car
	Cdr
	If
	Lambda
	Member
	Nth
	Null
	Remove
	SetBang
	Setq
	Stringp
	Subst

	forms
)

var keywords = [forms]string{
	Call:    "",
	Append:  "APPEND",
	Assoc:   "ASSOC",
	Atom:    "ATOM",
	Car:     "CAR",
	Cdr:     "CDR",
	If:      "IF",
	Lambda:  "LAMBDA",
	Member:  "MEMBER",
	Nth:     "NTH",
	Null:    "NULL",
	Remove:  "REMOVE",
	SetBang: "SET!",
	Setq:    "SETQ",
	Stringp: "STRINGP",
	Subst:   "SUBST",
}

var special = map[string]Form{}

// Classify returns the form for a compound term whose head is c.
func Classify(c cell.I) Form {
	if s, ok := c.(*sym.T); ok {
		if f, ok := special[s.String()]; ok {
			return f
		}
	}

	return Call
}

// Keywords returns the names of the special forms.
func Keywords() []string {
	return append([]string(nil), keywords[Call+1:]...)
}

// String returns the keyword for the form f.
func (f Form) String() string {
	if f == Call {
		return "CALL"
	}

	return keywords[f]
}

func (t *T) form(l *list.T, e *env.T) cell.I {
	if l.Len() == 0 || isNumberForm(l) {
		return l
	}

	args := l.Items()[1:]

	head := l.Get(0)
	switch Classify(head) {
	case Append:
		return t.append(args, e)
	case Assoc:
		return t.assoc(args, e)
	case Atom:
		return t.atom(args, e)
	case Call:
		return t.call(head, args, e)
	case Car:
		return t.car(args, e)
	case Cdr:
		return t.cdr(args, e)
	case If:
		return t.branch(args, e)
	case Lambda:
		return t.lambda(args, e)
	case Member:
		return t.member(args, e)
	case Nth:
		return t.nth(args, e)
	case Null:
		return t.null(args, e)
	case Remove:
		return t.remove(args, e)
	case SetBang:
		return t.set(args, e)
	case Setq:
		return t.setq(args, e)
	case Stringp:
		return t.stringp(args, e)
	case Subst:
		return t.subst(args, e)
	case forms:
	}

	panic("unknown form: " + head.Name())
}

func init() { //nolint:gochecknoinits
	for f, k := range keywords {
		if k != "" {
			special[k] = Form(f)
		}
	}
}
