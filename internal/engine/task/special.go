// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
	"github.com/michaelmacinnis/setq/internal/common/type/boolean"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/common/type/sym"
	"github.com/michaelmacinnis/setq/internal/common/validate"
)

func (t *T) append(args []cell.I, e *env.T) cell.I {
	vals := t.Collect(args, e, resolved)

	lists := make([]*list.T, 0, len(vals))
	for _, v := range vals {
		l, ok := v.(*list.T)
		if !ok {
			return t.mismatch()
		}

		lists = append(lists, l)
	}

	t.Print(list.Join(lists...))

	return nil
}

func (t *T) assoc(args []cell.I, e *env.T) cell.I {
	vals := t.Collect(args, e, Policy{Modes: []Mode{Literal, Resolve}})
	validate.Fixed("ASSOC", vals, 2, 2)

	pairs, ok := vals[1].(*list.T)
	if !ok {
		return t.mismatch()
	}

	found := false

	for _, p := range pairs.Items() {
		if l, ok := p.(*list.T); ok && l.Len() > 0 && l.Get(0) != nil && l.Get(0).Equal(vals[0]) {
			t.Print(l)

			found = true
		}
	}

	if !found {
		return t.nothing()
	}

	return nil
}

func (t *T) atom(args []cell.I, e *env.T) cell.I {
	v := validate.Fixed("ATOM", t.Collect(args, e, evaluated), 1, 1)[0]

	return boolean.Bool(num.Is(v) || sym.Is(v) || boolean.Is(v))
}

func (t *T) branch(args []cell.I, e *env.T) cell.I {
	validate.Fixed("IF", args, 2, 3)

	if truth.Value(t.Eval(args[0], e)) {
		return t.Eval(args[1], e)
	}

	if len(args) == 2 {
		return t.nothing()
	}

	return t.Eval(args[2], e)
}

func (t *T) call(head cell.I, args []cell.I, e *env.T) cell.I {
	f, ok := t.Eval(head, e).(Applicable)
	if !ok {
		errsys.Raise(errsys.Type, "%s is not a procedure", literal.String(head))
	}

	var target *sym.T

	if len(args) > 0 {
		s, ok := args[0].(*sym.T)
		if ok && s != sym.Quote && s != sym.Delimiter && e.Lookup(s.String()) == nil {
			target = s
			args = args[1:]
		}
	}

	r := f.Apply(t, t.Collect(args, e, Policy{Modes: []Mode{Evaluate}, Splice: true}))
	if target != nil {
		k := target.String()
		e.Define(k, bindable(k, r))
	}

	return r
}

func (t *T) car(args []cell.I, e *env.T) cell.I {
	v := validate.Fixed("CAR", t.Collect(args, e, resolved), 1, 1)[0]

	l, ok := v.(*list.T)
	if !ok {
		return t.mismatch()
	}

	if l.Len() == 0 {
		return t.nothing()
	}

	t.Print(l.Get(0))

	return nil
}

func (t *T) cdr(args []cell.I, e *env.T) cell.I {
	if quoted(args) {
		v := validate.Fixed("CDR", t.Collect(args, e, literally), 1, 1)[0]

		l, ok := v.(*list.T)
		if !ok {
			return t.mismatch()
		}

		t.Print(l.Tail(1))

		return nil
	}

	validate.Fixed("CDR", args, 1, 1)

	s, ok := args[0].(*sym.T)
	if !ok {
		return t.mismatch()
	}

	r := e.Lookup(s.String())
	if r == nil {
		errsys.Raise(errsys.Unbound, "%s", s.Canonical())
	}

	l, ok := r.Get().(*list.T)
	if !ok {
		return t.mismatch()
	}

	r.Set(l.Tail(1))

	return nil
}

func (t *T) lambda(args []cell.I, e *env.T) cell.I {
	validate.Fixed("LAMBDA", args, 2, 2)

	l, ok := args[0].(*list.T)
	if !ok {
		errsys.Raise(errsys.Type, "LAMBDA: expected a parameter list")
	}

	params := make([]string, 0, l.Len())

	for _, p := range l.Items() {
		s, ok := p.(*sym.T)
		if !ok || s == sym.Quote || s == sym.Delimiter {
			errsys.Raise(errsys.Type, "LAMBDA: %s is not a parameter name", literal.String(p))
		}

		params = append(params, s.String())
	}

	return &Procedure{Body: args[1], Params: params, Scope: e}
}

func (t *T) member(args []cell.I, e *env.T) cell.I {
	vals := t.Collect(args, e, Policy{Modes: []Mode{Literal, Resolve}})
	validate.Fixed("MEMBER", vals, 2, 2)

	l, ok := vals[1].(*list.T)
	if !ok {
		return t.mismatch()
	}

	i := l.Index(vals[0])
	if i < 0 {
		return t.nothing()
	}

	t.Print(l.Tail(i))

	return nil
}

func (t *T) nth(args []cell.I, e *env.T) cell.I {
	vals := validate.Fixed("NTH", t.Collect(args, e, evaluated), 2, 2)

	n, ok := vals[0].(*num.T)
	if !ok || n.IsFloat() {
		return t.mismatch()
	}

	l, ok := vals[1].(*list.T)
	if !ok {
		return t.mismatch()
	}

	i, ok := n.Int64()
	if !ok || i < 0 || i >= int64(l.Len()) {
		return t.nothing()
	}

	return l.Get(int(i))
}

func (t *T) null(args []cell.I, e *env.T) cell.I {
	validate.Fixed("NULL", args, 1, 2)

	if s, ok := args[0].(*sym.T); ok && !quoted(args) && !stringed(args) {
		validate.Fixed("NULL", args, 1, 1)
		t.Print(boolean.Bool(e.Lookup(s.String()) == nil))

		return nil
	}

	v := validate.Fixed("NULL", t.Collect(args, e, evaluated), 1, 1)[0]

	l, ok := v.(*list.T)
	t.Print(boolean.Bool(ok && l.Len() == 0))

	return nil
}

func (t *T) remove(args []cell.I, e *env.T) cell.I {
	vals := t.Collect(args, e, Policy{Modes: []Mode{Literal, Resolve}})
	validate.Fixed("REMOVE", vals, 2, 2)

	l, ok := vals[1].(*list.T)
	if !ok {
		return t.mismatch()
	}

	l.Remove(vals[0])
	t.Print(l)

	return nil
}

func (t *T) set(args []cell.I, e *env.T) cell.I {
	_, rest := validate.Variadic("SET!", args, 2, 1)

	s, ok := args[0].(*sym.T)
	if !ok {
		errsys.Raise(errsys.Type, "SET!: expected a symbol")
	}

	v := validate.Fixed("SET!", t.Collect(rest, e, evaluated), 1, 1)[0]

	r := e.Lookup(s.String())
	if r == nil {
		errsys.Raise(errsys.Unbound, "%s", s.Canonical())
	}

	r.Set(bindable(s.String(), v))

	return nil
}

func (t *T) setq(args []cell.I, e *env.T) cell.I {
	_, rest := validate.Variadic("SETQ", args, 2, 1)

	s, ok := args[0].(*sym.T)
	if !ok || s == sym.Quote || s == sym.Delimiter {
		errsys.Raise(errsys.Type, "SETQ: expected a symbol")
	}

	k := s.String()

	switch {
	case quoted(rest):
		vals := t.Collect(rest, e, literally)

		var v cell.I = list.New(vals...)
		if len(vals) == 1 {
			v = vals[0]
		}

		v = bindable(k, v)
		e.Define(k, v)
		t.Print(v)

	case stringed(rest):
		v := validate.Fixed("SETQ", t.Collect(rest, e, literally), 1, 1)[0]
		e.Define(k, v)
		t.Print(v)

	default:
		v := t.Eval(validate.Fixed("SETQ", rest, 1, 1)[0], e)
		e.Define(k, bindable(k, v))
	}

	return nil
}

func (t *T) stringp(args []cell.I, e *env.T) cell.I {
	v := validate.Fixed("STRINGP", t.Collect(args, e, evaluated), 1, 1)[0]

	return boolean.Bool(sym.Is(v))
}

func (t *T) subst(args []cell.I, e *env.T) cell.I {
	vals := t.Collect(args, e, Policy{Modes: []Mode{Literal, Literal, Resolve}})
	validate.Fixed("SUBST", vals, 3, 3)

	l, ok := vals[2].(*list.T)
	if !ok {
		return t.mismatch()
	}

	i := l.Index(vals[1])
	if i < 0 {
		return t.nothing()
	}

	l.Insert(i, vals[0])
	l.Delete(i + 1)
	t.Print(l)

	return nil
}
