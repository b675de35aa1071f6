// Released under an MIT license. See LICENSE.

// Package list provides setq's form type: a mutable, ordered sequence of
// cells. Forms are the only compound structure in setq.
package list

import (
	"strings"

	"github.com/michaelmacinnis/setq/internal/common"
	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/interface/truth"
)

const name = "list"

// T (list) is a form.
type T struct {
	items []cell.I
}

type list = T

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) *list {
	items := make([]cell.I, len(elements))
	copy(items, elements)

	return &list{items: items}
}

// Bool returns the boolean value of the list l. The empty list is false.
func (l *list) Bool() bool {
	return len(l.items) > 0
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	o, ok := c.(*list)
	if !ok || len(o.items) != len(l.items) {
		return false
	}

	for i, e := range l.items {
		if !equal(e, o.items[i]) {
			return false
		}
	}

	return true
}

// Literal returns the printed representation of the list l.
func (l *list) Literal() string {
	s := make([]string, len(l.items))

	for i, e := range l.items {
		s[i] = literal.String(e)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Methods specific to list.

// Append appends each element in elements to l.
func (l *list) Append(elements ...cell.I) *list {
	l.items = append(l.items, elements...)

	return l
}

// Copy returns a copy of l. Nested lists are copied as well.
func (l *list) Copy() *list {
	c := &list{items: make([]cell.I, len(l.items))}

	for i, e := range l.items {
		if n, ok := e.(*list); ok {
			e = n.Copy()
		}

		c.items[i] = e
	}

	return c
}

// Delete removes the element at index i.
func (l *list) Delete(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Get returns the element at index i or nil if i is out of range.
func (l *list) Get(i int) cell.I {
	if i < 0 || i >= len(l.items) {
		return nil
	}

	return l.items[i]
}

// Index returns the index of the first element equal to c or -1.
func (l *list) Index(c cell.I) int {
	for i, e := range l.items {
		if equal(e, c) {
			return i
		}
	}

	return -1
}

// Insert inserts c before the element at index i.
func (l *list) Insert(i int, c cell.I) {
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = c
}

// Items returns the elements of l. The slice is shared with l.
func (l *list) Items() []cell.I {
	return l.items
}

// Len returns the number of elements in l.
func (l *list) Len() int {
	return len(l.items)
}

// Remove deletes every element equal to c and returns how many were deleted.
func (l *list) Remove(c cell.I) int {
	kept := l.items[:0]

	for _, e := range l.items {
		if !equal(e, c) {
			kept = append(kept, e)
		}
	}

	n := len(l.items) - len(kept)

	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}

	l.items = kept

	return n
}

// Tail returns a new list holding the elements of l from index i on.
// If i is past the end the result is empty.
func (l *list) Tail(i int) *list {
	if i > len(l.items) {
		i = len(l.items)
	}

	return New(l.items[i:]...)
}

// Functions specific to list.

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// Join returns a new list with every element from every list in lists.
func Join(lists ...*list) *list {
	n := 0
	for _, l := range lists {
		n += len(l.items)
	}

	j := &list{items: make([]cell.I, 0, n)}

	for _, l := range lists {
		j.items = append(j.items, l.items...)
	}

	return j
}

// Reverse returns a new list with the elements of l in reverse order.
func Reverse(l *list) *list {
	n := len(l.items)
	r := &list{items: make([]cell.I, n)}

	for i, e := range l.items {
		r.items[n-1-i] = e
	}

	return r
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	if c == nil {
		panic("nothing cannot be used in a list context")
	}

	panic(c.Name() + " cannot be used in a list context")
}

func equal(a, b cell.I) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)

	// The list type has a truth value.
	_ = truth.I(&t)
}
