// Released under an MIT license. See LICENSE.

// Package frame provides setq's activation record type.
package frame

import (
	"github.com/michaelmacinnis/setq/internal/common/type/env"
)

// T (frame) is an activation record. Frames are linked to the frame of
// the caller so the evaluator can bound nesting and report where it was.
type T struct {
	depth    int
	label    string
	previous *frame
	scope    *env.T
}

type frame = T

// New creates a new frame for a call to label with the scope s.
// The previous frame p may be nil for the top level.
func New(label string, s *env.T, p *frame) *frame {
	return &frame{
		depth:    p.Depth() + 1,
		label:    label,
		previous: p,
		scope:    s,
	}
}

// Depth returns the number of active frames, including f.
func (f *frame) Depth() int {
	if f == nil {
		return 0
	}

	return f.depth
}

// Label returns the name of the procedure that created the frame f.
func (f *frame) Label() string {
	return f.label
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Scope returns the frame's scope.
func (f *frame) Scope() *env.T {
	return f.scope
}

// Trace returns the labels of f and every frame below it, innermost first.
func (f *frame) Trace() []string {
	var labels []string

	for ; f != nil; f = f.previous {
		labels = append(labels, f.label)
	}

	return labels
}
