// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for lines of setq code.
package engine

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/setq/internal/common/interface/cell"
	"github.com/michaelmacinnis/setq/internal/common/interface/literal"
	"github.com/michaelmacinnis/setq/internal/common/type/env"
	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/common/type/list"
	"github.com/michaelmacinnis/setq/internal/common/type/num"
	"github.com/michaelmacinnis/setq/internal/engine/boot"
	"github.com/michaelmacinnis/setq/internal/engine/task"
	"github.com/michaelmacinnis/setq/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating setq code.
// It owns the global environment for its lifetime.
type T struct {
	global *env.T
	out    io.Writer
	reader *reader.T
	task   *task.T
}

// New creates a new engine that reads lines labelled name, writes to out,
// and allows procedure calls to nest depth deep.
func New(name string, out io.Writer, depth int) *T {
	global := env.New(nil)
	task.Actions(global)

	e := &T{
		global: global,
		out:    out,
		reader: reader.New(name),
		task:   task.New(global, out, depth),
	}

	prelude := task.New(global, io.Discard, depth)

	r := reader.New("boot")
	for _, line := range strings.Split(boot.Script(), "\n") {
		c, err := r.Scan(line)
		if err == nil && c != nil {
			_, err = evaluate(prelude, c)
		}

		if err != nil {
			// Error in the prelude. This should never happen.
			panic(err.Error())
		}
	}

	return e
}

// Evaluate evaluates the term c in the global environment.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return evaluate(e.task, c)
}

// Global returns the engine's global environment.
func (e *T) Global() *env.T {
	return e.global
}

// Line reads the first term on line, evaluates it and prints the result.
// Lines without a term are skipped.
func (e *T) Line(line string) error {
	c, err := e.reader.Scan(line)
	if err != nil || c == nil {
		return err
	}

	r, err := e.Evaluate(c)
	if err != nil {
		return err
	}

	switch r.(type) {
	case *list.T:
		_, err = io.WriteString(e.out, literal.String(r)+" \n")
	case *num.T:
		_, err = io.WriteString(e.out, literal.String(r)+"\n")
	}

	return err
}

// Names returns the special form keywords and every globally bound name.
func (e *T) Names() []string {
	names := append(task.Keywords(), e.global.Names()...)
	sort.Strings(names)

	return names
}

// Run passes every line read from r to Line. Errors for a line are passed
// to report and processing continues with the next line.
func (e *T) Run(r io.Reader, report func(error)) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 16*bufio.MaxScanTokenSize)

	for s.Scan() {
		if err := e.Line(s.Text()); err != nil {
			report(err)
		}
	}

	return s.Err()
}

func evaluate(t *task.T, c cell.I) (r cell.I, err error) {
	defer func() {
		if v := recover(); v != nil {
			t.Reset()

			err = errsys.Recovered(v)
		}
	}()

	return t.Eval(c, t.Global()), nil
}
