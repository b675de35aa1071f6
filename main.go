// Released under an MIT license. See LICENSE.

/*
Setq is an interpreter for a small Lisp. Each line of input holds one
term. Terms are evaluated in order against a single global environment:

    (SETQ SQUARE (LAMBDA (X) (* X X)))
    (SQUARE 4)
    (SETQ L '(A B C))
    (MEMBER B L)
    (CDR L)

Numbers and lists that result from a line are printed. Special forms like
MEMBER print their own results. An error abandons the current line only.
*/
package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
	"github.com/michaelmacinnis/setq/internal/engine"
	"github.com/michaelmacinnis/setq/internal/system/options"
	"github.com/michaelmacinnis/setq/internal/ui"
)

func main() {
	options.Parse()

	var (
		name  = "setq"
		input io.Reader
	)

	switch {
	case options.Script() != "":
		name = options.Script()

		f, err := os.Open(name)
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}
		defer f.Close()

		input = f
	case options.Command() != "":
		input = strings.NewReader(options.Command())
	case options.Interactive():
		ui.Run(engine.New(name, os.Stdout, options.Depth()), report)

		return
	default:
		name = "stdin"
		input = os.Stdin
	}

	err := engine.New(name, os.Stdout, options.Depth()).Run(input, report)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func report(err error) {
	var e *errsys.T
	if errors.As(err, &e) && e.Kind() != errsys.Syntax {
		println(e.Kind().String() + ": " + err.Error())

		return
	}

	println(err.Error())
}
