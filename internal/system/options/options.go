// Released under an MIT license. See LICENSE.

// Package options parses and holds setq's command-line options.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "setq 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	depth       int
	interactive bool
	script      string
	stdin       bool
	usage       = `setq

Usage:
  setq [-d DEPTH] SCRIPT
  setq [-d DEPTH] -c COMMAND
  setq [-d DEPTH] [-i] [-s]
  setq -h
  setq -v

Arguments:
  SCRIPT     Path to setq program. One term per line.

Options:
  -c, --command=COMMAND  Evaluate the specified program text.
  -d, --depth=DEPTH      Limit nested procedure calls [default: 10000].
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read program text from stdin.
  -h, --help             Display this help.
  -v, --version          Print setq version.

If setq's stdin is a TTY, and setq was invoked with no SCRIPT or COMMAND,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the program text passed with -c.
func Command() string {
	return command
}

// Depth returns the limit on nested procedure calls.
func Depth() int {
	return depth
}

// Interactive returns true if setq should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses the command-line arguments.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	apply(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the program file, if any.
func Script() string {
	return script
}

// Stdin returns true if program text should be read from stdin.
func Stdin() bool {
	return stdin || (script == "" && command == "")
}

func apply(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	stdin, _ = opts.Bool("--stdin")

	depth = 0
	if s, _ := opts.String("--depth"); s != "" {
		depth, _ = strconv.Atoi(s)
	}

	interactive = script == "" && command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
