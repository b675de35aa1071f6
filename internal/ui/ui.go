// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for setq.
package ui

import (
	"os"
	"strings"

	"github.com/michaelmacinnis/setq/internal/system/history"
	"github.com/peterh/liner"
)

// Engine is the interface for things that evaluate lines of program text.
type Engine interface {
	Line(line string) error
	Names() []string
}

// Run prompts for lines and passes them to e until end of input. Errors
// for a line are passed to report.
func Run(e Engine, report func(error)) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	if err := history.Load(cli.ReadHistory); err != nil {
		println(err.Error())
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e.Names))

	for {
		merr := uncooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		line, err := cli.Prompt("> ")

		merr = cooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			_, _ = os.Stdout.Write([]byte("\n"))

			if err := history.Save(cli.WriteHistory); err != nil {
				println(err.Error())
			}

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		if err := e.Line(line); err != nil {
			report(err)
		}
	}
}

// Completer returns a completer for the word before the cursor. Candidates
// come from names and are matched without regard to case.
func Completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t()'\"") + 1
		prefix := strings.ToUpper(head[start:])

		head = head[:start]

		for _, name := range names() {
			if strings.HasPrefix(name, prefix) {
				completions = append(completions, name)
			}
		}

		return head, completions, tail
	}
}
