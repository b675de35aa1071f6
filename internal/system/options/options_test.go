// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func parse(t *testing.T, terminal bool, argv ...string) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	// A nil argv would make docopt read the test binary's own flags.
	opts, err := p.ParseArgs(usage, append([]string{}, argv...), Version)
	if err != nil {
		t.Fatalf("%v: %v", argv, err)
	}

	apply(opts, terminal)
}

func TestCommand(t *testing.T) {
	parse(t, true, "-c", "(+ 1 2)")

	if Command() != "(+ 1 2)" {
		t.Fatalf("expected the command, got %q", Command())
	}

	if Interactive() || Stdin() {
		t.Fatalf("a command is neither interactive nor read from stdin")
	}
}

func TestDepth(t *testing.T) {
	parse(t, false, "-d", "50", "-s")

	if Depth() != 50 {
		t.Fatalf("expected a depth of 50, got %d", Depth())
	}

	if !Stdin() {
		t.Fatalf("expected stdin")
	}
}

func TestInteractive(t *testing.T) {
	parse(t, true)

	if !Interactive() || !Stdin() {
		t.Fatalf("expected interactive input from stdin")
	}

	parse(t, true, "-i")

	if Interactive() {
		t.Fatalf("expected -i to disable interactive mode")
	}

	parse(t, false, "-i")

	if !Interactive() {
		t.Fatalf("expected -i to enable interactive mode")
	}
}

func TestScript(t *testing.T) {
	parse(t, true, "prog.lsp")

	if Script() != "prog.lsp" {
		t.Fatalf("expected the script path, got %q", Script())
	}

	if Depth() != 10000 {
		t.Fatalf("expected the default depth, got %d", Depth())
	}

	if Interactive() || Stdin() {
		t.Fatalf("a script is neither interactive nor read from stdin")
	}
}
