// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/michaelmacinnis/setq/internal/common/type/errsys"
)

type harness struct {
	*testing.T

	engine *T
	out    *bytes.Buffer
}

func setup(t *testing.T, depth int) *harness {
	out := &bytes.Buffer{}

	return &harness{T: t, engine: New("test", out, depth), out: out}
}

func (h *harness) expect(line, printed string) {
	h.Helper()

	if err := h.engine.Line(line); err != nil {
		h.Fatalf("%s: unexpected error: %v", line, err)
	}

	if s := h.output(); s != printed {
		h.Fatalf("%s: printed %q, expected %q", line, s, printed)
	}
}

func (h *harness) failure(line string, k errsys.Kind) {
	h.Helper()

	err := h.engine.Line(line)
	if !errsys.Is(err, k) {
		h.Fatalf("%s: expected %s error, got %v", line, k, err)
	}

	h.out.Reset()
}

func (h *harness) output() string {
	s := h.out.String()
	h.out.Reset()

	return s
}

func TestBlankLines(t *testing.T) {
	h := setup(t, 0)

	h.expect("", "")
	h.expect("   \t", "")
}

func TestDepthRecovery(t *testing.T) {
	h := setup(t, 20)

	h.expect("(SETQ DOWN (LAMBDA (N) (IF (= N 0) 0 (DOWN (- N 1)))))", "")
	h.expect("(DOWN 10)", "0\n")
	h.failure("(DOWN 100)", errsys.Depth)
	h.expect("(DOWN 19)", "0\n")
}

func TestNames(t *testing.T) {
	h := setup(t, 0)

	names := h.engine.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names are not sorted")
	}

	for _, k := range []string{"+", "LAMBDA", "PI", "SETQ", "SQUARE"} {
		i := sort.SearchStrings(names, k)
		if i == len(names) || names[i] != k {
			t.Fatalf("%s is missing from %v", k, names)
		}
	}
}

func TestPrelude(t *testing.T) {
	h := setup(t, 0)

	h.expect("(SQUARE 4)", "16\n")
	h.expect("(1+ 4)", "5\n")
	h.expect("(SETQ L '(A B C))", "(A B C)\n")
	h.expect("(PRINT (SECOND L))", "B\n")
	h.expect("(ZEROP 0)", "")
}

func TestResultRendering(t *testing.T) {
	h := setup(t, 0)

	h.expect("(+ 1 2)", "3\n")
	h.expect("(/ 5 2)", "2.5\n")
	h.expect("(LIST 1 2)", "(1 2) \n")
	h.expect("(SETQ X 5)", "")
	h.expect("X", "5\n")
	h.expect("(SETQ S 'A)", "A\n")
	h.expect("S", "")
	h.expect("(CONS 1 (2 3))", "(1 2 3) \n")
	h.expect("(+ 1 2) (+ 3 4)", "3\n")
}

func TestRun(t *testing.T) {
	h := setup(t, 0)

	program := strings.Join([]string{
		"(SETQ X 1)",
		")",
		"(Y 1)",
		"",
		"(+ X 1)",
	}, "\n")

	var errs []error

	err := h.engine.Run(strings.NewReader(program), func(err error) {
		errs = append(errs, err)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}

	if !errsys.Is(errs[0], errsys.Syntax) || !strings.HasPrefix(errs[0].Error(), "test:2:1: ") {
		t.Fatalf("expected a located syntax error, got %v", errs[0])
	}

	if !errsys.Is(errs[1], errsys.Unbound) {
		t.Fatalf("expected an unbound symbol error, got %v", errs[1])
	}

	if s := h.output(); s != "2\n" {
		t.Fatalf("printed %q, expected %q", s, "2\n")
	}
}

func TestSyntaxRecovery(t *testing.T) {
	h := setup(t, 0)

	h.failure(")", errsys.Syntax)
	h.failure("(+ 1", errsys.Syntax)
	h.expect("(+ 1 1)", "2\n")
}
