// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/michaelmacinnis/setq/internal/engine"
)

func TestExamples(t *testing.T) {
	tests := map[string]string{
		"factorial.lsp": "120\n15511210043330985984000000\n(1 2 6 24) \n",
		"lists.lsp": "(A B C D)\n(C D)\n(A X C D)\n(A X C)\n(B 2)\nA\n" +
			"(X C) \n(X C E F)\nNIL\nNIL\n",
	}

	for name, expected := range tests {
		path := filepath.Join("examples", name)

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		var out bytes.Buffer

		err = engine.New(path, &out, 0).Run(f, func(err error) {
			t.Errorf("%s: %v", path, err)
		})

		f.Close()

		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		if s := out.String(); s != expected {
			t.Fatalf("%s: expected %q, got %q", path, expected, s)
		}
	}
}
