// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"os"
	"path/filepath"
)

// Path returns the location of the history file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".setq_history")
}

func file(flag int) (*os.File, error) {
	return os.OpenFile(Path(), flag, 0o600)
}

func release(_ *os.File) {}
