// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Path returns the location of the history file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".setq_history")
}

// file opens the history file with flag and holds an exclusive lock on it.
func file(flag int) (*os.File, error) {
	f, err := os.OpenFile(Path(), flag, 0o600)
	if err != nil {
		return nil, err
	}

	err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	return f, nil
}

func release(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
