// Released under an MIT license. See LICENSE.

// Package history persists the interactive line history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.O_RDONLY)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	defer unlock(f)

	_, err = read(f)

	return err
}

// Save passes the truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.O_WRONLY | os.O_CREATE | os.O_TRUNC)
	if err != nil {
		return err
	}

	defer unlock(f)

	_, err = write(f)

	return err
}

func unlock(f *os.File) {
	release(f)

	_ = f.Close()
}
