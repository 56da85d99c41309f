package termcheck

import (
	"errors"
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

var ErrNotTerminal = errors.New("not an interactive terminal")

// FdFile is the subset of *os.File needed to probe a descriptor.
type FdFile interface {
	Fd() uintptr
	Name() string
}

var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var getSize = term.GetSize

// Check fails with ErrNotTerminal unless every file is attached to a
// terminal. The picker reads keys from stdin and draws on stdout, so both
// must be interactive.
func Check(files ...FdFile) error {
	for _, f := range files {
		if !isTerminal(f.Fd()) {
			return fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
		}
	}
	return nil
}

// Size reports the terminal dimensions of f, falling back to 80x24 when it
// cannot be measured.
func Size(f FdFile) (width, height int) {
	w, h, err := getSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
