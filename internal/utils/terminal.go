package utils

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is an *os.File connected to a terminal.
// Buffers and pipes report false.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
