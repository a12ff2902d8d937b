// Package screen reports terminal geometry and capabilities for the
// standard streams.
package screen

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when the stream is not a terminal or the
	// terminal reports no size
	DefaultWidth = 80

	// MinWidth is the narrowest width anything is laid out for
	MinWidth = 40
)

// IsTerminal reports whether f is a terminal, including Cygwin/MSYS ptys
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width returns the column count of the terminal behind f
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 1 {
		return DefaultWidth
	}
	return clamp(width)
}

// StdWidth is the layout width for stdout. COLUMNS wins when set.
func StdWidth() int {
	if n := envColumns(); n > 0 {
		return n
	}
	return Width(os.Stdout)
}

// ErrWidth is the layout width for stderr. COLUMNS wins when set.
func ErrWidth() int {
	if n := envColumns(); n > 0 {
		return n
	}
	return Width(os.Stderr)
}

func clamp(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	return width
}

func envColumns() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS")))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
