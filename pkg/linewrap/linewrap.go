// Package linewrap word-wraps terminal text into a column band.
//
// Every produced line starts at column start and ends before column stop.
// Escape sequences are zero-width, so styled text wraps where its visible
// text would.
package linewrap

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// MinWidth is the narrowest band text is wrapped to
const MinWidth = 10

// Options tune a Wrap call
type Options struct {
	// Skip matches lines that must be kept intact, like shell commands
	// the user is meant to copy. They are indented but never broken.
	Skip *regexp.Regexp
}

// ShellCommand matches lines of the form "$ cmd ...".
var ShellCommand = regexp.MustCompile(`^\$ .*$`)

// Wrap wraps text into the band [start, stop). Lines are indented by
// start spaces, trailing whitespace is trimmed and words wider than the
// band are hard-broken.
func Wrap(start, stop int, text string, opts Options) string {
	if start < 0 {
		start = 0
	}
	width := stop - start
	if width < MinWidth {
		width = MinWidth
	}
	pad := strings.Repeat(" ", start)

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if opts.Skip != nil && opts.Skip.MatchString(ansi.Strip(line)) {
			out = append(out, strings.TrimRight(pad+line, " \t"))
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, width), width)
		for _, l := range strings.Split(wrapped, "\n") {
			out = append(out, strings.TrimRight(pad+l, " \t"))
		}
	}
	return strings.Join(out, "\n")
}
