// Package style applies terminal colors conditionally on detected
// support. A Palette is bound to one color profile: when the profile has
// no color every helper returns its input unchanged.
package style

import (
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Palette renders styled output
type Palette struct {
	profile  termenv.Profile
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
	goos     string
}

// NewPalette builds a palette for the given profile and theme
func NewPalette(w io.Writer, profile termenv.Profile, theme Theme) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	styles := make(map[string]lipgloss.Style, len(theme.Styles))
	for name, def := range theme.Styles {
		styles[name] = buildStyle(r, def)
	}

	return &Palette{
		profile:  profile,
		renderer: r,
		styles:   styles,
		goos:     runtime.GOOS,
	}
}

// Plain returns a palette that never emits escape sequences
func Plain() *Palette {
	return NewPalette(io.Discard, termenv.Ascii, DefaultTheme())
}

// Supported reports whether styled output is emitted at all
func (p *Palette) Supported() bool {
	return p.profile != termenv.Ascii
}

// Profile returns the color profile in use
func (p *Palette) Profile() termenv.Profile {
	return p.profile
}

// Style renders s with the named theme style. Unknown names and
// unsupported terminals return s unchanged. Each line is styled on its
// own so multi-line text is never padded into a block.
func (p *Palette) Style(name, s string) string {
	if !p.Supported() || s == "" {
		return s
	}
	st, ok := p.styles[name]
	if !ok {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (p *Palette) Bold(s string) string    { return p.Style("bold", s) }
func (p *Palette) Gray(s string) string    { return p.Style("gray", s) }
func (p *Palette) Blue(s string) string    { return p.Style("blue", s) }
func (p *Palette) Red(s string) string     { return p.Style("red", s) }
func (p *Palette) BoldRed(s string) string { return p.Style("boldRed", s) }
func (p *Palette) Yellow(s string) string  { return p.Style("yellow", s) }
func (p *Palette) Green(s string) string   { return p.Style("green", s) }
func (p *Palette) Cyan(s string) string    { return p.Style("cyan", s) }
func (p *Palette) Magenta(s string) string { return p.Style("magenta", s) }

// Attachment styles an add-on attachment name
func (p *Palette) Attachment(s string) string { return p.Style("attachment", s) }

// Addon styles an add-on name
func (p *Palette) Addon(s string) string { return p.Style("addon", s) }

// ConfigVar styles a config var name
func (p *Palette) ConfigVar(s string) string { return p.Style("configVar", s) }

// Release styles a release version
func (p *Palette) Release(s string) string { return p.Style("release", s) }

// Cmd styles a command the user can run
func (p *Palette) Cmd(s string) string { return p.Style("cmd", s) }

// Brand uses the 256 color brand purple when the terminal has it and
// falls back to magenta.
func (p *Palette) Brand(s string) string {
	if Has256(p.profile) {
		return p.Style("brand", s)
	}
	return p.Style("brandFallback", s)
}

// App styles an app name, prefixed with a hexagon except on Windows
// where the console font usually lacks the glyph.
func (p *Palette) App(s string) string {
	if p.goos != "windows" {
		return p.Brand("⬢ " + s)
	}
	return p.Brand(s)
}

// StripColor removes escape sequences from s
func StripColor(s string) string {
	return ansi.Strip(s)
}
