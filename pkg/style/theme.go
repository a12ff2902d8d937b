package style

import (
	_ "embed"
	"os"

	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Theme maps semantic style names to their definitions
type Theme struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// DefaultTheme returns the built-in theme
func DefaultTheme() Theme {
	theme, err := ParseTheme(embeddedTheme)
	if err != nil {
		// the embedded file is covered by tests
		panic(err)
	}
	return theme
}

// ParseTheme parses YAML theme data
func ParseTheme(data []byte) (Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrThemeLoad, "failed to parse theme")
	}
	if theme.Styles == nil {
		theme.Styles = make(map[string]StyleDef)
	}
	return theme, nil
}

// LoadTheme returns the built-in theme with the entries of the YAML file
// at path layered on top. An empty path returns the built-in theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme %s", path).
			WithDetail("path", path)
	}
	overrides, err := ParseTheme(data)
	if err != nil {
		return theme, err
	}
	for name, def := range overrides.Styles {
		theme.Styles[name] = def
	}
	return theme, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(lipgloss.Color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(lipgloss.Color(def.Background))
	}

	return style
}
