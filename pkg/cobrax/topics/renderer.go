package topics

import (
	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for terminal display. format is the
// file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats
// are returned unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty")
	// or a path to a style file. Empty or "auto" detects from the
	// terminal.
	Style string
	// Width wraps the output, 0 leaves glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer. Without color support the
// "notty" style is used so no escape sequences are produced.
func NewGlamourRenderer(color bool, width int) *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto", Width: width}
	if !color {
		r.Style = "notty"
	}
	return r
}

// Render converts markdown to styled terminal text, falling back to the
// raw content on errors.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	log := logging.GetLogger("cobrax.topics")

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink", "ascii", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to create markdown renderer")
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to render markdown topic")
		return content
	}
	return rendered
}
