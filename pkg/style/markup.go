package style

import (
	"regexp"
)

// markupTag matches [name]content[/name] with the same name on both ends
var markupTag = regexp.MustCompile(`\[([A-Za-z]+)\](.*?)\[/([A-Za-z]+)\]`)

// Markup expands [name]text[/name] tags to theme styles. Tags naming an
// unknown style are left as typed; on terminals without color the tags
// are removed and the text kept. Nested tags are expanded inside out.
func (p *Palette) Markup(text string) string {
	result := text
	for {
		changed := false
		result = markupTag.ReplaceAllStringFunc(result, func(match string) string {
			sub := markupTag.FindStringSubmatch(match)
			if len(sub) != 4 || sub[1] != sub[3] {
				return match
			}
			if _, ok := p.styles[sub[1]]; !ok {
				return match
			}
			changed = true
			return p.Style(sub[1], sub[2])
		})
		if !changed {
			return result
		}
	}
}
