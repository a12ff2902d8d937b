package help

import (
	"strings"

	"github.com/arthur-debert/clout/pkg/linewrap"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
)

// RenderList renders two aligned columns. The left column is padded to
// its widest entry, the right one starts two spaces after it and wraps
// at width with continuation lines aligned under it. Rows without a
// right value print the left value alone.
func RenderList(items [][2]string, width int) string {
	if len(items) == 0 {
		return ""
	}
	maxLength := 0
	for _, item := range items {
		if w := ansi.StringWidth(item[0]); w > maxLength {
			maxLength = w
		}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		left, right := item[0], item[1]
		if right == "" {
			lines = append(lines, left)
			continue
		}
		left = padding.String(left, uint(maxLength))
		right = strings.TrimSpace(linewrap.Wrap(maxLength+2, width, right, linewrap.Options{}))
		lines = append(lines, left+"  "+right)
	}
	return strings.Join(lines, "\n")
}
