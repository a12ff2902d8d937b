package help

import (
	"strings"

	"github.com/arthur-debert/clout/pkg/types"
)

// BuildUsage returns the usage line of cmd without the binary name: the
// explicit Usage when set, otherwise the command id followed by its
// visible args.
func BuildUsage(cmd types.Command) string {
	if cmd.Usage != "" {
		return strings.TrimSpace(cmd.Usage)
	}
	id := cmd.ID()
	visible := cmd.VisibleArgs()
	if len(visible) == 0 {
		return strings.TrimSpace(id)
	}
	args := make([]string, 0, len(visible))
	for _, a := range visible {
		args = append(args, renderArg(a))
	}
	return strings.TrimSpace(id + " " + strings.Join(args, " "))
}

// renderArg is NAME for required args and [NAME] for optional ones
func renderArg(a types.Arg) string {
	name := strings.ToUpper(a.Name)
	if a.Required() {
		return name
	}
	return "[" + name + "]"
}
