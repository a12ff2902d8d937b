// Package help renders command help: usage lines, aligned argument and
// flag lists and topic listings. Output is colored through the output
// façade's palette and wrapped to the stdout width.
package help

import (
	"sort"
	"strings"

	"github.com/arthur-debert/clout/pkg/config"
	"github.com/arthur-debert/clout/pkg/output"
	"github.com/arthur-debert/clout/pkg/types"
	"github.com/muesli/reflow/padding"
)

// Help renders help text for commands
type Help struct {
	config *config.Config
	out    *output.Output
}

// New creates a Help. A nil out creates an Output for cfg.
func New(cfg *config.Config, out *output.Output) *Help {
	if out == nil {
		out = output.New(cfg)
	}
	if cfg == nil {
		cfg = out.Config
	}
	return &Help{config: cfg, out: out}
}

// Command renders the full help of one command
func (h *Help) Command(cmd types.Command) string {
	color := h.out.Color
	flags := cmd.VisibleFlags()

	hasFlags := ""
	if len(flags) > 0 {
		hasFlags = " " + color.Blue("[flags]")
	}

	var b strings.Builder
	usage := strings.TrimRight(h.config.Bin+" "+BuildUsage(cmd), " ")
	b.WriteString(color.Bold("Usage:") + " " + usage + hasFlags + "\n")
	if cmd.Description != "" {
		b.WriteString("\n" + color.Bold(strings.TrimSpace(cmd.Description)) + "\n")
	}
	b.WriteString(h.RenderArgs(cmd.VisibleArgs()))
	b.WriteString(h.RenderFlags(flags))
	if cmd.Help != "" {
		b.WriteString("\n" + strings.TrimSpace(cmd.Help) + "\n")
	}
	return b.String()
}

// CommandLine is the usage and description pair used in command lists
func (h *Help) CommandLine(cmd types.Command) [2]string {
	description := ""
	if cmd.Description != "" {
		description = h.out.Color.Gray(cmd.Description)
	}
	return [2]string{BuildUsage(cmd), description}
}

// RenderArgs lists the visible args with their descriptions. Nothing is
// rendered when no visible arg has a description.
func (h *Help) RenderArgs(args []types.Arg) string {
	var visible []types.Arg
	described := false
	for _, a := range args {
		if a.Hidden {
			continue
		}
		visible = append(visible, a)
		if a.Description != "" {
			described = true
		}
	}
	if !described {
		return ""
	}

	items := make([][2]string, 0, len(visible))
	for _, a := range visible {
		description := ""
		if a.Description != "" {
			description = h.out.Color.Gray(a.Description)
		}
		items = append(items, [2]string{strings.ToUpper(a.Name), description})
	}
	return "\n" + RenderList(items, h.out.StdWidth()) + "\n"
}

// RenderFlags lists the visible flags, the ones with a short alias
// first, then by name.
func (h *Help) RenderFlags(flags map[string]types.Flag) string {
	names := make([]string, 0, len(flags))
	for name, f := range flags {
		if !f.Hidden {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := flags[names[i]], flags[names[j]]
		if (a.Char != "") != (b.Char != "") {
			return a.Char != ""
		}
		return names[i] < names[j]
	})

	items := make([][2]string, 0, len(names))
	for _, name := range names {
		f := flags[name]
		label := " --" + name
		if f.Char != "" {
			label = " -" + f.Char + ", --" + name
		}
		if f.HasValue {
			label += " " + strings.ToUpper(name)
		}

		description := f.Description
		if f.Required {
			description = "(required) " + description
		}
		if description != "" {
			description = h.out.Color.Gray(description)
		}
		items = append(items, [2]string{label, description})
	}
	return "\n" + h.out.Color.Blue("Flags:") + "\n" + RenderList(items, h.out.StdWidth()) + "\n"
}

// Topic lists the visible commands of a topic as "id # description"
// rows. Nothing is rendered when the topic has no visible subcommands.
func (h *Help) Topic(topic string, commands []types.Command) string {
	var visible []types.Command
	maxLength := 0
	for _, cmd := range commands {
		if cmd.Hidden || cmd.Topic != topic || cmd.Command == "" {
			continue
		}
		visible = append(visible, cmd)
		if l := len(cmd.ID()); l > maxLength {
			maxLength = l
		}
	}
	if len(visible) == 0 {
		return ""
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Command < visible[j].Command
	})

	hint := h.out.Color.Cmd(h.config.Bin + " help " + topic + ":COMMAND")
	var b strings.Builder
	b.WriteString(topic + " commands: (" + hint + " for details)\n\n")
	for _, cmd := range visible {
		if cmd.Description == "" {
			b.WriteString(" " + cmd.ID() + "\n")
			continue
		}
		b.WriteString(" " + padding.String(cmd.ID(), uint(maxLength)) + " # " + cmd.Description + "\n")
	}
	return b.String()
}
