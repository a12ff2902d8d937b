// Package cobrax connects cobra commands to the help renderer: it turns
// a cobra command tree into command metadata and replaces cobra's help
// output with the clout layout, written through the output façade.
package cobrax

import (
	"strings"

	"github.com/arthur-debert/clout/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ArgAnnotation prefixes command annotations describing positional
// args: Annotations["arg:app"] = "name of the app".
const ArgAnnotation = "arg:"

// FromCobra derives command metadata from a cobra command. The command
// path below the root becomes topic and command ("apps create" is
// apps:create). Args come from the Use line, flags from the local flag
// set.
func FromCobra(cmd *cobra.Command) types.Command {
	c := types.Command{
		Description: cmd.Short,
		Help:        longHelp(cmd),
		Hidden:      cmd.Hidden,
		Args:        parseArgs(cmd),
		Flags:       make(map[string]types.Flag),
	}

	path := commandPath(cmd)
	switch {
	case len(path) == 0:
		// the root command is invoked as "<bin> COMMAND"
		if cmd.HasAvailableSubCommands() {
			c.Usage = "COMMAND"
		} else {
			c.Usage = rootUsage(cmd.Use)
		}
	default:
		c.Topic = path[0]
		c.Command = strings.Join(path[1:], ":")
	}

	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		c.Flags[f.Name] = types.Flag{
			Char:        f.Shorthand,
			Description: f.Usage,
			HasValue:    f.Value.Type() != "bool",
			Required:    isRequired(f),
			Hidden:      f.Hidden,
		}
	})
	return c
}

// commandPath is the list of command names below the root
func commandPath(cmd *cobra.Command) []string {
	var path []string
	for c := cmd; c.HasParent(); c = c.Parent() {
		path = append([]string{c.Name()}, path...)
	}
	return path
}

func rootUsage(use string) string {
	fields := strings.Fields(use)
	var words []string
	for _, f := range fields[min(1, len(fields)):] {
		if f != "[flags]" {
			words = append(words, f)
		}
	}
	return strings.Join(words, " ")
}

func longHelp(cmd *cobra.Command) string {
	parts := []string{}
	if long := strings.TrimSpace(cmd.Long); long != "" && long != strings.TrimSpace(cmd.Short) {
		parts = append(parts, long)
	}
	if example := strings.TrimRight(cmd.Example, " \n"); example != "" {
		parts = append(parts, "Examples:\n"+example)
	}
	return strings.Join(parts, "\n\n")
}

// parseArgs reads positional args from the Use line: NAME is required,
// [NAME] optional. "[flags]" and "..." are ignored.
func parseArgs(cmd *cobra.Command) []types.Arg {
	fields := strings.Fields(cmd.Use)
	if len(fields) < 2 {
		return nil
	}
	var args []types.Arg
	for _, field := range fields[1:] {
		optional := strings.HasPrefix(field, "[")
		name := strings.ToLower(strings.Trim(field, "[]<>."))
		if name == "" || name == "flags" {
			continue
		}
		args = append(args, types.Arg{
			Name:        name,
			Description: cmd.Annotations[ArgAnnotation+name],
			Optional:    optional,
		})
	}
	return args
}

func isRequired(f *pflag.Flag) bool {
	values, ok := f.Annotations[cobra.BashCompOneRequiredFlag]
	return ok && len(values) > 0 && values[0] == "true"
}

// SplitArgs rewrites the first non-flag "topic:command" argument into
// the separate words cobra resolves, so both spellings run the same
// command.
func SplitArgs(args []string) []string {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if !strings.Contains(arg, ":") {
			return args
		}
		split := make([]string, 0, len(args)+1)
		split = append(split, args[:i]...)
		split = append(split, strings.Split(arg, ":")...)
		return append(split, args[i+1:]...)
	}
	return args
}
