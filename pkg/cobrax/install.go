package cobrax

import (
	"strings"

	"github.com/arthur-debert/clout/pkg/cobrax/topics"
	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/arthur-debert/clout/pkg/help"
	"github.com/arthur-debert/clout/pkg/output"
	"github.com/arthur-debert/clout/pkg/types"
	"github.com/spf13/cobra"
)

// TopicsCommand is the argument of "help" listing the help topics
const TopicsCommand = "topics"

// Options configures Install
type Options struct {
	// Topics answers "help <topic>" for non-command topics, may be nil
	Topics *topics.Manager
}

// Installer renders cobra help through the help renderer
type Installer struct {
	root   *cobra.Command
	out    *output.Output
	help   *help.Help
	topics *topics.Manager
}

// Install replaces the help function and the help command of root.
// Help for every command is then rendered by the help renderer and
// written to out.
func Install(root *cobra.Command, out *output.Output, opts Options) *Installer {
	in := &Installer{
		root:   root,
		out:    out,
		help:   help.New(out.Config, out),
		topics: opts.Topics,
	}

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		in.Show(cmd)
	})
	root.SetHelpCommand(in.helpCommand())
	return in
}

// Render returns the help text of cmd. Commands with subcommands list
// them after their own help.
func (in *Installer) Render(cmd *cobra.Command) string {
	c := FromCobra(cmd)
	text := in.help.Command(c)

	children := visibleChildren(cmd)
	if len(children) == 0 {
		return text
	}
	if !cmd.HasParent() {
		items := make([][2]string, 0, len(children))
		for _, child := range children {
			items = append(items, in.help.CommandLine(FromCobra(child)))
		}
		return text + "\n" + in.out.Color.Blue("Commands:") + "\n" +
			help.RenderList(indent(items), in.out.StdWidth()) + "\n"
	}

	subcommands := make([]types.Command, 0, len(children))
	for _, child := range children {
		subcommands = append(subcommands, FromCobra(child))
	}
	if listing := in.help.Topic(c.Topic, subcommands); listing != "" {
		text += "\n" + listing
	}
	return text
}

// Show writes the help of cmd to stdout
func (in *Installer) Show(cmd *cobra.Command) {
	in.out.Log(strings.TrimRight(in.Render(cmd), "\n"))
}

// Lookup resolves a help argument: a help topic, "topics", or a command
// written as "topic:command" or as separate words.
func (in *Installer) Lookup(args []string) (string, error) {
	if len(args) == 0 {
		return in.Render(in.root), nil
	}
	if in.topics != nil {
		if args[0] == TopicsCommand {
			return in.topics.Summary(in.root.Name()), nil
		}
		if topic, ok := in.topics.Get(args[0]); ok {
			return in.topics.Render(topic), nil
		}
	}

	cmd, rest, err := in.root.Find(SplitArgs(args))
	if err != nil || cmd == in.root || len(rest) > 0 {
		return "", errors.Newf(errors.ErrNotFound, "%s is not a command or help topic", strings.Join(args, " ")).
			WithDetail("args", args)
	}
	return in.Render(cmd), nil
}

func (in *Installer) helpCommand() *cobra.Command {
	bin := in.root.Name()
	return &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic in the application.\n" +
			"Type " + bin + " help [command or topic] for full details.\n\n" +
			"To see all available help topics:\n  " + bin + " help " + TopicsCommand,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			completions := []string{}
			if in.topics != nil {
				completions = append(completions, TopicsCommand)
				completions = append(completions, in.topics.List()...)
			}
			for _, c := range visibleChildren(in.root) {
				completions = append(completions, c.Name())
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := in.Lookup(args)
			if err != nil {
				return err
			}
			in.out.Log(strings.TrimRight(text, "\n"))
			return nil
		},
	}
}

func visibleChildren(cmd *cobra.Command) []*cobra.Command {
	var children []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() || c.Name() == "help" {
			children = append(children, c)
		}
	}
	return children
}

// indent shifts list rows right by one column, like the flag rows
func indent(items [][2]string) [][2]string {
	for i := range items {
		items[i][0] = " " + items[i][0]
	}
	return items
}
