package types

// Command describes one CLI command for the help renderer
type Command struct {
	Topic string
	// Command is empty for the root command of a topic
	Command     string
	Description string
	// Help is the long help text printed after flags
	Help string
	// Usage replaces the generated usage line when set
	Usage  string
	Hidden bool
	Args   []Arg
	// Flags is keyed by the long flag name
	Flags map[string]Flag
}

// ID returns "topic:command", or just the topic for a topic root command
func (c Command) ID() string {
	if c.Command == "" {
		return c.Topic
	}
	return c.Topic + ":" + c.Command
}

// Arg is a positional argument. Args are required unless Optional.
type Arg struct {
	Name        string
	Description string
	Optional    bool
	Hidden      bool
}

// Required reports whether the argument must be given
func (a Arg) Required() bool {
	return !a.Optional
}

// Flag is a command line flag
type Flag struct {
	// Char is the single letter alias, empty when there is none
	Char        string
	Description string
	// HasValue is set for flags taking a value (--app NAME)
	HasValue bool
	Required bool
	Hidden   bool
}

// VisibleArgs returns the args that are not hidden
func (c Command) VisibleArgs() []Arg {
	var args []Arg
	for _, a := range c.Args {
		if !a.Hidden {
			args = append(args, a)
		}
	}
	return args
}

// VisibleFlags returns the flags that are not hidden
func (c Command) VisibleFlags() map[string]Flag {
	flags := make(map[string]Flag, len(c.Flags))
	for name, f := range c.Flags {
		if !f.Hidden {
			flags[name] = f
		}
	}
	return flags
}
