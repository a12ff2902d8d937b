package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Presentation layer demo: help, output, spinners"
	MsgVersionShort     = "Print version information"
	MsgVersionLong      = "Print detailed version information including commit hash and build date"
	MsgConfigShort      = "Print the effective configuration"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate the man page"
	MsgDemoShort        = "Exercise the output layer"
	MsgDemoActionShort  = "run a task with a progress indicator"
	MsgDemoErrorShort   = "display an error the way commands fail"
	MsgDemoWarnShort    = "display a warning"
	MsgDemoStyledShort  = "print styled headers, objects and JSON"
	MsgDemoPaletteShort = "show every named color"
	MsgDemoMarkupShort  = "render inline [style]markup[/style]"

	// Version output
	MsgVersionFormat = "%s version %s"
	MsgCommitFormat  = "Commit: %s"
	MsgBuiltFormat   = "Built:  %s"

	// Demo output
	MsgActionStep     = "step %d of %d"
	MsgActionLogLine  = "finished step %d"
	MsgStyledHeader   = "%s info"
	MsgPaletteLine    = "%-12s %s"
	MsgPaletteSample  = "The quick brown fox"
	MsgDefaultError   = "the demo failed on purpose"
	MsgDefaultWarning = "this is only a drill"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrManPage   = "failed to generate man page: %w"
	MsgErrConfig    = "failed to load configuration, using defaults:"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagConfig   = "Read configuration from this file"
	MsgFlagSteps    = "number of steps to run"
	MsgFlagDelay    = "time spent on each step"
	MsgFlagExitCode = "exit code to fail with"
	MsgFlagAPI      = "fail like a remote API call"
	MsgFlagStatus   = "HTTP status of the simulated API error"
	MsgFlagCode     = "error code of a structured error"
	MsgFlagPrefix   = "text shown before the warning"
	MsgFlagApp      = "app to describe"
	MsgFlagJSON     = "print the app as JSON"
)

// Argument descriptions
const (
	MsgArgMessage = "text to display"
	MsgArgText    = "text containing [name]...[/name] tags"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/demo-long.txt
	msgDemoLongRaw string
	MsgDemoLong    = strings.TrimSpace(msgDemoLongRaw)

	//go:embed msgs/action-example.txt
	msgActionExampleRaw string
	MsgActionExample    = strings.TrimRight(msgActionExampleRaw, "\n")

	//go:embed msgs/error-long.txt
	msgErrorLongRaw string
	MsgErrorLong    = strings.TrimSpace(msgErrorLongRaw)

	//go:embed msgs/error-example.txt
	msgErrorExampleRaw string
	MsgErrorExample    = strings.TrimRight(msgErrorExampleRaw, "\n")
)
