package commands

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/arthur-debert/clout/internal/version"
	"github.com/arthur-debert/clout/pkg/cobrax"
	"github.com/arthur-debert/clout/pkg/cobrax/topics"
	"github.com/arthur-debert/clout/pkg/config"
	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/arthur-debert/clout/pkg/output"
	"github.com/arthur-debert/clout/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// Options configures the application, mostly for tests
type Options struct {
	Config config.Options
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(int)
}

// App is the clout command tree bound to one output
type App struct {
	Root   *cobra.Command
	Out    *output.Output
	Config *config.Config
}

// New builds the application. Configuration errors are reported as a
// warning once the output exists and the defaults are used instead.
func New(opts Options) *App {
	if opts.Config.Version == "" {
		opts.Config.Version = version.Version
	}
	cfg, cfgErr := config.Load(opts.Config)
	if cfg == nil {
		cfg = config.New(opts.Config)
	}

	// quiet until PersistentPreRun knows the verbosity flag
	logging.SetupLogger(cfg.Verbosity, logging.Options{
		Console: opts.Stderr,
		NoColor: cfg.ColorDisabled(),
		LogFile: cfg.Dirs.LogFilePath(),
	})

	out := output.NewWithOptions(cfg, output.Options{
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		Exit:   opts.Exit,
	})
	if cfgErr != nil {
		out.Warn(cfgErr, MsgErrConfig)
	}

	app := &App{Out: out, Config: cfg}
	app.Root = app.newRootCmd()
	return app
}

// NewRootCmd builds the command tree on the process streams
func NewRootCmd() *cobra.Command {
	return New(Options{}).Root
}

func (a *App) newRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     a.Config.Bin,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: a.Config.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				a.Out.Color = style.Plain()
			}
			if verbosity == 0 {
				verbosity = a.Config.Verbosity
			}
			logging.SetupLogger(verbosity, logging.Options{
				Console: a.Out.Stderr,
				NoColor: !a.Out.Color.Supported(),
				LogFile: a.Config.Dirs.LogFilePath(),
			})
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand: show help and fail
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetOut(a.Out.Stdout)
	rootCmd.SetErr(a.Out.Stderr)

	rootCmd.AddCommand(a.newDemoCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	cobrax.Install(rootCmd, a.Out, cobrax.Options{Topics: a.loadTopics()})
	return rootCmd
}

func (a *App) loadTopics() *topics.Manager {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Embedded help topics unavailable")
		return nil
	}
	tm := topics.New(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(a.Out.Color.Supported(), a.Out.StdWidth()),
	})
	if err := tm.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
		return nil
	}
	return tm
}

// Run executes the command line and returns the process exit code.
// Errors are displayed through the output and logged to the error log.
func (a *App) Run(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	a.Root.SetArgs(cobrax.SplitArgs(args))
	if err := a.Root.Execute(); err != nil {
		a.Out.Error(err, output.NoExit)
		a.Out.ShowCursor()
		return 1
	}
	a.Out.Done()
	return 0
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			a.Out.Logf(MsgVersionFormat, a.Config.Bin, a.Config.Version)
			a.Out.Logf(MsgCommitFormat, version.Commit)
			a.Out.Logf(MsgBuiltFormat, version.Date)
		},
	}
}

func (a *App) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Run: func(cmd *cobra.Command, args []string) {
			a.Out.Log(strings.TrimRight(a.Config.Dump(), "\n"))
		},
	}
}
