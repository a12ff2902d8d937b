// Package output is the façade every command writes through.
//
// It wraps stdout and stderr, colors text according to detected terminal
// support, buffers everything in mock mode so tests can inspect it,
// appends every error shown to the user to an error log and keeps the
// action spinner off the screen while lines are written.
package output

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/arthur-debert/clout/pkg/action"
	"github.com/arthur-debert/clout/pkg/config"
	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/arthur-debert/clout/pkg/screen"
	"github.com/arthur-debert/clout/pkg/style"
	"github.com/muesli/termenv"
)

// NoExit disables the process exit in Error
const NoExit = -1

// Output writes user-facing text
type Output struct {
	Config *config.Config
	Stdout *Stream
	Stderr *Stream
	Action *action.Action
	Color  *style.Palette

	// rawStderr is written to directly when the streams themselves fail
	rawStderr io.Writer
	exit      func(int)
	goos      string
}

// Options overrides the process streams, mostly for tests
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Exit replaces os.Exit
	Exit func(int)
}

// New creates an Output on the process streams
func New(cfg *config.Config) *Output {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions creates an Output with custom streams
func NewWithOptions(cfg *config.Config, opts Options) *Output {
	log := logging.GetLogger("output")

	if cfg == nil {
		cfg = config.New(config.Options{})
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}

	theme, err := style.LoadTheme(cfg.Theme)
	if err != nil {
		log.Warn().Err(err).Str("theme", cfg.Theme).Msg("Failed to load theme, using defaults")
	}
	profile := style.DetectProfile(stdout, colorSetting(cfg))

	o := &Output{
		Config:    cfg,
		Color:     style.NewPalette(stdout, profile, theme),
		rawStderr: stderr,
		exit:      exit,
		goos:      runtime.GOOS,
	}
	o.Stdout = newStream(stdout, o)
	o.Stderr = newStream(stderr, o)
	o.Action = action.New(action.Options{
		Writer:  o.Stderr.direct(),
		Spinner: !cfg.Mock && cfg.Debug == 0 && isTerminal(stderr),
	})

	log.Debug().
		Bool("mock", cfg.Mock).
		Int("debug", cfg.Debug).
		Str("colorProfile", fmt.Sprintf("%v", profile)).
		Msg("Output created")

	return o
}

// StdWidth is the layout width for stdout
func (o *Output) StdWidth() int {
	if o.Config.Columns > 0 {
		return o.Config.Columns
	}
	return screen.StdWidth()
}

// ErrWidth is the layout width for stderr
func (o *Output) ErrWidth() int {
	if o.Config.Columns > 0 {
		return o.Config.Columns
	}
	return screen.ErrWidth()
}

// Log writes a line to stdout
func (o *Output) Log(msg string) {
	_ = o.Stdout.Log(msg)
}

// Logf writes a formatted line to stdout
func (o *Output) Logf(format string, args ...interface{}) {
	_ = o.Stdout.Logf(format, args...)
}

// Done restores the terminal and stops a running action. Call it once
// the command finished successfully.
func (o *Output) Done() {
	o.ShowCursor()
	o.Action.Stop("")
}

// Exit restores the cursor and terminates the process with code
func (o *Output) Exit(code int) {
	o.ShowCursor()
	if o.Config.Debug > 0 {
		_ = o.Stderr.Logf("Exiting with code: %d", code)
	}
	o.exit(code)
}

// ShowCursor makes the cursor visible again after a spinner hid it
func (o *Output) ShowCursor() {
	if f, ok := o.rawStderr.(*os.File); ok && screen.IsTerminal(f) {
		termenv.NewOutput(f).ShowCursor()
	}
}

func colorSetting(cfg *config.Config) style.ColorSetting {
	switch {
	case cfg.ColorDisabled():
		return style.ColorNever
	case cfg.ColorForced():
		return style.ColorAlways
	}
	return style.ColorAuto
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && screen.IsTerminal(f)
}
