package output

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/arthur-debert/clout/pkg/linewrap"
	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/arthur-debert/clout/pkg/style"
)

// Error shows err on stderr, appends it to the error log and exits the
// process with exitCode unless it is NoExit. A running action is stopped
// with a red "!" first.
func (o *Output) Error(err error, exitCode int) {
	if err == nil {
		return
	}
	log := logging.GetLogger("output")
	log.Debug().Err(err).Int("exitCode", exitCode).Msg("Displaying error")

	o.LogError(err)

	if displayErr := o.displayError(err); displayErr != nil {
		fmt.Fprintln(o.rawStderr, "error displaying error")
		fmt.Fprintln(o.rawStderr, displayErr)
		fmt.Fprintln(o.rawStderr, err)
	}

	if exitCode != NoExit {
		o.Exit(exitCode)
	}
}

func (o *Output) displayError(err error) (displayErr error) {
	defer func() {
		if r := recover(); r != nil {
			displayErr = fmt.Errorf("panic: %v", r)
		}
	}()

	if o.Action.Running() {
		o.Action.Stop(o.Color.BoldRed("!"))
	}
	if o.Config.Debug > 0 {
		if err := o.Stderr.Logf("%+v", err); err != nil {
			return err
		}
		return o.Stderr.Log(o.Config.Dump())
	}
	return o.Stderr.Log(o.bangify(o.wrap(errorMessage(err)), o.Color.Red(o.arrow())))
}

// Warn shows err as a warning on stderr without exiting. A non-empty
// prefix is put in front of the message.
func (o *Output) Warn(err error, prefix string) {
	if err == nil {
		return
	}
	displayErr := o.displayWarning(err, prefix)
	o.LogError(err)

	if displayErr != nil {
		fmt.Fprintln(o.rawStderr, "error displaying warning")
		fmt.Fprintln(o.rawStderr, displayErr)
		fmt.Fprintln(o.rawStderr, err)
	}
}

func (o *Output) displayWarning(err error, prefix string) error {
	if prefix != "" {
		prefix += " "
	}
	if o.Config.Debug > 0 {
		return o.Stderr.Logf("WARNING: %s%+v", prefix, err)
	}
	return o.Stderr.Log(o.bangify(o.wrap(prefix+errorMessage(err)), o.Color.Yellow(o.arrow())))
}

// Warnf is Warn for a plain formatted message
func (o *Output) Warnf(format string, args ...interface{}) {
	o.Warn(fmt.Errorf(format, args...), "")
}

// ErrLogPath is where LogError appends
func (o *Output) ErrLogPath() string {
	return o.Config.Dirs.ErrorLogPath()
}

// LogError appends the error text, without color, to the error log.
// Failures are reported on stderr and otherwise ignored.
func (o *Output) LogError(err error) {
	if err == nil {
		return
	}
	if logErr := o.appendErrorLog(style.StripColor(err.Error()) + "\n"); logErr != nil {
		fmt.Fprintln(o.rawStderr, logErr)
	}
}

func (o *Output) appendErrorLog(line string) error {
	path := o.ErrLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrErrLogWrite, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString(line); err != nil {
		return errors.Wrapf(err, errors.ErrErrLogWrite, "failed to write %s", path)
	}
	return nil
}

// errorMessage picks the text shown to the user: the API message for
// API errors, the code and detail for coded errors, the plain text
// otherwise. For an APIError the body message takes precedence over its
// Error text.
func errorMessage(err error) string {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		if msg := apiErr.BodyMessage(); msg != "" {
			return "'" + msg + "'"
		}
	}
	var cloutErr *errors.CloutError
	if stderrors.As(err, &cloutErr) {
		return fmt.Sprintf("'%s': %s", cloutErr.Code, cloutErr.Detail())
	}
	return err.Error()
}

// wrap indents the message by six columns, leaving shell command lines
// untouched so they stay copyable.
func (o *Output) wrap(msg string) string {
	return linewrap.Wrap(6, o.ErrWidth(), msg, linewrap.Options{Skip: linewrap.ShellCommand})
}

// bangify replaces the start of every line with " <icon>", keeping the
// rest of the indentation.
func (o *Output) bangify(msg, icon string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		rest := ""
		if len(line) > 2 {
			rest = line[2:]
		}
		lines[i] = " " + icon + rest
	}
	return strings.Join(lines, "\n")
}

func (o *Output) arrow() string {
	if o.goos == "windows" {
		return "!"
	}
	return "▸"
}
