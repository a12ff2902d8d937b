package action

import (
	"fmt"
	"io"

	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// spinnerRenderer animates the task with a pterm spinner. The spinner
// line is removed while paused and when stopped; the final status is
// printed as a plain line so it stays in the scrollback.
type spinnerRenderer struct {
	w       io.Writer
	spinner *pterm.SpinnerPrinter
	// log writes to w directly. Renderer calls hold Action.mu, so the
	// global logger, which pauses the action, must not be used here.
	log zerolog.Logger
}

func newSpinnerRenderer(w io.Writer) *spinnerRenderer {
	return &spinnerRenderer{
		w:   w,
		log: logging.GetLogger("action").Output(zerolog.ConsoleWriter{Out: w, NoColor: true}),
	}
}

func (r *spinnerRenderer) start(t *Task) {
	r.spin(t)
}

func (r *spinnerRenderer) update(t *Task, _ string) {
	if r.spinner != nil {
		r.spinner.UpdateText(t.line(t.Status))
	}
}

func (r *spinnerRenderer) pause(t *Task, icon string) {
	r.halt()
	if icon != "" {
		t.Status = icon
		fmt.Fprintln(r.w, t.line(icon))
	}
}

func (r *spinnerRenderer) resume(t *Task) {
	r.spin(t)
}

func (r *spinnerRenderer) stop(t *Task, status string) {
	r.halt()
	fmt.Fprintln(r.w, t.line(status))
}

func (r *spinnerRenderer) spin(t *Task) {
	spinner, err := pterm.DefaultSpinner.
		WithWriter(r.w).
		WithRemoveWhenDone(true).
		Start(t.line(t.Status))
	if err != nil {
		r.log.Debug().Err(err).Str("action", t.Action).Msg("Failed to start spinner")
		return
	}
	r.spinner = spinner
}

func (r *spinnerRenderer) halt() {
	if r.spinner == nil {
		return
	}
	if err := r.spinner.Stop(); err != nil {
		r.log.Debug().Err(err).Msg("Failed to stop spinner")
	}
	r.spinner = nil
}
