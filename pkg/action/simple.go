package action

import (
	"fmt"
	"io"
)

// simpleRenderer prints plain "action... status" lines. It is used when
// stderr is not a terminal, and in mock and debug modes.
type simpleRenderer struct {
	w io.Writer
	// lineOpen is true while "action..." waits for its status
	lineOpen bool
}

func (r *simpleRenderer) start(t *Task) {
	fmt.Fprint(r.w, t.line(t.Status))
	r.lineOpen = true
}

func (r *simpleRenderer) update(t *Task, prevStatus string) {
	if r.lineOpen && prevStatus == "" {
		fmt.Fprintf(r.w, " %s\n", t.Status)
	} else {
		r.breakLine()
		fmt.Fprintln(r.w, t.line(t.Status))
	}
	r.lineOpen = false
}

func (r *simpleRenderer) pause(t *Task, icon string) {
	if icon == "" {
		r.breakLine()
		return
	}
	t.Status = icon
	if r.lineOpen {
		fmt.Fprintf(r.w, " %s\n", icon)
	} else {
		fmt.Fprintln(r.w, t.line(icon))
	}
	r.lineOpen = false
}

func (r *simpleRenderer) resume(*Task) {}

func (r *simpleRenderer) stop(t *Task, status string) {
	if r.lineOpen {
		fmt.Fprintf(r.w, " %s\n", status)
	} else {
		fmt.Fprintln(r.w, t.line(status))
	}
	r.lineOpen = false
}

func (r *simpleRenderer) breakLine() {
	if r.lineOpen {
		fmt.Fprintln(r.w)
		r.lineOpen = false
	}
}
