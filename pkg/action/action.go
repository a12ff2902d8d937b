// Package action shows the progress of one long running task on stderr.
//
// Only one task runs at a time. Everything written through the output
// façade while a task runs goes through Pause, which takes the task
// indicator off the screen for the duration of the write so log lines
// never interleave with a spinner redraw.
package action

import (
	"io"
	"sync"
)

// DefaultStopStatus is printed when a task is stopped without a message
const DefaultStopStatus = "done"

// Task is the state of the running task
type Task struct {
	Action string
	Status string
	// Active is false while the task is paused
	Active bool
}

func (t *Task) line(status string) string {
	if status == "" {
		return t.Action + "..."
	}
	return t.Action + "... " + status
}

// renderer draws the task. Calls are serialized by Action.
type renderer interface {
	start(t *Task)
	update(t *Task, prevStatus string)
	pause(t *Task, icon string)
	resume(t *Task)
	stop(t *Task, status string)
}

// Options configures an Action
type Options struct {
	// Writer receives the task output, normally stderr
	Writer io.Writer
	// Spinner selects the animated renderer. Use it only when Writer is
	// an interactive terminal.
	Spinner bool
}

// Action holds the single task slot
type Action struct {
	mu   sync.Mutex
	task *Task
	r    renderer
}

// New creates an Action
func New(opts Options) *Action {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	var r renderer
	if opts.Spinner {
		r = newSpinnerRenderer(w)
	} else {
		r = &simpleRenderer{w: w}
	}
	return &Action{r: r}
}

// Start begins a task. A task that is still running is stopped first.
func (a *Action) Start(action, status string) {
	a.Stop("")

	a.mu.Lock()
	defer a.mu.Unlock()
	a.task = &Task{Action: action, Status: status, Active: true}
	a.r.start(a.task)
}

// Stop ends the running task with msg, or "done" when msg is empty
func (a *Action) Stop(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.task == nil {
		return
	}
	if msg == "" {
		msg = DefaultStopStatus
	}
	a.r.stop(a.task, msg)
	a.task = nil
}

// SetStatus changes the status shown next to the running task
func (a *Action) SetStatus(status string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.task == nil {
		return
	}
	prev := a.task.Status
	a.task.Status = status
	if a.task.Active {
		a.r.update(a.task, prev)
	}
}

// Task returns a copy of the running task, or nil
func (a *Action) Task() *Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.task == nil {
		return nil
	}
	t := *a.task
	return &t
}

// Running reports whether a task is running
func (a *Action) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task != nil
}

// Pause takes the task off the screen, runs fn and puts it back. A
// non-empty icon is stamped on the task line first. Without a running
// task, or when already paused, fn just runs. The error of fn is
// returned.
func (a *Action) Pause(fn func() error, icon string) error {
	a.mu.Lock()
	t := a.task
	active := t != nil && t.Active
	if active {
		a.r.pause(t, icon)
		t.Active = false
	}
	a.mu.Unlock()

	err := fn()

	if active {
		a.mu.Lock()
		// fn may have stopped or replaced the task
		if a.task == t {
			t.Active = true
			a.r.resume(t)
		}
		a.mu.Unlock()
	}
	return err
}
