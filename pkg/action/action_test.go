package action

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimple() (*Action, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Options{Writer: &buf}), &buf
}

func TestStartStop(t *testing.T) {
	a, buf := newSimple()

	a.Start("Fetching releases", "")
	require.True(t, a.Running())
	a.Stop("")

	assert.False(t, a.Running())
	assert.Nil(t, a.Task())
	assert.Equal(t, "Fetching releases... done\n", buf.String())
}

func TestStartWithStatus(t *testing.T) {
	a, buf := newSimple()

	a.Start("Scaling dynos", "web=2")
	a.Stop("finished")

	assert.Equal(t, "Scaling dynos... web=2 finished\n", buf.String())
}

func TestStopWithoutTask(t *testing.T) {
	a, buf := newSimple()

	a.Stop("done")

	assert.Empty(t, buf.String())
}

func TestStartStopsPrevious(t *testing.T) {
	a, buf := newSimple()

	a.Start("first", "")
	a.Start("second", "")
	a.Stop("ok")

	assert.Equal(t, "first... done\nsecond... ok\n", buf.String())
}

func TestSetStatus(t *testing.T) {
	a, buf := newSimple()

	a.Start("Uploading", "")
	a.SetStatus("50%")
	a.SetStatus("100%")
	a.Stop("")

	assert.Equal(t, "Uploading... 50%\nUploading... 100%\nUploading... done\n", buf.String())
	assert.Nil(t, a.Task())
}

func TestSetStatusWithoutTask(t *testing.T) {
	a, buf := newSimple()
	a.SetStatus("ignored")
	assert.Empty(t, buf.String())
}

func TestPause(t *testing.T) {
	t.Run("breaks the task line around the write", func(t *testing.T) {
		a, buf := newSimple()

		a.Start("Restarting", "")
		err := a.Pause(func() error {
			buf.WriteString("log line\n")
			return nil
		}, "")
		require.NoError(t, err)
		a.Stop("")

		assert.Equal(t, "Restarting...\nlog line\nRestarting... done\n", buf.String())
	})

	t.Run("task is inactive while fn runs", func(t *testing.T) {
		a, _ := newSimple()
		a.Start("Restarting", "")

		_ = a.Pause(func() error {
			task := a.Task()
			require.NotNil(t, task)
			assert.False(t, task.Active)
			return nil
		}, "")

		assert.True(t, a.Task().Active)
	})

	t.Run("icon is stamped on the task", func(t *testing.T) {
		a, buf := newSimple()

		a.Start("Deploying", "")
		_ = a.Pause(func() error {
			buf.WriteString("warning\n")
			return nil
		}, "!")

		assert.Equal(t, "Deploying... !\nwarning\n", buf.String())
		assert.Equal(t, "!", a.Task().Status)
	})

	t.Run("error is passed through", func(t *testing.T) {
		a, _ := newSimple()
		want := errors.New("boom")

		a.Start("Deploying", "")
		got := a.Pause(func() error { return want }, "")

		assert.Same(t, want, got)
	})

	t.Run("without a task fn just runs", func(t *testing.T) {
		a, buf := newSimple()
		called := false

		_ = a.Pause(func() error {
			called = true
			return nil
		}, "!")

		assert.True(t, called)
		assert.Empty(t, buf.String())
	})

	t.Run("nested pauses do not redraw", func(t *testing.T) {
		a, buf := newSimple()

		a.Start("Outer", "")
		_ = a.Pause(func() error {
			return a.Pause(func() error {
				buf.WriteString("inner\n")
				return nil
			}, "")
		}, "")
		a.Stop("")

		assert.Equal(t, "Outer...\ninner\nOuter... done\n", buf.String())
	})

	t.Run("stopping inside fn is not undone", func(t *testing.T) {
		a, _ := newSimple()

		a.Start("Outer", "")
		_ = a.Pause(func() error {
			a.Stop("failed")
			return nil
		}, "")

		assert.False(t, a.Running())
	})
}

// syncBuffer guards writes from the spinner goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner(t *testing.T) {
	var buf syncBuffer
	a := New(Options{Writer: &buf, Spinner: true})

	a.Start("Building", "")
	require.True(t, a.Running())
	_ = a.Pause(func() error { return nil }, "")
	a.SetStatus("compiling")
	a.Stop("done")

	assert.False(t, a.Running())
	assert.Contains(t, buf.String(), "Building... done\n", "final status stays on screen")
}

func TestRendererSelection(t *testing.T) {
	_, ok := New(Options{Spinner: true}).r.(*spinnerRenderer)
	assert.True(t, ok)

	_, ok = New(Options{}).r.(*simpleRenderer)
	assert.True(t, ok)
}

// pausingWriter writes the way the output streams do, through Pause
type pausingWriter struct {
	a   *Action
	buf *syncBuffer
}

func (w pausingWriter) Write(p []byte) (int, error) {
	err := w.a.Pause(func() error {
		_, err := w.buf.Write(p)
		return err
	}, "")
	return len(p), err
}

func TestSpinnerLogsBesideGlobalLogger(t *testing.T) {
	var buf, global syncBuffer
	a := New(Options{Writer: &buf, Spinner: true})
	r := a.r.(*spinnerRenderer)

	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Logger = zerolog.New(pausingWriter{a: a, buf: &global})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	// renderer calls run with the action locked
	a.mu.Lock()
	r.log.Debug().Msg("Failed to stop spinner")
	a.mu.Unlock()

	assert.Contains(t, buf.String(), "Failed to stop spinner")
	assert.Contains(t, buf.String(), "component=action")
	assert.Empty(t, global.String())
}
