package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"syscall"

	"github.com/arthur-debert/clout/pkg/errors"
)

// Stream is one of the two output streams. In mock mode everything
// logged is kept in memory and can be read back with Output.
type Stream struct {
	mu  sync.Mutex
	w   io.Writer
	out *Output
	buf strings.Builder
}

func newStream(w io.Writer, out *Output) *Stream {
	return &Stream{w: w, out: out}
}

// WriteString writes msg as is, without pausing the action. In mock
// mode msg is also kept in the buffer.
func (s *Stream) WriteString(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out.Config.Mock {
		s.buf.WriteString(msg)
	}
	return s.write(msg)
}

// Log writes msg followed by a newline while the action is paused. In
// mock mode the line is only buffered.
func (s *Stream) Log(msg string) error {
	return s.emit(msg + "\n")
}

// Logf is Log with fmt.Sprintf formatting
func (s *Stream) Logf(format string, args ...interface{}) error {
	return s.Log(fmt.Sprintf(format, args...))
}

// Write implements io.Writer with Log semantics minus the added newline,
// so loggers can write through the stream.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.emit(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// direct returns a writer with WriteString semantics. The action
// renderers write through it since they already own the screen.
func (s *Stream) direct() io.Writer {
	return directWriter{s}
}

type directWriter struct{ s *Stream }

func (d directWriter) Write(p []byte) (int, error) {
	if err := d.s.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Output returns everything buffered in mock mode
func (s *Stream) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (s *Stream) emit(msg string) error {
	return s.out.Action.Pause(func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.out.Config.Mock {
			s.buf.WriteString(msg)
			return nil
		}
		return s.write(msg)
	}, "")
}

// write ignores EPIPE: a closed pipe (cli | head) is not worth an error
func (s *Stream) write(msg string) error {
	_, err := io.WriteString(s.w, msg)
	if err == nil || stderrors.Is(err, syscall.EPIPE) {
		return nil
	}
	return errors.Wrap(err, errors.ErrStreamWrite, "failed to write output")
}
