// Package termhost measures elements against the terminal window.
//
// The terminal is the parent box: an element laid out by this host fills
// cols x rows cells starting at the origin. On unix systems notifications
// are driven by SIGWINCH; on windows the console size is polled.
package termhost

import (
	"fmt"
	"os"
	"time"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/internal/debug"
)

// DefaultPollInterval is how often the windows console size is sampled.
const DefaultPollInterval = 250 * time.Millisecond

// Host is an autosize.Host backed by a terminal file descriptor.
type Host struct {
	fd       int
	dispatch autosize.Dispatcher
	interval time.Duration
}

// Ensure Host implements autosize.Host.
var _ autosize.Host = (*Host)(nil)

// Option configures a Host.
type Option func(*Host) error

// WithPollInterval sets the sampling interval on platforms without resize
// signals. Must be positive.
func WithPollInterval(d time.Duration) Option {
	return func(h *Host) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got %v", d)
		}
		h.interval = d
		return nil
	}
}

// New creates a host for the terminal on fd. Notification handlers run
// through dispatch, normally the application's autosize.Loop.
// New fails if fd is not a terminal.
func New(fd int, dispatch autosize.Dispatcher, opts ...Option) (*Host, error) {
	if dispatch == nil {
		return nil, fmt.Errorf("termhost: nil dispatcher")
	}
	h := &Host{fd: fd, dispatch: dispatch, interval: DefaultPollInterval}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if _, _, err := terminalSize(fd); err != nil {
		return nil, fmt.Errorf("termhost: fd %d is not a terminal: %w", fd, err)
	}
	return h, nil
}

// NewStdout creates a host for the process's standard output.
func NewStdout(dispatch autosize.Dispatcher, opts ...Option) (*Host, error) {
	return New(int(os.Stdout.Fd()), dispatch, opts...)
}

// Size returns the terminal dimensions in cells.
func (h *Host) Size() (cols, rows int, err error) {
	return terminalSize(h.fd)
}

// Parent returns the terminal as a box at the origin.
func (h *Host) Parent() (autosize.Box, error) {
	cols, rows, err := terminalSize(h.fd)
	if err != nil {
		return autosize.Box{}, err
	}
	return autosize.NewBox(0, 0, float64(cols), float64(rows)), nil
}

// Measure lays target out in the terminal and returns its content box.
func (h *Host) Measure(target *autosize.Element) (autosize.Box, error) {
	parent, err := h.Parent()
	if err != nil {
		return autosize.Box{}, fmt.Errorf("termhost: read terminal size: %w", err)
	}
	target.Layout(parent)
	return target.ContentBox(), nil
}

// notify measures target on the dispatcher's goroutine and hands the entry
// to onEntries. Measurement failures are logged and produce no
// notification. Closing stop abandons a dispatch still waiting for room.
func (h *Host) notify(target *autosize.Element, onEntries func([]autosize.ResizeEntry), stop <-chan struct{}) {
	queued := autosize.Dispatch(h.dispatch, func() {
		box, err := h.Measure(target)
		if err != nil {
			debug.Log("termhost: %v", err)
			return
		}
		onEntries([]autosize.ResizeEntry{{Target: target, ContentRect: box}})
	}, stop)
	if !queued {
		debug.Log("termhost: notification dropped, observer gone")
	}
}
