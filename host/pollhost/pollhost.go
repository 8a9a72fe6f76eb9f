// Package pollhost is an autosize.Host for environments without push-based
// resize notifications. It samples the parent box on an interval and
// notifies observers when the sample changes.
package pollhost

import (
	"fmt"
	"sync"
	"time"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/internal/debug"
)

// DefaultInterval is the default sampling interval.
const DefaultInterval = 250 * time.Millisecond

// ParentFunc reports the current parent box.
type ParentFunc func() (autosize.Box, error)

// Host samples a ParentFunc.
type Host struct {
	parent   ParentFunc
	dispatch autosize.Dispatcher
	interval time.Duration
}

// Ensure Host implements autosize.Host.
var _ autosize.Host = (*Host)(nil)

// Option configures a Host.
type Option func(*Host) error

// WithInterval sets the sampling interval. Must be positive.
func WithInterval(d time.Duration) Option {
	return func(h *Host) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got %v", d)
		}
		h.interval = d
		return nil
	}
}

// New creates a polling host. Notification handlers run through dispatch.
func New(parent ParentFunc, dispatch autosize.Dispatcher, opts ...Option) (*Host, error) {
	if parent == nil {
		return nil, fmt.Errorf("pollhost: nil parent func")
	}
	if dispatch == nil {
		return nil, fmt.Errorf("pollhost: nil dispatcher")
	}
	h := &Host{parent: parent, dispatch: dispatch, interval: DefaultInterval}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Measure lays target out in the current parent box and returns its
// content box.
func (h *Host) Measure(target *autosize.Element) (autosize.Box, error) {
	parent, err := h.parent()
	if err != nil {
		return autosize.Box{}, fmt.Errorf("pollhost: sample parent: %w", err)
	}
	target.Layout(parent)
	return target.ContentBox(), nil
}

// Observe starts sampling for target. The first sample is the baseline and
// is not reported. Sampling errors are logged and skipped.
func (h *Host) Observe(target *autosize.Element, onEntries func([]autosize.ResizeEntry)) (autosize.Disconnect, error) {
	last, err := h.parent()
	if err != nil {
		return nil, fmt.Errorf("pollhost: sample parent: %w", err)
	}
	stop := make(chan struct{})

	go autosize.Poll(h.interval, stop, func() {
		parent, err := h.parent()
		if err != nil {
			debug.Log("pollhost: %v", err)
			return
		}
		if parent == last {
			return
		}
		last = parent
		autosize.Dispatch(h.dispatch, func() {
			target.Layout(parent)
			onEntries([]autosize.ResizeEntry{{Target: target, ContentRect: target.ContentBox()}})
		}, stop)
	})

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}, nil
}
