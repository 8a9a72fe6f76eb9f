package autosize

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/grindlemire/go-autosize/internal/debug"
)

// Loop runs queued functions one at a time on the goroutine that called Run.
// Hosts that observe on background goroutines hand their notifications to
// QueueUpdate so every handler runs to completion before the next starts.
type Loop struct {
	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once

	mu       sync.Mutex
	running  bool
	watchers []Watcher

	queueSize     int
	handleSignals bool
}

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// WithWatchers registers watchers that start when Run begins.
func WithWatchers(ws ...Watcher) LoopOption {
	return func(l *Loop) error {
		l.watchers = append(l.watchers, ws...)
		return nil
	}
}

// WithoutSignalHandling stops Run from treating SIGINT as a stop request.
func WithoutSignalHandling() LoopOption {
	return func(l *Loop) error {
		l.handleSignals = false
		return nil
	}
}

// NewLoop creates a stopped loop.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		stopCh:        make(chan struct{}),
		queueSize:     256,
		handleSignals: true,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.eventQueue = make(chan func(), l.queueSize)
	return l, nil
}

var _ CancelDispatcher = (*Loop)(nil)

// QueueUpdate enqueues fn to run on the loop. Safe to call from any
// goroutine. Blocks while the queue is full; returns false if the loop
// stopped before fn could be queued.
func (l *Loop) QueueUpdate(fn func()) bool {
	return l.QueueUpdateCancel(fn, nil)
}

// QueueUpdateCancel is QueueUpdate that also gives up when cancel closes.
// A nil cancel never fires.
func (l *Loop) QueueUpdateCancel(fn func(), cancel <-chan struct{}) bool {
	select {
	case <-l.stopCh:
		return false
	case <-cancel:
		return false
	default:
	}
	select {
	case l.eventQueue <- fn:
		return true
	case <-l.stopCh:
		return false
	case <-cancel:
		return false
	}
}

// AddWatcher registers a watcher. If the loop is already running the
// watcher starts immediately.
func (l *Loop) AddWatcher(w Watcher) {
	l.mu.Lock()
	l.watchers = append(l.watchers, w)
	running := l.running
	l.mu.Unlock()
	if running {
		w.Start(l.eventQueue, l.stopCh)
	}
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.stopCh
}

// Run processes queued functions in order until Stop is called, ctx is
// cancelled or SIGINT arrives. Run returns ctx.Err() on cancellation and nil
// otherwise.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return fmt.Errorf("loop is already running")
	}
	l.running = true
	watchers := append([]Watcher(nil), l.watchers...)
	l.mu.Unlock()

	if l.handleSignals {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		go func() {
			select {
			case <-sigCh:
				debug.Log("Loop: interrupt received")
				l.Stop()
			case <-l.stopCh:
			}
			signal.Stop(sigCh)
		}()
	}

	for _, w := range watchers {
		w.Start(l.eventQueue, l.stopCh)
	}

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.stopCh:
			return nil
		case fn := <-l.eventQueue:
			fn()
		}
	}
}

// Stop signals Run to return and stops all watchers.
// Stop is idempotent - multiple calls are safe.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}
