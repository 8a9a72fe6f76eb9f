package autosize

import (
	"errors"
	"fmt"
	"sync"

	"github.com/grindlemire/go-autosize/internal/debug"
)

var (
	// ErrNoHost is returned by New when no host is supplied.
	ErrNoHost = errors.New("autosize: nil host")
	// ErrNoChildren is returned by New when no children function is supplied.
	ErrNoChildren = errors.New("autosize: nil children function")
	// ErrAttached is returned by Attach on a sizer that is already attached.
	ErrAttached = errors.New("autosize: already attached")
	// ErrDetached is returned by Attach once the sizer has been detached.
	ErrDetached = errors.New("autosize: detached")
)

// Phase is the lifecycle position of an AutoSizer.
type Phase uint8

const (
	Unattached Phase = iota
	attaching
	Attached
	Detached
)

func (p Phase) String() string {
	switch p {
	case Unattached:
		return "unattached"
	case attaching:
		return "attaching"
	case Attached:
		return "attached"
	case Detached:
		return "detached"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// View is one render of an AutoSizer: the container and the children output
// for the size current at render time.
type View[R any] struct {
	Container *Element
	Content   R
}

// AutoSizer measures a full-bleed container and renders children with the
// measured size. R is whatever the children function produces.
//
// Notification handlers, Attach and Detach are expected to run on a single
// goroutine (see Loop). Size and Render may be called from anywhere.
type AutoSizer[R any] struct {
	host      Host
	children  func(Size) R
	onResize  func(Size)
	container *Element
	size      *State[Size]

	mu         sync.Mutex
	phase      Phase
	disconnect Disconnect
}

// New creates an AutoSizer bound to host. The children function must be
// free of side effects: it runs on every render and every size change.
func New[R any](host Host, children func(Size) R, opts ...Option) (*AutoSizer[R], error) {
	if host == nil {
		return nil, ErrNoHost
	}
	if children == nil {
		return nil, ErrNoChildren
	}

	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	a := &AutoSizer[R]{
		host:      host,
		children:  children,
		onResize:  cfg.onResize,
		container: NewElement(cfg.class, fullBleed(cfg.style)),
		size:      NewState(Size{Width: cfg.initialWidth, Height: cfg.initialHeight}),
	}
	if cfg.ref != nil {
		cfg.ref.Set(a.container)
	}
	return a, nil
}

// Size returns the latest measured size, or the initial size before the
// first measurement.
func (a *AutoSizer[R]) Size() Size {
	return a.size.Get()
}

// Container returns the element the sizer measures.
func (a *AutoSizer[R]) Container() *Element {
	return a.container
}

// Phase returns the current lifecycle phase.
func (a *AutoSizer[R]) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Render returns the container and the children output for the current size.
func (a *AutoSizer[R]) Render() View[R] {
	return a.view(a.size.Get())
}

// Bind calls fn with a fresh View every time the size is set.
func (a *AutoSizer[R]) Bind(fn func(View[R])) Unbind {
	return a.size.Bind(func(s Size) {
		fn(a.view(s))
	})
}

func (a *AutoSizer[R]) view(s Size) View[R] {
	return View[R]{Container: a.container, Content: a.children(s)}
}

// Attach measures the container and subscribes to resize notifications.
//
// The mount-time measurement only updates the size (and calls OnResize) when
// it differs from the current size. Notifications after that always update.
func (a *AutoSizer[R]) Attach() error {
	a.mu.Lock()
	switch a.phase {
	case attaching, Attached:
		a.mu.Unlock()
		return ErrAttached
	case Detached:
		a.mu.Unlock()
		return ErrDetached
	}
	a.phase = attaching
	a.mu.Unlock()

	box, err := a.host.Measure(a.container)
	if err != nil {
		a.abortAttach()
		return fmt.Errorf("autosize: measure container: %w", err)
	}
	if measured := SizeOfBox(box); measured != a.size.Get() {
		debug.Log("AutoSizer.Attach: initial measurement %v", measured)
		a.apply(measured)
	}

	disconnect, err := a.host.Observe(a.container, a.handleEntries)
	if err != nil {
		a.abortAttach()
		return fmt.Errorf("autosize: observe container: %w", err)
	}

	a.mu.Lock()
	if a.phase == Detached {
		// Detached while attaching: the subscription never becomes live.
		a.mu.Unlock()
		disconnect()
		return ErrDetached
	}
	a.phase = Attached
	a.disconnect = disconnect
	a.mu.Unlock()
	debug.Log("AutoSizer.Attach: observing container")
	return nil
}

// abortAttach rolls a failed attach back to Unattached unless the sizer was
// detached in the meantime.
func (a *AutoSizer[R]) abortAttach() {
	a.mu.Lock()
	if a.phase == attaching {
		a.phase = Unattached
	}
	a.mu.Unlock()
}

// Detach disconnects the resize subscription. The sizer cannot be attached
// again. Calling Detach more than once is safe.
func (a *AutoSizer[R]) Detach() {
	a.mu.Lock()
	if a.phase == Detached {
		a.mu.Unlock()
		return
	}
	a.phase = Detached
	disconnect := a.disconnect
	a.disconnect = nil
	a.mu.Unlock()

	if disconnect != nil {
		debug.Log("AutoSizer.Detach: disconnecting observer")
		disconnect()
	}
}

// Init attaches the sizer and returns Detach, pairing setup and cleanup at
// the mount site. Attach errors are logged.
func (a *AutoSizer[R]) Init() func() {
	if err := a.Attach(); err != nil {
		debug.Log("AutoSizer.Init: %v", err)
	}
	return a.Detach
}

func (a *AutoSizer[R]) handleEntries(entries []ResizeEntry) {
	if len(entries) == 0 {
		return
	}
	a.mu.Lock()
	live := a.phase == attaching || a.phase == Attached
	a.mu.Unlock()
	if !live {
		debug.Log("AutoSizer: dropping notification after detach")
		return
	}
	a.apply(SizeOfBox(entries[0].ContentRect))
}

func (a *AutoSizer[R]) apply(s Size) {
	a.size.Set(s)
	if a.onResize != nil {
		a.onResize(s)
	}
}
