package autosize

// ResizeEntry describes one observed change: the element and its new
// content box.
type ResizeEntry struct {
	Target      *Element
	ContentRect Box
}

// Disconnect stops a subscription created by ResizeObserver.Observe.
type Disconnect func()

// Measurer reports an element's current content box.
type Measurer interface {
	Measure(target *Element) (Box, error)
}

// ResizeObserver notifies onEntries whenever target's content box changes.
// A notification may carry zero entries. Each Observe call is an
// independent registration with its own Disconnect.
type ResizeObserver interface {
	Observe(target *Element, onEntries func([]ResizeEntry)) (Disconnect, error)
}

// Host is the environment an AutoSizer measures itself in.
type Host interface {
	Measurer
	ResizeObserver
}

// Dispatcher runs functions on the goroutine that owns the UI. Loop is the
// usual implementation.
type Dispatcher interface {
	QueueUpdate(fn func()) bool
}

// DispatchFunc adapts a plain function to Dispatcher.
type DispatchFunc func(fn func()) bool

// QueueUpdate calls d(fn).
func (d DispatchFunc) QueueUpdate(fn func()) bool {
	return d(fn)
}

// Immediate is a Dispatcher that runs fn on the calling goroutine.
var Immediate Dispatcher = DispatchFunc(func(fn func()) bool {
	fn()
	return true
})

// CancelDispatcher is a Dispatcher whose queueing can be abandoned while it
// waits for room.
type CancelDispatcher interface {
	Dispatcher
	QueueUpdateCancel(fn func(), cancel <-chan struct{}) bool
}

// Dispatch queues fn on d, giving up when cancel closes if d supports it.
// It reports whether fn was queued.
func Dispatch(d Dispatcher, fn func(), cancel <-chan struct{}) bool {
	if cd, ok := d.(CancelDispatcher); ok {
		return cd.QueueUpdateCancel(fn, cancel)
	}
	return d.QueueUpdate(fn)
}
