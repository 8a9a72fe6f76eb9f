package autosize

import "time"

// Watcher represents a deferred event source that starts when a Loop runs.
type Watcher interface {
	// Start begins the watcher goroutine. The eventQueue channel and stopCh
	// are provided by the Loop.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a channel watcher. The handler is called on the loop
// whenever data arrives on the channel.
func Watch[T any](ch <-chan T, handler func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Start the watcher.
func (w *ChannelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case eventQueue <- func() { w.handler(val) }:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// Poll calls tick every interval until stop is closed. It blocks, so
// callers run it on its own goroutine.
func Poll(interval time.Duration, stop <-chan struct{}, tick func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			tick()
		}
	}
}
