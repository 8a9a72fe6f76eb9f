package autosize

import (
	"testing"
	"time"
)

func TestWatch_DeliversOnLoop(t *testing.T) {
	ch := make(chan string)
	received := make(chan string, 3)
	l := newTestLoop(t, WithWatchers(Watch(ch, func(s string) { received <- s })))
	done := runLoop(t, l)
	defer func() {
		l.Stop()
		<-done
	}()

	for _, s := range []string{"a", "b", "c"} {
		ch <- s
	}
	for _, want := range []string{"a", "b", "c"} {
		select {
		case got := <-received:
			if got != want {
				t.Errorf("received %q, want %q", got, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestPoll_TicksUntilStopped(t *testing.T) {
	stop := make(chan struct{})
	ticks := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		Poll(time.Millisecond, stop, func() {
			select {
			case ticks <- struct{}{}:
			default:
			}
		})
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(5 * time.Second):
			t.Fatalf("tick %d never arrived", i)
		}
	}

	close(stop)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Poll did not return after stop closed")
	}
}
