//go:build unix

package termhost

import (
	"os"
	"os/signal"
	"sync"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/internal/debug"
	"golang.org/x/sys/unix"
)

// terminalSize returns the terminal dimensions.
func terminalSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Observe notifies onEntries on every SIGWINCH until the returned
// Disconnect is called. Each call installs its own signal registration.
func (h *Host) Observe(target *autosize.Element, onEntries func([]autosize.ResizeEntry)) (autosize.Disconnect, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)
	stop := make(chan struct{})

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-sigCh:
				debug.Log("termhost: SIGWINCH")
				h.notify(target, onEntries, stop)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stop)
		})
	}, nil
}
