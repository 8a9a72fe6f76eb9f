//go:build windows

package termhost

import (
	"sync"

	autosize "github.com/grindlemire/go-autosize"
	"golang.org/x/sys/windows"
)

// terminalSize returns the visible console window dimensions.
func terminalSize(fd int) (cols, rows int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, err
	}
	cols = int(info.Window.Right - info.Window.Left + 1)
	rows = int(info.Window.Bottom - info.Window.Top + 1)
	return cols, rows, nil
}

// Observe samples the console size every poll interval and notifies
// onEntries when it changes. Windows consoles have no resize signal.
func (h *Host) Observe(target *autosize.Element, onEntries func([]autosize.ResizeEntry)) (autosize.Disconnect, error) {
	lastCols, lastRows, err := terminalSize(h.fd)
	if err != nil {
		return nil, err
	}
	stop := make(chan struct{})

	go autosize.Poll(h.interval, stop, func() {
		cols, rows, err := terminalSize(h.fd)
		if err != nil || (cols == lastCols && rows == lastRows) {
			return
		}
		lastCols, lastRows = cols, rows
		h.notify(target, onEntries, stop)
	})

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}, nil
}
