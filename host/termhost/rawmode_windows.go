//go:build windows

package termhost

import "golang.org/x/sys/windows"

// EnableRawMode puts the console on fd into raw-ish mode and returns a
// function restoring the previous mode.
func EnableRawMode(fd int) (restore func() error, err error) {
	h := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, err
	}

	raw := mode
	raw &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_WINDOW_INPUT | windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	if err := windows.SetConsoleMode(h, raw); err != nil {
		return nil, err
	}
	return func() error {
		return windows.SetConsoleMode(h, mode)
	}, nil
}
