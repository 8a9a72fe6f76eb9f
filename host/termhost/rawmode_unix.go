//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package termhost

import "golang.org/x/sys/unix"

// EnableRawMode puts the terminal on fd into raw mode so single key presses
// can be read. The returned function restores the previous state.
func EnableRawMode(fd int) (restore func() error, err error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	saved := *termios

	// No echo, byte-at-a-time input, no signal keys, no extended input.
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(fd, ioctlSetTermios, &saved)
	}, nil
}
