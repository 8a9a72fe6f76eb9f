//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package termhost

import "errors"

// EnableRawMode is not supported on this platform.
func EnableRawMode(int) (restore func() error, err error) {
	return nil, errors.ErrUnsupported
}
