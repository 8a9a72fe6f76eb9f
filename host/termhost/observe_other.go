//go:build !unix && !windows

package termhost

import (
	"errors"

	autosize "github.com/grindlemire/go-autosize"
)

func terminalSize(int) (cols, rows int, err error) {
	return 0, 0, errors.ErrUnsupported
}

// Observe is not supported on this platform.
func (h *Host) Observe(*autosize.Element, func([]autosize.ResizeEntry)) (autosize.Disconnect, error) {
	return nil, errors.ErrUnsupported
}
