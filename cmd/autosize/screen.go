package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/grindlemire/go-autosize/internal/debug"
)

const (
	// Alternate screen on, cursor hidden.
	enterScreen = "\x1b[?1049h\x1b[?25l"
	// Cursor shown, alternate screen off.
	leaveScreen = "\x1b[?25h\x1b[?1049l"
)

// writeScreen writes s to the terminal. A failed frame is logged and the
// next one is tried as usual.
func writeScreen(w io.Writer, s string) {
	if _, err := io.WriteString(w, s); err != nil {
		debug.Log("term: write screen: %v", err)
	}
}

// restoreScreen leaves the alternate screen and restores the saved terminal
// mode. Both steps run even if the first fails.
func restoreScreen(w io.Writer, restore func() error) error {
	var errs []error
	if _, err := io.WriteString(w, leaveScreen); err != nil {
		errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
	}
	if err := restore(); err != nil {
		errs = append(errs, fmt.Errorf("restore terminal mode: %w", err))
	}
	err := errors.Join(errs...)
	if err != nil {
		debug.Log("term: %v", err)
	}
	return err
}
