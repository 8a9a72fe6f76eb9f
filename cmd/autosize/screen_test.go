package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/grindlemire/go-autosize/internal/debug"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestRestoreScreen(t *testing.T) {
	writeErr := errors.New("write failed")
	modeErr := errors.New("tcsetattr failed")

	type tc struct {
		writeErr   error
		restoreErr error
		wantErrs   []error
	}

	tests := map[string]tc{
		"clean":         {},
		"write fails":   {writeErr: writeErr, wantErrs: []error{writeErr}},
		"restore fails": {restoreErr: modeErr, wantErrs: []error{modeErr}},
		"both fail":     {writeErr: writeErr, restoreErr: modeErr, wantErrs: []error{writeErr, modeErr}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var log bytes.Buffer
			debug.SetOutput(&log)
			defer debug.SetOutput(nil)

			var screen bytes.Buffer
			var w io.Writer = &screen
			if tt.writeErr != nil {
				w = failingWriter{err: tt.writeErr}
			}
			restored := false
			err := restoreScreen(w, func() error {
				restored = true
				return tt.restoreErr
			})

			if !restored {
				t.Error("terminal mode was not restored")
			}
			if tt.wantErrs == nil {
				if err != nil {
					t.Fatalf("restoreScreen() error: %v", err)
				}
				if screen.String() != leaveScreen {
					t.Errorf("wrote %q, want %q", screen.String(), leaveScreen)
				}
				if log.Len() != 0 {
					t.Errorf("unexpected debug output %q", log.String())
				}
				return
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("restoreScreen() error = %v, want it to wrap %v", err, want)
				}
			}
			if !strings.Contains(log.String(), err.Error()) {
				t.Errorf("debug log %q does not record %q", log.String(), err)
			}
		})
	}
}

func TestWriteScreen_LogsFailure(t *testing.T) {
	var log bytes.Buffer
	debug.SetOutput(&log)
	defer debug.SetOutput(nil)

	writeScreen(failingWriter{err: errors.New("broken pipe")}, "frame")
	if !strings.Contains(log.String(), "broken pipe") {
		t.Errorf("debug log = %q, want the write error", log.String())
	}
}
