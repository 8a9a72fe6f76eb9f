package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "AUTOSIZE_DEBUG"

var (
	out      io.Writer
	closer   io.Closer
	mu       sync.Mutex
	resolved bool
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. An empty path disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	resolved = true
	closeLocked()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	out = f
	closer = f
	return nil
}

// SetOutput directs debug logging to w. Passing nil disables logging.
// Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	resolved = true
	out = w
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out = nil
	closer = nil
	return err
}

// Enabled reports whether debug logging has a destination.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return out != nil
}

// resolveLocked reads EnvVar the first time logging is used.
func resolveLocked() {
	if resolved {
		return
	}
	// A bad path leaves logging disabled rather than failing the caller.
	_ = initLocked(os.Getenv(EnvVar))
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	resolveLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}
