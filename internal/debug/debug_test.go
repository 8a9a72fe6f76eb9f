package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("resized to %dx%d", 80, 24)

	got := buf.String()
	if !strings.Contains(got, "resized to 80x24") {
		t.Errorf("Log output = %q, want it to contain %q", got, "resized to 80x24")
	}
	if !strings.HasPrefix(got, "[") {
		t.Errorf("Log output = %q, want timestamp prefix", got)
	}
}

func TestLog_DisabledIsNoop(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	Log("nothing %d", 1)
}

func TestInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init(%q) error: %v", path, err)
	}
	Log("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello")
	}
}
