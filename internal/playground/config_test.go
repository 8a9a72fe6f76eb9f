package playground

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	type tc struct {
		yaml    string
		check   func(t *testing.T, c Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty file keeps defaults": {
			yaml: "",
			check: func(t *testing.T, c Config) {
				if c.Page != "basic" || c.MinColumnWidth != 16 || len(c.Items) != 40 {
					t.Errorf("defaults not applied: %+v", c)
				}
			},
		},
		"overrides fields": {
			yaml: "page: Grid\ninitial_width: 120\ninitial_height: 40\nborder: false\nitems: [a, b]\n",
			check: func(t *testing.T, c Config) {
				if c.Page != "grid" {
					t.Errorf("Page = %q, want grid", c.Page)
				}
				if c.InitialWidth != 120 || c.InitialHeight != 40 {
					t.Errorf("initial = %dx%d, want 120x40", c.InitialWidth, c.InitialHeight)
				}
				if c.Border {
					t.Error("Border = true, want false")
				}
				if len(c.Items) != 2 {
					t.Errorf("Items = %v, want [a b]", c.Items)
				}
			},
		},
		"unknown page": {
			yaml:    "page: nope\n",
			wantErr: "unknown page",
		},
		"negative initial size": {
			yaml:    "initial_width: -1\n",
			wantErr: "non-negative",
		},
		"zero row height": {
			yaml:    "row_height: 0\n",
			wantErr: "row_height",
		},
		"bad yaml": {
			yaml:    "page: [\n",
			wantErr: "failed to parse",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Page != DefaultConfig().Page {
		t.Errorf("Page = %q, want default", c.Page)
	}
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Page = "chart"
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Page != "chart" || len(got.Bars) != len(want.Bars) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
