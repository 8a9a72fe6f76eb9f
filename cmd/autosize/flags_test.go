package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-autosize/internal/playground"
)

func TestParseOptions(t *testing.T) {
	type tc struct {
		args    []string
		want    options
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			want: options{configPath: playground.DefaultConfigFile},
		},
		"config and page": {
			args: []string{"-config", "demo.yaml", "-page", "grid"},
			want: options{configPath: "demo.yaml", page: "grid"},
		},
		"unknown flag": {
			args:    []string{"-nope"},
			wantErr: true,
		},
		"positional argument": {
			args:    []string{"extra"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseOptions("term", tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseOptions() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptions() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_PageOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte("page: chart\ninitial_width: 10\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := loadConfig(options{configPath: path, page: "list"})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Page != "list" || cfg.InitialWidth != 10 {
		t.Errorf("loadConfig() = page %q width %d, want list 10", cfg.Page, cfg.InitialWidth)
	}

	if _, err := loadConfig(options{configPath: path, page: "bogus"}); err == nil {
		t.Error("loadConfig(bogus page) error = nil, want error")
	}
}
