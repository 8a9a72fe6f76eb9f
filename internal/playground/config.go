package playground

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name used when none is given.
const DefaultConfigFile = "playground.yaml"

// Config is the playground configuration, read from YAML.
type Config struct {
	Page           string    `yaml:"page"`
	InitialWidth   int       `yaml:"initial_width"`
	InitialHeight  int       `yaml:"initial_height"`
	Class          string    `yaml:"class,omitempty"`
	Padding        int       `yaml:"padding"`
	Border         bool      `yaml:"border"`
	MinColumnWidth int       `yaml:"min_column_width"`
	RowHeight      int       `yaml:"row_height"`
	Items          []string  `yaml:"items,omitempty"`
	Bars           []float64 `yaml:"bars,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	items := make([]string, 40)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}
	return Config{
		Page:           "basic",
		Border:         true,
		Padding:        1,
		MinColumnWidth: 16,
		RowHeight:      1,
		Items:          items,
		Bars:           []float64{3, 7, 12, 5, 9, 14, 2},
	}
}

// Load reads the config at path. A missing file yields DefaultConfig.
// Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Page = strings.TrimSpace(strings.ToLower(cfg.Page))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, ok := pages[c.Page]; !ok {
		return fmt.Errorf("unknown page %q (want one of %s)", c.Page, strings.Join(PageNames(), ", "))
	}
	if c.InitialWidth < 0 || c.InitialHeight < 0 {
		return fmt.Errorf("initial size must be non-negative, got %dx%d", c.InitialWidth, c.InitialHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %d", c.Padding)
	}
	if c.MinColumnWidth < 1 {
		return fmt.Errorf("min_column_width must be at least 1, got %d", c.MinColumnWidth)
	}
	if c.RowHeight < 1 {
		return fmt.Errorf("row_height must be at least 1, got %d", c.RowHeight)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
