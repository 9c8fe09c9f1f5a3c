package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/zoned/internal/layout"
)

// EditorConfig holds settings for the interactive edge editor.
type EditorConfig struct {
	// NudgeStep is how far a selected edge moves per keypress, in
	// normalized 0..1 screen units.
	NudgeStep float64 `yaml:"nudge_step"`
}

// Config is the zoned configuration.
type Config struct {
	// DefaultLayout is the layout applied when none is named explicitly.
	DefaultLayout string `yaml:"default_layout"`

	Editor EditorConfig `yaml:"editor"`

	// Layouts are user-defined zone layouts declared inline in YAML,
	// keyed by layout name. Built-in layouts are always available in
	// addition; an inline layout with the same name shadows the builtin.
	Layouts map[string][]layout.Zone `yaml:"layouts,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultLayout: "halves",
		Editor: EditorConfig{
			NudgeStep: 0.02,
		},
	}
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "zoned", "config.yaml"), nil
}

// GetLayout resolves a layout by name from inline config layouts first,
// then the builtin library.
func (c *Config) GetLayout(name string) (*layout.ZoneLayout, error) {
	if zones, ok := c.Layouts[name]; ok {
		return &layout.ZoneLayout{ID: name, Name: name, Zones: zones}, nil
	}
	if zl, ok := BuiltinLayouts()[name]; ok {
		return &zl, nil
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}

// GetDefaultLayout resolves the configured default layout.
func (c *Config) GetDefaultLayout() (*layout.ZoneLayout, error) {
	return c.GetLayout(c.DefaultLayout)
}

// LayoutNames returns the names of all builtin and inline layouts, sorted.
func (c *Config) LayoutNames() []string {
	seen := make(map[string]bool)
	for name := range BuiltinLayouts() {
		seen[name] = true
	}
	for name := range c.Layouts {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultLayout == "" {
		return fmt.Errorf("default_layout must not be empty")
	}
	if _, err := c.GetLayout(c.DefaultLayout); err != nil {
		return fmt.Errorf("default_layout: %w", err)
	}
	if c.Editor.NudgeStep <= 0 || c.Editor.NudgeStep > 0.25 {
		return fmt.Errorf("editor.nudge_step must be in (0, 0.25], got %v", c.Editor.NudgeStep)
	}
	for name, zones := range c.Layouts {
		if len(zones) == 0 {
			return fmt.Errorf("layout %q has no zones", name)
		}
		for i, z := range zones {
			if z.W <= 0 || z.H <= 0 {
				return fmt.Errorf("layout %q zone %d has non-positive size %vx%v", name, i, z.W, z.H)
			}
			if z.X < 0 || z.Y < 0 || z.X+z.W > 1+layout.Tolerance || z.Y+z.H > 1+layout.Tolerance {
				return fmt.Errorf("layout %q zone %d exceeds the normalized screen: %+v", name, i, z)
			}
		}
	}
	return nil
}

// Save writes the configuration to the standard location.
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
