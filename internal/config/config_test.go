package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/zoned/internal/layout"
)

func TestLoadFromPath_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultLayout != "halves" {
		t.Errorf("expected default layout halves, got %q", cfg.DefaultLayout)
	}
	if cfg.Editor.NudgeStep != 0.02 {
		t.Errorf("expected nudge step 0.02, got %v", cfg.Editor.NudgeStep)
	}
}

func TestLoadFromPath_ParsesInlineLayouts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
default_layout: coding
editor:
  nudge_step: 0.05
layouts:
  coding:
    - {name: editor, x: 0, y: 0, w: 0.7, h: 1}
    - {name: terminal, x: 0.7, y: 0, w: 0.3, h: 1}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.NudgeStep != 0.05 {
		t.Errorf("expected nudge step 0.05, got %v", cfg.Editor.NudgeStep)
	}

	zl, err := cfg.GetLayout("coding")
	if err != nil {
		t.Fatalf("GetLayout: %v", err)
	}
	if len(zl.Zones) != 2 || zl.Zones[0].Name != "editor" || zl.Zones[1].W != 0.3 {
		t.Errorf("unexpected layout: %+v", zl)
	}
}

func TestLoadFromPath_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
default_layout: coding
layouts:
  coding:
    - {x: 0, y: 0, w: 0, h: 1}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for zero-width zone")
	}
	if !strings.Contains(err.Error(), "non-positive size") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigValidate_UnknownDefaultLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLayout = "does-not-exist"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown default layout")
	}
}

func TestBuiltinLayouts_AllConvertCleanly(t *testing.T) {
	for name, zl := range BuiltinLayouts() {
		t.Run(name, func(t *testing.T) {
			el, report := layout.ZonesToEdges(&zl)
			if !report.Clean() {
				t.Fatalf("builtin %q dropped zones: %+v", name, report.Dropped)
			}
			if err := layout.ValidateEdgeLayout(el); err != nil {
				t.Fatalf("builtin %q produced invalid edge layout: %v", name, err)
			}
			if len(el.Regions) != len(zl.Zones) {
				t.Fatalf("builtin %q resolved %d of %d zones", name, len(el.Regions), len(zl.Zones))
			}
		})
	}
}

func TestLayoutNames_MergesInlineAndBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layouts = map[string][]layout.Zone{
		"custom": {{X: 0, Y: 0, W: 1, H: 1}},
	}
	names := cfg.LayoutNames()

	want := map[string]bool{"halves": false, "custom": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("layout %q missing from names %v", n, names)
		}
	}
}
