package graphconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	r := cfg.PlotRect()
	if r.X != 30 || r.Y != 20 || r.Width != 540 || r.Height != 240 {
		t.Errorf("unexpected plot rectangle %+v", r)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
canvas:
  width: 800
style:
  positive_color: "#0000ff"
  fill_opacity: 0.3
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 300 {
		t.Errorf("unexpected canvas %+v", cfg.Canvas)
	}
	if cfg.Style.PositiveColor != "#0000ff" || cfg.Style.NegativeColor != "#ff0000" {
		t.Errorf("unexpected colors %+v", cfg.Style)
	}
	if cfg.Style.FillOpacity != 0.3 || cfg.Style.OutlineOpacity != 0.8 {
		t.Errorf("unexpected opacities %+v", cfg.Style)
	}

	cfg, err = Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("empty document should give the defaults, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, doc := range []string{
		"style:\n  fill_opacity: 1.5\n",
		"style:\n  negative_color: red\n",
		"style:\n  positive_color: \"#22B722ff\"\n",
		"axis:\n  color: \"#6666\"\n",
		"canvas:\n  width: -1\n",
		"axis:\n  tick_font_size: 0\n",
		"canvas: [1, 2]\n",
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}

	_, err := Load(strings.NewReader("canvas:\n  height: 50\n"))
	if !errors.Is(err, ErrEmptyPlotArea) {
		t.Errorf("expected ErrEmptyPlotArea, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	if err := os.WriteFile(path, []byte("axis:\n  tick_length: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Axis.TickLength != 6 {
		t.Errorf("expected tick length 6, got %v", cfg.Axis.TickLength)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestColorsMatchParser(t *testing.T) {
	cfg := Default()
	cfg.Style.BackgroundColor = ""
	for _, c := range []string{"#22B722", "#abc", "22b722"} {
		cfg.Style.PositiveColor = c
		if err := cfg.Validate(); err != nil {
			t.Errorf("color %q: %s", c, err)
		}
	}
	for _, c := range []string{"#22B722ff", "#abcd", "", "green"} {
		cfg.Style.PositiveColor = c
		if err := cfg.Validate(); err == nil {
			t.Errorf("color %q should be rejected", c)
		}
	}
}

func TestOverlay(t *testing.T) {
	base, err := Load(strings.NewReader("style:\n  positive_color: \"#0000ff\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := base.OverlayFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 800 || cfg.Style.PositiveColor != "#0000ff" {
		t.Errorf("override should keep the base settings, got %+v", cfg)
	}
	if base.Canvas.Width != 600 {
		t.Error("base config should not be modified")
	}
}
