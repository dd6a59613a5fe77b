package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Grid.WSpace-0.05/Phi) > 1e-12 {
		t.Errorf("wspace got %v", s.Grid.WSpace)
	}
	if len(s.Figure.Formats) != 2 {
		t.Errorf("expected pdf and png by default, got %v", s.Figure.Formats)
	}
}

func TestParse(t *testing.T) {

	t.Run("Partial style keeps defaults", func(t *testing.T) {
		s, err := Parse([]byte("figure:\n  widthCm: 8.5\ncolors:\n  diff: \"#ff0000\"\n"))
		if err != nil {
			t.Fatal(err)
		}
		if s.Figure.WidthCm != 8.5 {
			t.Errorf("width got %v", s.Figure.WidthCm)
		}
		if s.Colors.Diff != "#ff0000" {
			t.Errorf("diff color got %v", s.Colors.Diff)
		}
		if s.Figure.DPI != 300 || s.Colors.Calc != "#1f77b4" {
			t.Error("defaults were lost")
		}
	})

	t.Run("Invalid margins", func(t *testing.T) {
		_, err := Parse([]byte("grid:\n  left: 0.9\n  right: 0.1\n"))
		if err == nil {
			t.Error("left > right should be rejected")
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := Parse([]byte("figure: ["))
		if err == nil {
			t.Error("broken YAML should be rejected")
		}
	})
}

func TestLoad(t *testing.T) {
	defer func() { Style = Default() }()

	t.Run("Shipped style", func(t *testing.T) {
		if err := Load("style.yml"); err != nil {
			t.Fatal(err)
		}
		if Style.Figure.WidthCm != 15 || Style.Lines.MarkerSize != 11 {
			t.Errorf("unexpected style %+v", Style)
		}
	})

	t.Run("Custom style file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "style.yml")
		if err := os.WriteFile(path, []byte("figure:\n  dpi: 72\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := Load(path); err != nil {
			t.Fatal(err)
		}
		if Style.Figure.DPI != 72 {
			t.Errorf("dpi got %v", Style.Figure.DPI)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		if err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
			t.Error("missing file should fail")
		}
	})
}
