package plot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/benjaminmd/ezplot/config"
)

func TestSize(t *testing.T) {
	width, height := Size()
	if math.Abs(float64(width-15*vg.Centimeter)) > 1e-9 {
		t.Errorf("width got %v", width)
	}
	if math.Abs(float64(width/height)-config.Phi) > 1e-9 {
		t.Errorf("aspect got %v but expected the golden ratio", width/height)
	}
}

func TestTiles(t *testing.T) {
	f := NewFigure(2, 3)
	tiles := f.tiles()
	if tiles.Rows != 2 || tiles.Cols != 3 {
		t.Fatalf("unexpected grid %dx%d", tiles.Rows, tiles.Cols)
	}
	if math.Abs(float64(tiles.PadLeft-f.Width*0.15)) > 1e-9 || math.Abs(float64(tiles.PadTop-f.Height*0.15)) > 1e-9 {
		t.Errorf("unexpected margins %+v", tiles)
	}
	// axes and gaps fill the inner width exactly
	inner := float64(f.Width) * 0.7
	axesWidth := (inner - 2*float64(tiles.PadX)) / 3
	if math.Abs(float64(tiles.PadX)-axesWidth*f.Grid.WSpace) > 1e-9 {
		t.Errorf("horizontal gap %v is not wspace times the axes width %v", tiles.PadX, axesWidth)
	}
}

func TestNewFigureClampsGrid(t *testing.T) {
	f := NewFigure(0, -1)
	if f.Rows != 1 || f.Cols != 1 || f.Axes(0, 0) == nil {
		t.Errorf("expected a 1x1 figure, got %dx%d", f.Rows, f.Cols)
	}
}

func TestEncode(t *testing.T) {
	f, ax := SingleFigure("x", "y")
	if _, err := addLine(ax, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}, 1, Cycle(0), 0); err != nil {
		t.Fatal(err)
	}

	t.Run("PNG", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Encode(&buf, "png"); err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("SVG", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Encode(&buf, "SVG"); err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
			t.Error("output is not an SVG")
		}
	})

	t.Run("Unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Encode(&buf, "bmp"); err == nil {
			t.Error("bmp should not be supported")
		}
	})
}

func TestSave(t *testing.T) {
	f, ax := SingleFigure("x", "y")
	if _, err := addLine(ax, plotter.XYs{{X: 0, Y: 1}, {X: 2, Y: 3}}, 1, Cycle(1), 0); err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(t.TempDir(), "nested", "figure.png")
	if err := f.Save(base); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".pdf", ".png"} {
		path := filepath.Join(filepath.Dir(base), "figure"+ext)
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", path, err)
		}
	}
}

func TestDualFigureSharesX(t *testing.T) {
	f, top, bottom := DualFigure("x", "top", "bottom")
	if _, err := addLine(top, plotter.XYs{{X: 0, Y: 0}, {X: 5, Y: 1}}, 1, Cycle(0), 0); err != nil {
		t.Fatal(err)
	}
	if _, err := addLine(bottom, plotter.XYs{{X: -2, Y: 0}, {X: 3, Y: 1}}, 1, Cycle(1), 0); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf, "svg"); err != nil {
		t.Fatal(err)
	}
	if top.X.Min != -2 || top.X.Max != 5 || bottom.X.Min != -2 || bottom.X.Max != 5 {
		t.Errorf("x ranges not shared: top [%v, %v], bottom [%v, %v]", top.X.Min, top.X.Max, bottom.X.Min, bottom.X.Max)
	}
	if top.X.Label.Text != "" || bottom.X.Label.Text != "x" {
		t.Error("x label should only be on the bottom axes")
	}
}
