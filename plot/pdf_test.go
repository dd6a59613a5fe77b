package plot

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/benjaminmd/ezplot/stack"
)

func newPDFCurve(name string, offset float64) stack.Curve {
	c := stack.Curve{Name: name}
	for i := 0; i < 50; i++ {
		r := 1 + float64(i)*0.1
		c.X = append(c.X, r)
		c.Calc = append(c.Calc, offset+math.Sin(3*r)/r)
		c.Obs = append(c.Obs, offset+math.Sin(3*r)/r+0.02*math.Cos(17*r))
	}
	return c
}

func TestBuildSinglePDF(t *testing.T) {
	f, err := BuildSinglePDF(newPDFCurve("LaB6", 0))
	if err != nil {
		t.Fatal(err)
	}
	ax := f.Axes(0, 0)
	if ax.X.Min != 1 || math.Abs(ax.X.Max-5.9) > 1e-9 {
		t.Errorf("x limits got [%v, %v] but expected [1, 5.9]", ax.X.Min, ax.X.Max)
	}
	if ax.X.Label.Text != RLabel || ax.Y.Label.Text != GLabel {
		t.Errorf("unexpected labels %q %q", ax.X.Label.Text, ax.Y.Label.Text)
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf, "svg"); err != nil {
		t.Fatal(err)
	}
}

func TestSinglePDF(t *testing.T) {
	base := filepath.Join(t.TempDir(), "single")
	if err := SinglePDF(newPDFCurve("LaB6", 0), base); err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".pdf", ".png"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("%s not written: %v", base+ext, err)
		}
	}
}

func TestDualPDF(t *testing.T) {
	f, err := BuildDualPDF(newPDFCurve("Ni", 0))
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows != 2 || f.Axes(1, 0).Y.Label.Text != DiffLabel {
		t.Error("expected the residual on a second axes")
	}
	if err := DualPDF(newPDFCurve("Ni", 0), filepath.Join(t.TempDir(), "dual")); err != nil {
		t.Fatal(err)
	}
}

func TestStackedPDF(t *testing.T) {
	curves := []stack.Curve{newPDFCurve("300K", 0), newPDFCurve("400K", 0.5), newPDFCurve("", 1)}

	t.Run("Default cycle", func(t *testing.T) {
		f, err := BuildStackedPDF(curves)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := f.Encode(&buf, "png"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("Color map", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "stacked")
		if err := StackedPDF(curves, base, WithColorMap("coolwarm", []float64{300, 400, 500})); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("Color map values mismatch", func(t *testing.T) {
		if _, err := BuildStackedPDF(curves, WithColorMap("coolwarm", []float64{300})); err == nil {
			t.Error("one value for three curves should be rejected")
		}
	})
}

func TestStackPlacement(t *testing.T) {
	a := stack.Curve{Name: "A", X: []float64{0, 1, 2}, Calc: []float64{0, 1, 0}, Obs: []float64{0.1, 0.9, 0}}
	b := stack.Curve{Name: "B", X: []float64{0, 1, 2}, Calc: []float64{1, 2, 1}, Obs: []float64{1, 2.2, 1}}
	s, err := buildStack([]stack.Curve{a, b})
	if err != nil {
		t.Fatal(err)
	}

	if s.placements[0].Shift != 0 {
		t.Errorf("first curve moved by %v", s.placements[0].Shift)
	}
	for i, c := range []stack.Curve{a, b} {
		p := s.placements[i]
		residual, _ := stack.Residual(c)
		calc, diff := s.comparisons[i].calc, s.comparisons[i].diff
		for j := range c.X {
			if got, want := calc.XYs[j].Y, c.Calc[j]+p.Shift; math.Abs(got-want) > 1e-12 {
				t.Errorf("%s calc[%d] got %v but expected %v", c.Name, j, got, want)
			}
			if got, want := diff.XYs[j].Y, residual[j]+p.Baseline+p.Shift; math.Abs(got-want) > 1e-12 {
				t.Errorf("%s diff[%d] got %v but expected %v", c.Name, j, got, want)
			}
		}
	}

	labels := s.legend.Labels()
	if len(labels) != 2 || labels[0] != "B" || labels[1] != "A" {
		t.Errorf("legend got %v but expected [B A]", labels)
	}
}

func TestPDFInvalidInput(t *testing.T) {
	empty := stack.Curve{Name: "empty"}
	if _, err := BuildSinglePDF(empty); !errors.Is(err, stack.ErrEmptyCurve) {
		t.Errorf("expected ErrEmptyCurve, got %v", err)
	}
	if _, err := BuildStackedPDF(nil); !errors.Is(err, stack.ErrEmptyCurve) {
		t.Errorf("expected ErrEmptyCurve, got %v", err)
	}
	mismatch := newPDFCurve("m", 0)
	mismatch.Obs = mismatch.Obs[:10]
	if _, err := BuildDualPDF(mismatch); !errors.Is(err, stack.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	nan := newPDFCurve("nan", 0)
	nan.Obs[3] = math.NaN()
	if _, err := BuildSinglePDF(nan); err == nil {
		t.Error("NaN samples should be rejected by the plotters")
	}
}
