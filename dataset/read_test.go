package dataset

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/benjaminmd/ezplot/stack"
)

const fgr = `# PDFgui fit
# r Gcalc Gobs
r Gcalc Gobs
1.0  0.5  0.6
1.1  0.7  0.65

1.2, 0.9, 1.0
`

func TestRead(t *testing.T) {

	t.Run("Default columns with headers and commas", func(t *testing.T) {
		c, err := Read(strings.NewReader(fgr), "fit", DefaultColumns)
		if err != nil {
			t.Fatal(err)
		}
		if c.Name != "fit" || c.Len() != 3 {
			t.Fatalf("unexpected curve %+v", c)
		}
		if !reflect.DeepEqual(c.X, []float64{1.0, 1.1, 1.2}) {
			t.Errorf("x got %v", c.X)
		}
		if !reflect.DeepEqual(c.Calc, []float64{0.5, 0.7, 0.9}) || !reflect.DeepEqual(c.Obs, []float64{0.6, 0.65, 1.0}) {
			t.Errorf("calc got %v, obs got %v", c.Calc, c.Obs)
		}
	})

	t.Run("Custom columns", func(t *testing.T) {
		cols, err := ParseColumns("0, 2, 1")
		if err != nil {
			t.Fatal(err)
		}
		c, err := Read(strings.NewReader("1 10 20 30\n2 11 21 31\n"), "swap", cols)
		if err != nil {
			t.Fatal(err)
		}
		if c.Calc[0] != 20 || c.Obs[1] != 11 {
			t.Errorf("unexpected curve %+v", c)
		}
	})

	t.Run("Malformed line after data", func(t *testing.T) {
		_, err := Read(strings.NewReader("1 2 3\n4 five 6\n"), "bad", DefaultColumns)
		if err == nil || !strings.Contains(err.Error(), "line 2") {
			t.Errorf("expected an error on line 2, got %v", err)
		}
	})

	t.Run("No data", func(t *testing.T) {
		_, err := Read(strings.NewReader("# only comments\n"), "empty", DefaultColumns)
		if !errors.Is(err, stack.ErrEmptyCurve) {
			t.Errorf("expected ErrEmptyCurve, got %v", err)
		}
	})
}

func TestParseColumns(t *testing.T) {
	for _, invalid := range []string{"", "0,1", "0,1,x", "0,-1,2"} {
		if _, err := ParseColumns(invalid); err == nil {
			t.Errorf("%q should be rejected", invalid)
		}
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ni-300K.gr")
	original := stack.Curve{Name: "ni-300K", X: []float64{1, 1.5}, Calc: []float64{0.25, -1}, Obs: []float64{0.5, -0.75}}
	if err := WriteFile(path, original); err != nil {
		t.Fatal(err)
	}
	c, err := ReadFile(path, DefaultColumns)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, original) {
		t.Errorf("got %+v but expected %+v", c, original)
	}

	curves, err := ReadFiles([]string{path, path}, DefaultColumns)
	if err != nil || len(curves) != 2 {
		t.Errorf("expected 2 curves, got %d (%v)", len(curves), err)
	}
	if _, err := ReadFiles([]string{path, path + ".missing"}, DefaultColumns); err == nil {
		t.Error("missing file should fail")
	}
}
