// Package dataset reads refinement curves from column files
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/benjaminmd/ezplot/helpers"
	"github.com/benjaminmd/ezplot/stack"
	"github.com/rs/zerolog/log"
)

// Columns are 0-indexed positions of x, calc and obs on each line
type Columns struct {
	X    int
	Calc int
	Obs  int
}

var DefaultColumns = Columns{X: 0, Calc: 1, Obs: 2}

func (c Columns) max() int {
	max := c.X
	if c.Calc > max {
		max = c.Calc
	}
	if c.Obs > max {
		max = c.Obs
	}
	return max
}

func (c Columns) validate() error {
	if c.X < 0 || c.Calc < 0 || c.Obs < 0 {
		return fmt.Errorf("negative column in %+v", c)
	}
	return nil
}

// ParseColumns reads "x,calc,obs" positions such as "0,2,1"
func ParseColumns(s string) (Columns, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Columns{}, fmt.Errorf("expected 3 comma separated columns, got %q", s)
	}
	var positions [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Columns{}, fmt.Errorf("invalid column %q: %w", part, err)
		}
		positions[i] = n
	}
	c := Columns{X: positions[0], Calc: positions[1], Obs: positions[2]}
	return c, c.validate()
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "!")
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

func parseLine(fields []string, cols Columns) (x, calc, obs float64, err error) {
	if len(fields) <= cols.max() {
		err = fmt.Errorf("%d fields, column %d needed", len(fields), cols.max())
		return
	}
	if x, err = strconv.ParseFloat(fields[cols.X], 64); err != nil {
		return
	}
	if calc, err = strconv.ParseFloat(fields[cols.Calc], 64); err != nil {
		return
	}
	obs, err = strconv.ParseFloat(fields[cols.Obs], 64)
	return
}

// Read parses a curve named name. Comment and blank lines are skipped, as are
// header lines before the first data line; after it a malformed line is an
// error.
func Read(r io.Reader, name string, cols Columns) (stack.Curve, error) {
	curve := stack.Curve{Name: name}
	if err := cols.validate(); err != nil {
		return curve, err
	}

	scanner := bufio.NewScanner(r)
	lineNumber, skipped := 0, 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}
		x, calc, obs, err := parseLine(splitFields(line), cols)
		if err != nil {
			if curve.Len() == 0 {
				skipped++
				continue
			}
			return curve, fmt.Errorf("%s line %d: %w", name, lineNumber, err)
		}
		curve.X = append(curve.X, x)
		curve.Calc = append(curve.Calc, calc)
		curve.Obs = append(curve.Obs, obs)
	}
	if err := scanner.Err(); err != nil {
		return curve, err
	}
	if curve.Len() == 0 {
		return curve, fmt.Errorf("%s: %w", name, stack.ErrEmptyCurve)
	}

	log.Debug().Str("context", "dataset").Str("name", name).Int("points", curve.Len()).Int("skipped", skipped).Msg("curve_read")
	return curve, nil
}

// Name is the file name without folder and extension
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadFile reads path, resolved like helpers.Open, naming the curve after it
func ReadFile(path string, cols Columns) (stack.Curve, error) {
	f, err := helpers.Open(path)
	if err != nil {
		return stack.Curve{}, err
	}
	defer f.Close()
	return Read(f, Name(path), cols)
}

// ReadFiles reads every path in order
func ReadFiles(paths []string, cols Columns) ([]stack.Curve, error) {
	curves := make([]stack.Curve, 0, len(paths))
	for _, path := range paths {
		c, err := ReadFile(path, cols)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// Write saves c in the default column order, tab separated
func Write(w io.Writer, c stack.Curve) error {
	if err := c.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n# r calc obs\n", c.Name)
	for i := range c.X {
		fmt.Fprintf(bw, "%g\t%g\t%g\n", c.X[i], c.Calc[i], c.Obs[i])
	}
	return bw.Flush()
}

// WriteFile is Write to a newly created file
func WriteFile(path string, c stack.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
