// Package stack computes where residual traces and stacked curves are drawn
package stack

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmptyCurve     = errors.New("empty curve")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrNotFinite      = errors.New("placement is not finite")
)

// Curve holds aligned samples of a refinement: x (usually r), the calculated
// and the observed values.
type Curve struct {
	Name string
	X    []float64
	Calc []float64
	Obs  []float64
}

// Placement tells where a curve of a stack is drawn: its residual sits at
// Baseline, then the whole curve (residual included) is moved up by Shift.
type Placement struct {
	Name     string
	Baseline float64
	Shift    float64
}

// private

func (c Curve) label() string {
	if c.Name == "" {
		return "unnamed"
	}
	return c.Name
}

func (c Curve) bounds() (min, max float64, err error) {
	if err = c.checkEmpty(); err != nil {
		return
	}
	min = math.Min(floats.Min(c.Obs), floats.Min(c.Calc))
	max = math.Max(floats.Max(c.Obs), floats.Max(c.Calc))
	return
}

func (c Curve) checkEmpty() error {
	if len(c.Obs) == 0 || len(c.Calc) == 0 {
		return fmt.Errorf("curve %q: %w", c.label(), ErrEmptyCurve)
	}
	return nil
}

// API

// Validate checks the curve is non-empty and its three sequences are aligned
func (c Curve) Validate() error {
	if err := c.checkEmpty(); err != nil {
		return err
	}
	if len(c.Obs) != len(c.Calc) || len(c.X) != len(c.Obs) {
		return fmt.Errorf("curve %q: x=%d calc=%d obs=%d: %w", c.label(), len(c.X), len(c.Calc), len(c.Obs), ErrLengthMismatch)
	}
	return nil
}

func (c Curve) Len() int {
	return len(c.X)
}

// Shifted returns a copy of the curve with calc and obs moved up by dy
func (c Curve) Shifted(dy float64) Curve {
	shifted := Curve{
		Name: c.Name,
		X:    append([]float64(nil), c.X...),
		Calc: append([]float64(nil), c.Calc...),
		Obs:  append([]float64(nil), c.Obs...),
	}
	floats.AddConst(dy, shifted.Calc)
	floats.AddConst(dy, shifted.Obs)
	return shifted
}
