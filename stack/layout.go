package stack

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Residual returns obs - calc
func Residual(c Curve) ([]float64, error) {
	if err := c.checkEmpty(); err != nil {
		return nil, err
	}
	if len(c.Obs) != len(c.Calc) {
		return nil, fmt.Errorf("curve %q: calc=%d obs=%d: %w", c.label(), len(c.Calc), len(c.Obs), ErrLengthMismatch)
	}
	return floats.SubTo(make([]float64, len(c.Obs)), c.Obs, c.Calc), nil
}

// Span is the widest of the obs and calc ranges, never negative
func Span(c Curve) (float64, error) {
	if err := c.checkEmpty(); err != nil {
		return 0, err
	}
	obsSpan := floats.Max(c.Obs) - floats.Min(c.Obs)
	calcSpan := floats.Max(c.Calc) - floats.Min(c.Calc)
	return math.Max(obsSpan, calcSpan), nil
}

// Baseline is where the residual of c is anchored: a tenth of the span below
// the lowest obs or calc value. A constant curve gets its own value back.
func Baseline(c Curve) (float64, error) {
	span, err := Span(c)
	if err != nil {
		return 0, err
	}
	lowest := math.Min(floats.Min(c.Obs), floats.Min(c.Calc))
	return lowest - span/10, nil
}

// Offsets returns the vertical shift of every curve of a stack. The first
// curve is never shifted, the others grow linearly with their index:
// shift[i] = (globalMax - globalMin - baseline[i]) * i
// Wide local spans may still overlap their neighbours.
func Offsets(curves []Curve) ([]float64, error) {
	placements, err := Layout(curves)
	if err != nil {
		return nil, err
	}
	shifts := make([]float64, len(placements))
	for i, p := range placements {
		shifts[i] = p.Shift
	}
	return shifts, nil
}

// Layout computes baseline and shift for each curve in a single pass
func Layout(curves []Curve) ([]Placement, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curve to stack: %w", ErrEmptyCurve)
	}

	globalMin, globalMax := math.Inf(1), math.Inf(-1)
	baselines := make([]float64, len(curves))
	for i, c := range curves {
		min, max, err := c.bounds()
		if err != nil {
			return nil, fmt.Errorf("curve #%d: %w", i, err)
		}
		globalMin = math.Min(globalMin, min)
		globalMax = math.Max(globalMax, max)
		if baselines[i], err = Baseline(c); err != nil {
			return nil, fmt.Errorf("curve #%d: %w", i, err)
		}
	}

	placements := make([]Placement, len(curves))
	for i, c := range curves {
		p := Placement{Name: c.Name, Baseline: baselines[i]}
		// the first curve stays put, even for an infinite or negative range
		if i > 0 {
			p.Shift = (globalMax - globalMin - baselines[i]) * float64(i)
		}
		if math.IsInf(p.Baseline, 0) || math.IsNaN(p.Baseline) || math.IsInf(p.Shift, 0) || math.IsNaN(p.Shift) {
			return nil, fmt.Errorf("curve #%d: baseline=%v shift=%v: %w", i, p.Baseline, p.Shift, ErrNotFinite)
		}
		placements[i] = p
	}
	return placements, nil
}
