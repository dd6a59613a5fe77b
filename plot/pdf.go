package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/benjaminmd/ezplot/config"
	"github.com/benjaminmd/ezplot/stack"
	"github.com/rs/zerolog/log"
)

const (
	RLabel    = "r [Å]"
	GLabel    = "G(r) [-]"
	DiffLabel = "ΔG(r) [-]"
)

type comparison struct {
	obs  []plot.Thumbnailer
	calc *plotter.Line
	diff *plotter.Line
}

type stackOptions struct {
	colorMap string
	values   []float64
}

// StackOption customizes StackedPDF
type StackOption func(*stackOptions)

// WithColorMap colors each curve of a stack by looking its value up in the
// named color map, values must match the curves one to one
func WithColorMap(name string, values []float64) StackOption {
	return func(o *stackOptions) {
		o.colorMap = name
		o.values = values
	}
}

// private

// drawComparison adds obs markers, the calc line and the residual drawn at
// baseline, everything moved up by shift
func drawComparison(ax *plot.Plot, c stack.Curve, baseline, shift float64, tint, calcColor color.Color) (*comparison, error) {
	style := config.Style
	residual, err := stack.Residual(c)
	if err != nil {
		return nil, err
	}

	cmp := &comparison{}
	if cmp.obs, err = addObsMarkers(ax, offsetXYs(c.X, c.Obs, shift), tint); err != nil {
		return nil, err
	}
	if cmp.calc, err = addLine(ax, offsetXYs(c.X, c.Calc, shift), style.Lines.Width, calcColor, 0); err != nil {
		return nil, err
	}
	diffColor := styleColor(style.Colors.Diff, 1)
	if cmp.diff, err = addLine(ax, offsetXYs(c.X, residual, baseline+shift), style.Lines.Width, diffColor, 0); err != nil {
		return nil, err
	}
	return cmp, nil
}

func xRange(curves ...stack.Curve) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		if len(c.X) == 0 {
			continue
		}
		min = math.Min(min, floats.Min(c.X))
		max = math.Max(max, floats.Max(c.X))
	}
	return
}

func stackColors(curves []stack.Curve, o stackOptions) ([]color.Color, error) {
	series := make([]color.Color, len(curves))
	if o.colorMap == "" {
		for i := range series {
			series[i] = Cycle(i)
		}
		return series, nil
	}
	if len(o.values) != len(curves) {
		return nil, fmt.Errorf("%d color map values for %d curves", len(o.values), len(curves))
	}
	min, max := floats.Min(o.values), floats.Max(o.values)
	for i, v := range o.values {
		c, err := ValueColor(o.colorMap, v, min, max)
		if err != nil {
			return nil, err
		}
		series[i] = c
	}
	return series, nil
}

// API

// BuildSinglePDF draws obs, calc and their residual below the data
func BuildSinglePDF(c stack.Curve) (*Figure, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	baseline, err := stack.Baseline(c)
	if err != nil {
		return nil, err
	}
	style := config.Style
	f, ax := SingleFigure(RLabel, GLabel)

	cmp, err := drawComparison(ax, c, baseline, 0, styleColor(style.Colors.Obs, style.Colors.ObsAlpha), styleColor(style.Colors.Calc, 1))
	if err != nil {
		return nil, err
	}
	legend := NewLegend()
	legend.Add("obs", cmp.obs...)
	legend.Add("calc", cmp.calc)
	legend.Add("diff", cmp.diff)
	legend.Apply(ax)

	min, max := xRange(c)
	setXLim(ax, min, max)
	log.Debug().Str("context", "plot").Str("curve", c.Name).Float64("baseline", baseline).Msg("single_pdf_built")
	return f, nil
}

// BuildDualPDF draws obs and calc on the top axes and the residual on the
// bottom one, both sharing x
func BuildDualPDF(c stack.Curve) (*Figure, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	residual, err := stack.Residual(c)
	if err != nil {
		return nil, err
	}
	style := config.Style
	f, top, bottom := DualFigure(RLabel, GLabel, DiffLabel)

	topLegend := NewLegend()
	obs, err := addObsMarkers(top, toXYs(c.X, c.Obs), styleColor(style.Colors.Obs, style.Colors.ObsAlpha))
	if err != nil {
		return nil, err
	}
	topLegend.Add("obs", obs...)
	calc, err := addLine(top, toXYs(c.X, c.Calc), style.Lines.Width, styleColor(style.Colors.Calc, 1), 0)
	if err != nil {
		return nil, err
	}
	topLegend.Add("calc", calc)

	bottomLegend := NewLegend()
	diff, err := addLine(bottom, toXYs(c.X, residual), style.Lines.Width, styleColor(style.Colors.Diff, 1), 0)
	if err != nil {
		return nil, err
	}
	bottomLegend.Add("diff", diff)
	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.LineStyle.Color = color.Gray{Y: 128}
	dashes := vg.Points(style.Lines.GridDashes)
	zero.LineStyle.Dashes = []vg.Length{dashes, dashes}
	bottom.Add(zero)

	Gather(topLegend, bottomLegend).Apply(top)
	min, max := xRange(c)
	setXLim(top, min, max)
	setXLim(bottom, min, max)
	return f, nil
}

// stacked keeps what BuildStackedPDF drew, curve by curve
type stacked struct {
	figure      *Figure
	placements  []stack.Placement
	comparisons []*comparison
	legend      *Legend
}

func buildStack(curves []stack.Curve, opts ...StackOption) (*stacked, error) {
	var o stackOptions
	for _, opt := range opts {
		opt(&o)
	}
	for i, c := range curves {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("curve #%d: %w", i, err)
		}
	}
	placements, err := stack.Layout(curves)
	if err != nil {
		return nil, err
	}
	series, err := stackColors(curves, o)
	if err != nil {
		return nil, err
	}
	style := config.Style
	f, ax := SingleFigure(RLabel, GLabel)

	s := &stacked{figure: f, placements: placements, legend: NewLegend()}
	for i, c := range curves {
		p := placements[i]
		tint := withAlpha(series[i], style.Colors.ObsAlpha)
		cmp, err := drawComparison(ax, c, p.Baseline, p.Shift, tint, series[i])
		if err != nil {
			return nil, fmt.Errorf("curve #%d: %w", i, err)
		}
		s.comparisons = append(s.comparisons, cmp)
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("curve #%d", i)
		}
		s.legend.Add(label, append(cmp.obs, cmp.calc)...)
		log.Debug().Str("context", "plot").Str("curve", label).Float64("baseline", p.Baseline).Float64("shift", p.Shift).Msg("stacked_curve_placed")
	}
	s.legend.Reverse().Apply(ax)

	min, max := xRange(curves...)
	setXLim(ax, min, max)
	return s, nil
}

// BuildStackedPDF draws every curve moved up by its stack shift, with its
// residual at its own baseline. The legend lists the topmost curve first.
func BuildStackedPDF(curves []stack.Curve, opts ...StackOption) (*Figure, error) {
	s, err := buildStack(curves, opts...)
	if err != nil {
		return nil, err
	}
	return s.figure, nil
}

// SinglePDF saves BuildSinglePDF to basePath with the style formats
func SinglePDF(c stack.Curve, basePath string) error {
	f, err := BuildSinglePDF(c)
	if err != nil {
		return err
	}
	return f.Save(basePath)
}

// DualPDF saves BuildDualPDF to basePath with the style formats
func DualPDF(c stack.Curve, basePath string) error {
	f, err := BuildDualPDF(c)
	if err != nil {
		return err
	}
	return f.Save(basePath)
}

// StackedPDF saves BuildStackedPDF to basePath with the style formats
func StackedPDF(curves []stack.Curve, basePath string, opts ...StackOption) error {
	f, err := BuildStackedPDF(curves, opts...)
	if err != nil {
		return err
	}
	return f.Save(basePath)
}
