package plot

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// the smooth maps are diverging ones, wrapped to share the map type
var colorMaps = map[string]func() palette.ColorMap{
	"coolwarm":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"bluetan":            func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"greenpurple":        func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"greenred":           func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"purpleorange":       func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"kindlmann":          moreland.Kindlmann,
	"extended-kindlmann": moreland.ExtendedKindlmann,
	"blackbody":          moreland.BlackBody,
	"extended-blackbody": moreland.ExtendedBlackBody,
}

// ColorMapNames lists the names accepted by ColorMap, without the "_r"
// variants
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorMap returns the named map spanning [min, max]; a "_r" suffix reverses
// it. A degenerate range maps everything to the start of the map.
func ColorMap(name string, min, max float64) (palette.ColorMap, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, palette.ErrNaN
	}
	reversed := strings.HasSuffix(name, "_r")
	build, ok := colorMaps[strings.TrimSuffix(name, "_r")]
	if !ok {
		return nil, fmt.Errorf("unknown color map %q", name)
	}
	if min > max {
		min, max = max, min
	}
	if max == min {
		max = min + 1
	}
	cm := build()
	if reversed {
		cm = palette.Reverse(cm)
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}

// ValueColor looks v up in the named map spanning [min, max], values outside
// the range get the color of the closest bound
func ValueColor(name string, v, min, max float64) (color.Color, error) {
	cm, err := ColorMap(name, min, max)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	return cm.At(v)
}

// gradient interpolates evenly spaced stops in Lab space
type gradient struct {
	stops    []colorful.Color
	min, max float64
	alpha    float64
}

type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}

// Gradient builds a color map from two or more hex stops
func Gradient(stops ...string) (palette.ColorMap, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("a gradient needs at least 2 stops, got %d", len(stops))
	}
	g := &gradient{min: 0, max: 1, alpha: 1}
	for _, stop := range stops {
		c, err := colorful.Hex(stop)
		if err != nil {
			return nil, err
		}
		g.stops = append(g.stops, c)
	}
	return g, nil
}

func (g *gradient) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	}
	ratio := 0.0
	if g.max > g.min {
		ratio = (v - g.min) / (g.max - g.min)
	}
	position := ratio * float64(len(g.stops)-1)
	i := int(position)
	if i >= len(g.stops)-1 {
		i = len(g.stops) - 2
	}
	var c colorful.Color
	switch frac := position - float64(i); frac {
	case 0:
		c = g.stops[i]
	case 1:
		c = g.stops[i+1]
	default:
		c = g.stops[i].BlendLab(g.stops[i+1], frac).Clamped()
	}
	r, gr, b := c.RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: uint8(g.alpha*255 + 0.5)}, nil
}

func (g *gradient) Max() float64 {
	return g.max
}

func (g *gradient) SetMax(v float64) {
	g.max = v
}

func (g *gradient) Min() float64 {
	return g.min
}

func (g *gradient) SetMin(v float64) {
	g.min = v
}

func (g *gradient) Alpha() float64 {
	return g.alpha
}

func (g *gradient) SetAlpha(alpha float64) {
	g.alpha = math.Max(0, math.Min(1, alpha))
}

func (g *gradient) Palette(n int) palette.Palette {
	if n < 1 {
		return colors(nil)
	}
	p := make(colors, n)
	for i := range p {
		v := g.min
		if n > 1 {
			v = math.Min(g.max, v+(g.max-g.min)*float64(i)/float64(n-1))
		}
		p[i], _ = g.At(v)
	}
	return p
}
