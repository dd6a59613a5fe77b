package plot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benjaminmd/ezplot/config"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func newAxes(x, y string) *plot.Plot {
	style := config.Style
	p := plot.New()
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Title.TextStyle.Font.Size = vg.Points(style.Fonts.Title)
	p.X.Label.TextStyle.Font.Size = vg.Points(style.Fonts.Label)
	p.Y.Label.TextStyle.Font.Size = vg.Points(style.Fonts.Label)
	p.X.Tick.Label.Font.Size = vg.Points(style.Fonts.Tick)
	p.Y.Tick.Label.Font.Size = vg.Points(style.Fonts.Tick)
	p.Legend.TextStyle.Font.Size = vg.Points(style.Fonts.Legend)
	p.Legend.Top = true

	dashes := vg.Points(style.Lines.GridDashes)
	grid := plotter.NewGrid()
	grid.Horizontal.Dashes = []vg.Length{dashes, dashes}
	grid.Vertical.Dashes = []vg.Length{dashes, dashes}
	p.Add(grid)
	return p
}

func toXYs(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}

// offsetXYs is toXYs with dy added to every y
func offsetXYs(x, y []float64, dy float64) plotter.XYs {
	xys := toXYs(x, y)
	for i := range xys {
		xys[i].Y += dy
	}
	return xys
}

func addLine(p *plot.Plot, xys plotter.XYer, width float64, color color.Color, dashes float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Color = color
	if dashes > 0 {
		line.LineStyle.Dashes = []vg.Length{vg.Points(dashes), vg.Points(dashes)}
	}
	p.Add(line)
	return line, nil
}

// markerRadius converts a marker size given as an area in points² to a radius
func markerRadius(size float64) vg.Length {
	return vg.Points(math.Sqrt(math.Max(size, 0)) / 2)
}

// addObsMarkers draws open markers in three layers: a dark edge, a white
// fill hiding what is behind, then a translucent tint. The returned
// thumbnails render the same stack in a legend.
func addObsMarkers(p *plot.Plot, xys plotter.XYer, tint color.Color) ([]plot.Thumbnailer, error) {
	style := config.Style
	radius := markerRadius(style.Lines.MarkerSize)
	layers := []draw.GlyphStyle{
		{Color: color.Black, Radius: radius + vg.Points(style.Lines.MarkerEdge/2), Shape: draw.CircleGlyph{}},
		{Color: white, Radius: radius, Shape: draw.CircleGlyph{}},
		{Color: tint, Radius: markerRadius(style.Lines.MarkerSize - 1), Shape: draw.CircleGlyph{}},
	}
	thumbs := make([]plot.Thumbnailer, 0, len(layers))
	for _, glyph := range layers {
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle = glyph
		p.Add(scatter)
		thumbs = append(thumbs, scatter)
	}
	return thumbs, nil
}

// setXLim fixes the x range, must be called after every plotter is added
func setXLim(p *plot.Plot, min, max float64) {
	p.X.Min = min
	p.X.Max = max
}
