package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/benjaminmd/ezplot/config"
	"github.com/benjaminmd/ezplot/helpers"
	"github.com/rs/zerolog/log"
)

// Formats lists what Encode and Save accept
var Formats = []string{"pdf", "png", "svg", "eps", "jpg", "jpeg", "tif", "tiff"}

// Figure is a rows x cols grid of axes laid out like a gridspec: margins are
// fractions of the figure, spaces between axes fractions of the mean axis size
type Figure struct {
	Width   vg.Length
	Height  vg.Length
	Rows    int
	Cols    int
	Grid    config.GridSpec
	DPI     int
	Formats []string
	axes    [][]*plot.Plot
	sharedX []bool
}

// private

func (f *Figure) tiles() draw.Tiles {
	g := f.Grid
	axesWidth := float64(f.Width) * (g.Right - g.Left) / (float64(f.Cols) + float64(f.Cols-1)*g.WSpace)
	axesHeight := float64(f.Height) * (g.Top - g.Bottom) / (float64(f.Rows) + float64(f.Rows-1)*g.HSpace)
	return draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadLeft:   f.Width * vg.Length(g.Left),
		PadRight:  f.Width * vg.Length(1-g.Right),
		PadBottom: f.Height * vg.Length(g.Bottom),
		PadTop:    f.Height * vg.Length(1-g.Top),
		PadX:      vg.Length(axesWidth * g.WSpace),
		PadY:      vg.Length(axesHeight * g.HSpace),
	}
}

func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))}, nil
	case "pdf":
		return vgpdf.New(f.Width, f.Height), nil
	case "svg":
		return vgsvg.New(f.Width, f.Height), nil
	case "eps":
		return vgeps.New(f.Width, f.Height), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// x ranges of shared columns are aligned on the union of their axes
func (f *Figure) alignSharedX() {
	for col, shared := range f.sharedX {
		if !shared {
			continue
		}
		min, max := math.Inf(1), math.Inf(-1)
		for row := 0; row < f.Rows; row++ {
			p := f.axes[row][col]
			min = math.Min(min, p.X.Min)
			max = math.Max(max, p.X.Max)
		}
		for row := 0; row < f.Rows; row++ {
			f.axes[row][col].X.Min = min
			f.axes[row][col].X.Max = max
		}
	}
}

// API

// Size returns the default figure size: the configured width and a golden
// ratio aspect
func Size() (width, height vg.Length) {
	width = vg.Length(config.Style.Figure.WidthCm) * vg.Centimeter
	height = width / vg.Length(config.Phi)
	return
}

// NewFigure creates a figure with the default size and the current style
func NewFigure(rows, cols int) *Figure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	width, height := Size()
	axes := make([][]*plot.Plot, rows)
	for row := range axes {
		axes[row] = make([]*plot.Plot, cols)
		for col := range axes[row] {
			axes[row][col] = newAxes("", "")
		}
	}
	return &Figure{
		Width:   width,
		Height:  height,
		Rows:    rows,
		Cols:    cols,
		Grid:    config.Style.Grid,
		DPI:     config.Style.Figure.DPI,
		Formats: append([]string(nil), config.Style.Figure.Formats...),
		axes:    axes,
		sharedX: make([]bool, cols),
	}
}

// Axes returns the plot at row, col (0-indexed, row 0 on top)
func (f *Figure) Axes(row, col int) *plot.Plot {
	return f.axes[row][col]
}

// ShareX aligns the x range of every axes of col when drawing
func (f *Figure) ShareX(col int) {
	f.sharedX[col] = true
}

// Encode draws the figure into w in the given format
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := f.canvas(format)
	if err != nil {
		return err
	}
	f.alignSharedX()
	canvases := plot.Align(f.axes, f.tiles(), draw.New(c))
	for row := range f.axes {
		for col, p := range f.axes[row] {
			p.Draw(canvases[row][col])
		}
	}
	_, err = c.WriteTo(w)
	return err
}

// Save writes basePath.<format> for each format, or for the formats of the
// style if none is given. A known extension on basePath is dropped.
func (f *Figure) Save(basePath string, formats ...string) error {
	if len(formats) == 0 {
		formats = f.Formats
	}
	basePath = helpers.TrimExt(basePath, Formats)
	if err := helpers.EnsureDir(basePath); err != nil {
		return err
	}
	for _, format := range formats {
		path := basePath + "." + strings.ToLower(format)
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		err = f.Encode(file, format)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			log.Error().Str("context", "plot").Str("path", path).Err(err).Msg("figure_save_failed")
			return err
		}
		log.Info().Str("context", "plot").Str("path", path).Msg("figure_saved")
	}
	return nil
}

// SingleFigure is a 1x1 figure with a grid and labelled axes
func SingleFigure(xLabel, yLabel string) (*Figure, *plot.Plot) {
	f := NewFigure(1, 1)
	ax := f.Axes(0, 0)
	ax.X.Label.Text = xLabel
	ax.Y.Label.Text = yLabel
	return f, ax
}

// DualFigure stacks two axes sharing x, the x label is only on the bottom one
func DualFigure(xLabel, topLabel, bottomLabel string) (*Figure, *plot.Plot, *plot.Plot) {
	f := NewFigure(2, 1)
	top, bottom := f.Axes(0, 0), f.Axes(1, 0)
	top.Y.Label.Text = topLabel
	bottom.X.Label.Text = xLabel
	bottom.Y.Label.Text = bottomLabel
	f.ShareX(0)
	return f, top, bottom
}
