package config

import (
	"fmt"

	"github.com/benjaminmd/ezplot/helpers"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type StyleConfig struct {
	Figure struct {
		WidthCm float64  `yaml:"widthCm"`
		DPI     int      `yaml:"dpi"`
		Formats []string `yaml:"formats"`
	}
	Grid  GridSpec
	Fonts struct {
		Title  float64 `yaml:"title"`
		Label  float64 `yaml:"label"`
		Tick   float64 `yaml:"tick"`
		Legend float64 `yaml:"legend"`
	}
	Lines struct {
		Width      float64 `yaml:"width"`
		MarkerSize float64 `yaml:"markerSize"`
		MarkerEdge float64 `yaml:"markerEdge"`
		GridDashes float64 `yaml:"gridDashes"`
	}
	Colors struct {
		Obs      string  `yaml:"obs"`
		ObsAlpha float64 `yaml:"obsAlpha"`
		Calc     string  `yaml:"calc"`
		Diff     string  `yaml:"diff"`
	}
}

// GridSpec margins are fractions of the figure, spaces fractions of the mean
// axis size
type GridSpec struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
	WSpace float64 `yaml:"wspace"`
	HSpace float64 `yaml:"hspace"`
}

var Style StyleConfig

func init() {
	Style = Default()
}

func Default() StyleConfig {
	var s StyleConfig
	s.Figure.WidthCm = 15
	s.Figure.DPI = 300
	s.Figure.Formats = []string{"pdf", "png"}
	s.Grid = GridSpec{
		Left:   0.15,
		Right:  0.85,
		Bottom: 0.15,
		Top:    0.85,
		WSpace: 0.05 / Phi,
		HSpace: 0.05,
	}
	s.Fonts.Title = 11
	s.Fonts.Label = 10
	s.Fonts.Tick = 9
	s.Fonts.Legend = 9
	s.Lines.Width = 1.5
	s.Lines.MarkerSize = 11
	s.Lines.MarkerEdge = 1.5
	s.Lines.GridDashes = 3
	s.Colors.Obs = "#9467bd"
	s.Colors.ObsAlpha = 0.1
	s.Colors.Calc = "#1f77b4"
	s.Colors.Diff = "#008000"
	return s
}

// Parse decodes a YAML style on top of the defaults, so that a style file
// only needs the values it changes
func Parse(data []byte) (StyleConfig, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s StyleConfig) Validate() error {
	if s.Figure.WidthCm <= 0 {
		return fmt.Errorf("figure width must be positive, got %v", s.Figure.WidthCm)
	}
	if s.Figure.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %v", s.Figure.DPI)
	}
	g := s.Grid
	if g.Left < 0 || g.Right > 1 || g.Left >= g.Right {
		return fmt.Errorf("invalid horizontal margins left=%v right=%v", g.Left, g.Right)
	}
	if g.Bottom < 0 || g.Top > 1 || g.Bottom >= g.Top {
		return fmt.Errorf("invalid vertical margins bottom=%v top=%v", g.Bottom, g.Top)
	}
	if g.WSpace < 0 || g.HSpace < 0 {
		return fmt.Errorf("negative spacing wspace=%v hspace=%v", g.WSpace, g.HSpace)
	}
	if s.Colors.ObsAlpha < 0 || s.Colors.ObsAlpha > 1 {
		return fmt.Errorf("obs alpha %v out of [0, 1]", s.Colors.ObsAlpha)
	}
	return nil
}

// Load replaces the global Style with the one read from path
func Load(path string) error {
	f, err := helpers.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Default()
	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&s); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	Style = s

	log.Info().Str("context", "init").Str("path", path).Str("config", fmt.Sprintf("%+v", Style)).Msg("style_config_loaded")
	return nil
}
