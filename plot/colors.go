package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
)

// default property cycle, C0 to C9
var cycleHex = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

var cycleColors []color.NRGBA

func init() {
	for _, hex := range cycleHex {
		c, err := ParseHex(hex)
		if err != nil {
			panic(err)
		}
		cycleColors = append(cycleColors, c)
	}
}

// Cycle returns the i-th color of the default cycle ("C<i>"), wrapping around
func Cycle(i int) color.NRGBA {
	n := len(cycleColors)
	return cycleColors[(i%n+n)%n]
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa, a "C<n>" cycle reference or
// black/white shades given as a "0.0" to "1.0" string
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) > 1 && (s[0] == 'C' || s[0] == 'c') {
		if n, err := strconv.Atoi(s[1:]); err == nil {
			return Cycle(n), nil
		}
	}
	if gray, err := strconv.ParseFloat(s, 64); err == nil {
		if gray < 0 || gray > 1 {
			return color.NRGBA{}, fmt.Errorf("gray level %v out of [0, 1]", gray)
		}
		v := uint8(gray*255 + 0.5)
		return color.NRGBA{R: v, G: v, B: v, A: 255}, nil
	}

	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// HexToRGBA parses s and replaces its alpha, given in [0, 1]
func HexToRGBA(s string, alpha float64) (color.NRGBA, error) {
	if alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("alpha %v out of [0, 1]", alpha)
	}
	c, err := ParseHex(s)
	if err != nil {
		return c, err
	}
	c.A = uint8(alpha*255 + 0.5)
	return c, nil
}

// styleColor falls back to black when a style color can't be parsed
func styleColor(s string, alpha float64) color.NRGBA {
	c, err := HexToRGBA(s, alpha)
	if err != nil {
		log.Warn().Str("context", "plot").Str("color", s).Err(err).Msg("style_color_invalid")
		return color.NRGBA{A: 255}
	}
	return c
}

func withAlpha(c color.Color, alpha float64) color.NRGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(alpha*255 + 0.5)
	return nrgba
}
