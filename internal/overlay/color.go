package overlay

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is used for annotations without a valid colour
var DefaultColor = color.RGBA{R: 255, G: 200, B: 60, A: 255}

// ParseColor reads "#rrggbb" or "#rgb", the leading # is optional.
// Anything else yields DefaultColor and false.
func ParseColor(s string) (color.RGBA, bool) {
	hex := "#" + strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 4 && len(hex) != 7 {
		return DefaultColor, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return DefaultColor, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// WithAlpha scales the opacity of c by alpha in [0,1]
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
