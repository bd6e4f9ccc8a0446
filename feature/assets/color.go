package assets

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

var namedColors = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"red":         gg.Red,
	"green":       gg.Green,
	"blue":        gg.Blue,
	"yellow":      gg.Yellow,
	"cyan":        gg.Cyan,
	"magenta":     gg.Magenta,
	"transparent": gg.Transparent,
}

// ParseColor accepts a gg color name or a hex color in the RGB, RGBA,
// RRGGBB or RRGGBBAA form, with or without a leading '#'. The result is
// non-premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return toNRGBA(c), nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if strings.IndexFunc(hex, func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f')
	}) >= 0 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return toNRGBA(gg.Hex(hex)), nil
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
