// Package hue holds the small color helpers shared by the palette loader and
// the raster backend: hex parsing plus luminance-preserving YCoCg conversions.
package hue

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Clamp limits v to [low, high].
func Clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}

// YCoCgToRGB converts a YCoCg triple to RGB. All components are in 0..1.
func YCoCgToRGB(y, co, cg float64) (r, g, b float64) {
	r = Clamp(y+co-cg, 0, 1)
	g = Clamp(y+cg, 0, 1)
	b = Clamp(y-co-cg, 0, 1)
	return r, g, b
}

// YCoCgToHSL converts a YCoCg triple to HSL while preserving luminance.
func YCoCgToHSL(y, co, cg float64) (h, s, l float64) {
	r, g, b := YCoCgToRGB(y, co, cg)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = math.Mod((g-b)/delta, 6)
		if h < 0 {
			h += 6
		}
	case maxC == g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h /= 6

	l = Clamp(y, 0, 1)
	denom := 1 - math.Abs(2*l-1)
	if delta == 0 || denom == 0 {
		s = 0
	} else {
		s = Clamp(delta/denom, 0, 1)
	}
	return h, s, l
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" into an NRGBA color.
func ParseHex(s string) (color.NRGBA, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") || len(trimmed) < 2 {
		return color.NRGBA{}, fmt.Errorf("hue: %q is not a hex color", s)
	}
	raw := trimmed[1:]
	if len(raw) == 3 {
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = raw[i]
			expanded[2*i+1] = raw[i]
		}
		raw = string(expanded)
	}
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("hue: %q has unsupported hex length", s)
	}
	value, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("hue: %q is not a hex color: %w", s, err)
	}
	out := color.NRGBA{A: 0xFF}
	if len(raw) == 8 {
		out.A = uint8(value & 0xFF)
		value >>= 8
	}
	out.B = uint8(value & 0xFF)
	out.G = uint8((value >> 8) & 0xFF)
	out.R = uint8((value >> 16) & 0xFF)
	return out, nil
}
