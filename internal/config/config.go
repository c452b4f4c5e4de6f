// Package config normalizes caller-supplied render options into a complete,
// invariant-satisfying configuration. Malformed input never produces an
// error; every field degrades to its canonical default individually.
package config

import "math"

// Canvas defaults match the original 1440x900 stage.
const (
	DefaultWidth  = 1440.0
	DefaultHeight = 900.0
)

// LayerCount is the fixed number of palette layer colors.
const LayerCount = 6

// Numerology is the resolved set of layout constants. Every value is finite
// and non-zero after resolution; the constants carry no meaning beyond
// proportion control.
type Numerology struct {
	Three        float64
	Seven        float64
	Nine         float64
	Eleven       float64
	TwentyTwo    float64
	ThirtyThree  float64
	NinetyNine   float64
	OneFortyFour float64
}

// Palette is the resolved color set. Colors are opaque strings; parsing is
// left to the drawing surface. LayerColors is a fixed-size array so the
// six-entry invariant holds by construction.
type Palette struct {
	Background  string
	Ink         string
	LayerColors [LayerCount]string
}

// Config is a fully populated render configuration. It is built fresh per
// render call and never cached.
type Config struct {
	Width      float64
	Height     float64
	Palette    Palette
	Numerology Numerology
}

// NumerologyOptions carries caller overrides for the numerology table.
// A zero, NaN or infinite field falls back to its default.
type NumerologyOptions struct {
	Three        float64
	Seven        float64
	Nine         float64
	Eleven       float64
	TwentyTwo    float64
	ThirtyThree  float64
	NinetyNine   float64
	OneFortyFour float64
}

// PaletteOptions carries caller overrides for the palette. Empty strings and
// missing layer entries fall back to their defaults index by index.
type PaletteOptions struct {
	Background  string
	Ink         string
	LayerColors []string
}

// Options is the partial configuration accepted by the renderer.
// The zero value resolves to the full default configuration.
type Options struct {
	Width      float64
	Height     float64
	Palette    *PaletteOptions
	Numerology *NumerologyOptions
}

// DefaultNumerology returns the canonical constant table.
func DefaultNumerology() Numerology {
	return Numerology{
		Three:        3,
		Seven:        7,
		Nine:         9,
		Eleven:       11,
		TwentyTwo:    22,
		ThirtyThree:  33,
		NinetyNine:   99,
		OneFortyFour: 144,
	}
}

// DefaultPalette returns the calm-contrast fallback palette.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0b0b12",
		Ink:        "#e8e8f0",
		LayerColors: [LayerCount]string{
			"#b1c7ff",
			"#89f7fe",
			"#a0ffa1",
			"#ffd27f",
			"#f5a3ff",
			"#d0d0e6",
		},
	}
}

// Normalize turns a partial, possibly invalid Options value into a complete
// Config. It never fails: every invalid field is replaced by its default.
func Normalize(opts Options) Config {
	return Config{
		Width:      resolveDimension(opts.Width, DefaultWidth),
		Height:     resolveDimension(opts.Height, DefaultHeight),
		Palette:    resolvePalette(opts.Palette),
		Numerology: resolveNumerology(opts.Numerology),
	}
}

func resolveDimension(v, fallback float64) float64 {
	if !isFinite(v) || v <= 0 {
		return fallback
	}
	return v
}

// resolveNumerology substitutes the default for any non-finite or zero
// override so that a constant used as a divisor can never be zero.
func resolveNumerology(in *NumerologyOptions) Numerology {
	out := DefaultNumerology()
	if in == nil {
		return out
	}
	pick := func(v float64, fallback float64) float64 {
		if !isFinite(v) || v == 0 {
			return fallback
		}
		return v
	}
	out.Three = pick(in.Three, out.Three)
	out.Seven = pick(in.Seven, out.Seven)
	out.Nine = pick(in.Nine, out.Nine)
	out.Eleven = pick(in.Eleven, out.Eleven)
	out.TwentyTwo = pick(in.TwentyTwo, out.TwentyTwo)
	out.ThirtyThree = pick(in.ThirtyThree, out.ThirtyThree)
	out.NinetyNine = pick(in.NinetyNine, out.NinetyNine)
	out.OneFortyFour = pick(in.OneFortyFour, out.OneFortyFour)
	return out
}

// resolvePalette fills background, ink and exactly six layer colors.
// Extra layer entries are truncated, missing ones padded with defaults.
func resolvePalette(in *PaletteOptions) Palette {
	out := DefaultPalette()
	if in == nil {
		return out
	}
	if in.Background != "" {
		out.Background = in.Background
	}
	if in.Ink != "" {
		out.Ink = in.Ink
	}
	for i := 0; i < LayerCount; i++ {
		if i < len(in.LayerColors) && in.LayerColors[i] != "" {
			out.LayerColors[i] = in.LayerColors[i]
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
