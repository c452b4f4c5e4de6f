package config_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightfold/cosmichelix/internal/config"
)

func TestNormalizeZeroValueGivesDefaults(t *testing.T) {
	cfg := config.Normalize(config.Options{})

	assert.Equal(t, config.DefaultWidth, cfg.Width)
	assert.Equal(t, config.DefaultHeight, cfg.Height)
	assert.Equal(t, config.DefaultPalette(), cfg.Palette)
	assert.Equal(t, config.DefaultNumerology(), cfg.Numerology)
}

func TestNormalizeDimensionFallback(t *testing.T) {
	cases := []struct {
		name   string
		width  float64
		height float64
	}{
		{"nan", math.NaN(), math.NaN()},
		{"zero", 0, 0},
		{"negative", -100, -1},
		{"infinite", math.Inf(1), math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Normalize(config.Options{Width: tc.width, Height: tc.height})
			assert.Equal(t, 1440.0, cfg.Width)
			assert.Equal(t, 900.0, cfg.Height)
		})
	}
}

func TestNormalizeKeepsValidDimensions(t *testing.T) {
	cfg := config.Normalize(config.Options{Width: 1000, Height: 800})
	assert.Equal(t, 1000.0, cfg.Width)
	assert.Equal(t, 800.0, cfg.Height)
}

func TestNumerologyFallback(t *testing.T) {
	cfg := config.Normalize(config.Options{Numerology: &config.NumerologyOptions{
		Seven:  0,
		Eleven: math.NaN(),
		Nine:   5,
	}})

	num := cfg.Numerology
	assert.Equal(t, 7.0, num.Seven, "zero must be replaced, never propagated")
	assert.Equal(t, 11.0, num.Eleven, "NaN must be replaced, never propagated")
	assert.Equal(t, 5.0, num.Nine, "valid overrides are kept")
	assert.Equal(t, 3.0, num.Three)
	assert.Equal(t, 144.0, num.OneFortyFour)
}

func TestPalettePadding(t *testing.T) {
	cfg := config.Normalize(config.Options{Palette: &config.PaletteOptions{
		LayerColors: []string{"#111"},
	}})

	defaults := config.DefaultPalette()
	require.Len(t, cfg.Palette.LayerColors, config.LayerCount)
	assert.Equal(t, "#111", cfg.Palette.LayerColors[0])
	for i := 1; i < config.LayerCount; i++ {
		assert.Equal(t, defaults.LayerColors[i], cfg.Palette.LayerColors[i])
	}
}

func TestPaletteTruncation(t *testing.T) {
	extra := []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8"}
	cfg := config.Normalize(config.Options{Palette: &config.PaletteOptions{LayerColors: extra}})

	require.Len(t, cfg.Palette.LayerColors, config.LayerCount)
	assert.Equal(t, "#6", cfg.Palette.LayerColors[5])
}

func TestPaletteEmptyFieldsDefaultIndividually(t *testing.T) {
	cfg := config.Normalize(config.Options{Palette: &config.PaletteOptions{
		Background:  "",
		Ink:         "#123456",
		LayerColors: []string{"", "#abc"},
	}})

	defaults := config.DefaultPalette()
	assert.Equal(t, defaults.Background, cfg.Palette.Background)
	assert.Equal(t, "#123456", cfg.Palette.Ink)
	assert.Equal(t, defaults.LayerColors[0], cfg.Palette.LayerColors[0])
	assert.Equal(t, "#abc", cfg.Palette.LayerColors[1])
}

func TestNormalizeIsDeterministic(t *testing.T) {
	opts := config.Options{
		Width:      640,
		Palette:    &config.PaletteOptions{Ink: "#fff"},
		Numerology: &config.NumerologyOptions{NinetyNine: 12},
	}
	assert.Equal(t, config.Normalize(opts), config.Normalize(opts))
}
