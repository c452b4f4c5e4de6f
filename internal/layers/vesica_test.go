package layers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/layers"
)

func TestVesicaDefaultGrid(t *testing.T) {
	cfg := config.Normalize(config.Options{})
	circles := layers.Vesica(cfg)

	// NINE columns x SEVEN rows, two circles per cell.
	assert.Len(t, circles, 2*9*7)
}

func TestVesicaGridDerivedFromNumerology(t *testing.T) {
	cfg := config.Normalize(config.Options{Numerology: &config.NumerologyOptions{
		Nine:  4,
		Seven: 3,
	}})
	assert.Len(t, layers.Vesica(cfg), 2*4*3)
}

func TestVesicaPairsOverlapGently(t *testing.T) {
	cfg := config.Normalize(config.Options{})
	circles := layers.Vesica(cfg)
	require.GreaterOrEqual(t, len(circles), 2)

	upper, lower := circles[0], circles[1]
	assert.Equal(t, upper.CenterX, lower.CenterX)
	separation := math.Abs(lower.CenterY - upper.CenterY)
	// One-radius separation: overlapping lens, neither disjoint nor contained.
	assert.InDelta(t, upper.Radius, separation, 1e-9)
	assert.Less(t, separation, 2*upper.Radius)
	assert.Greater(t, separation, 0.0)
}

func TestVesicaDeterminism(t *testing.T) {
	cfg := config.Normalize(config.Options{Width: 1200, Height: 700})
	assert.Equal(t, layers.Vesica(cfg), layers.Vesica(cfg))
}
