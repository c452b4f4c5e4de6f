package layout_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lightfold/cosmichelix/internal/render/layout"
)

func TestInset(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	assert.Equal(t, image.Rect(10, 10, 90, 40), layout.Inset(rect, 10))
	assert.Equal(t, rect, layout.Inset(rect, 0))
	assert.Equal(t, rect, layout.Inset(rect, -5))
}

func TestInsetCollapsesGracefully(t *testing.T) {
	rect := image.Rect(0, 0, 10, 10)
	out := layout.Inset(rect, 20)
	assert.True(t, out.Min.X <= out.Max.X)
	assert.True(t, out.Min.Y <= out.Max.Y)
}

func TestNormalize(t *testing.T) {
	flipped := image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(0, 0)}
	assert.Equal(t, image.Rect(0, 0, 10, 20), layout.Normalize(flipped))
}

func TestSplitHorizontal(t *testing.T) {
	rect := image.Rect(0, 0, 100, 50)
	top, bottom := layout.SplitHorizontal(rect, 30)
	assert.Equal(t, image.Rect(0, 0, 100, 30), top)
	assert.Equal(t, image.Rect(0, 30, 100, 50), bottom)

	// Clamped on both ends.
	top, bottom = layout.SplitHorizontal(rect, -10)
	assert.Equal(t, 0, top.Dy())
	assert.Equal(t, 50, bottom.Dy())
	top, bottom = layout.SplitHorizontal(rect, 99)
	assert.Equal(t, 50, top.Dy())
	assert.Equal(t, 0, bottom.Dy())
}
