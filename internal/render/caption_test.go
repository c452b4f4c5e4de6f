package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/lightfold/cosmichelix/internal/render"
)

func TestLoadCaptionFaceFallsBackToBasicfont(t *testing.T) {
	assert.Equal(t, basicfont.Face7x13, render.LoadCaptionFace("", 18, nil))
	assert.Equal(t, basicfont.Face7x13, render.LoadCaptionFace("/does/not/exist.ttf", 18, render.NoopLogger{}))
}

func TestDrawCaptionPaintsBottomStrip(t *testing.T) {
	surface := render.NewRaster(200, 100)
	surface.SetFill("#000000")
	surface.FillRect(0, 0, 200, 100)

	render.DrawCaption(surface.Image(), "ND-safe, offline", "#ffffff", nil)

	img := surface.Image()
	painted := 0
	for y := 60; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{A: 0xFF}) {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 0, "caption glyphs should land in the bottom strip")

	// The top half stays untouched.
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(x, y))
		}
	}
}

func TestDrawCaptionNoopOnEmptyInput(t *testing.T) {
	assert.NotPanics(t, func() {
		render.DrawCaption(nil, "text", "#fff", nil)
	})
	surface := render.NewRaster(10, 10)
	assert.NotPanics(t, func() {
		render.DrawCaption(surface.Image(), "", "#fff", nil)
	})
}
