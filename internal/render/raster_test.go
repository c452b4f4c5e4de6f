package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/render"
)

func TestRasterFillRect(t *testing.T) {
	surface := render.NewRaster(32, 32)
	surface.SetFill("#ff0000")
	surface.FillRect(0, 0, 32, 32)

	pixel := surface.Image().RGBAAt(16, 16)
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, pixel)
}

func TestRasterStrokeCoversLineCenter(t *testing.T) {
	surface := render.NewRaster(40, 40)
	surface.SetFill("#000000")
	surface.FillRect(0, 0, 40, 40)

	surface.SetStroke("#ffffff")
	surface.SetLineWidth(5)
	surface.BeginPath()
	surface.MoveTo(0, 20)
	surface.LineTo(40, 20)
	surface.Stroke()

	pixel := surface.Image().RGBAAt(20, 20)
	assert.Greater(t, int(pixel.R), 200, "line center should be painted")
}

func TestRasterInvalidColorKeepsPrevious(t *testing.T) {
	surface := render.NewRaster(16, 16)
	surface.SetFill("#00ff00")
	surface.SetFill("not-a-color")
	surface.FillRect(0, 0, 16, 16)

	pixel := surface.Image().RGBAAt(8, 8)
	assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, pixel)
}

func TestRasterRenderHelixPaintsBackgroundAndLayers(t *testing.T) {
	surface := render.NewRaster(144, 90)
	render.RenderHelix(surface, config.Options{Width: 144, Height: 90})
	img := surface.Image()

	// The corner stays background; the canvas as a whole does not.
	background := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{R: 0x0B, G: 0x0B, B: 0x12, A: 0xFF}, background)

	painted := 0
	for y := 0; y < 90; y++ {
		for x := 0; x < 144; x++ {
			if img.RGBAAt(x, y) != background {
				painted++
			}
		}
	}
	require.Greater(t, painted, 0, "layers must leave visible pixels")
}

func TestRasterClampsDegenerateSize(t *testing.T) {
	surface := render.NewRaster(0, -4)
	bounds := surface.Image().Bounds()
	assert.Equal(t, 1, bounds.Dx())
	assert.Equal(t, 1, bounds.Dy())
}
