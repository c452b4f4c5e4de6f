package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// BlitFramebuffer scales the rendered canvas onto a Linux framebuffer device
// with nearest-neighbor sampling, so the composition can be shown on an
// appliance display without any windowing system.
func BlitFramebuffer(device string, canvas *image.RGBA) error {
	if device == "" {
		device = "/dev/fb0"
	}
	dev, err := fb.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	srcWidth := canvas.Bounds().Dx()
	srcHeight := canvas.Bounds().Dy()
	if fbWidth == 0 || fbHeight == 0 || srcWidth == 0 || srcHeight == 0 {
		return nil
	}
	for y := 0; y < fbHeight; y++ {
		sy := (y * srcHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * srcWidth) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}
