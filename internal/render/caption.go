package render

import (
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lightfold/cosmichelix/internal/hue"
	"github.com/lightfold/cosmichelix/internal/render/layout"
)

// LoadCaptionFace parses a TTF file into a font face. Any failure falls back
// to the built-in bitmap face so captions always render.
func LoadCaptionFace(path string, sizePt float64, logger Logger) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Errorf("caption", "font read failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		if logger != nil {
			logger.Errorf("caption", "font parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	if sizePt <= 0 {
		sizePt = 18
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: sizePt, DPI: 96, Hinting: font.HintingFull})
}

// DrawCaption writes one centered line of text into the bottom strip of the
// canvas. The ink string is parsed as hex; an unparseable ink falls back to
// the default ink color.
func DrawCaption(canvas *image.RGBA, text, ink string, face font.Face) {
	if canvas == nil || text == "" {
		return
	}
	if face == nil {
		face = basicfont.Face7x13
	}
	inkColor, err := hue.ParseHex(ink)
	if err != nil {
		inkColor, _ = hue.ParseHex("#e8e8f0")
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	stripHeight := lineHeight * 2
	bounds := canvas.Bounds()
	_, strip := layout.SplitHorizontal(bounds, bounds.Dy()-stripHeight)
	strip = layout.Inset(strip, lineHeight/2)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(inkColor),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	x := strip.Min.X + (strip.Dx()-textWidth)/2
	baseline := strip.Min.Y + metrics.Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
