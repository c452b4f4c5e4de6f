package render

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/lightfold/cosmichelix/internal/geometry"
	"github.com/lightfold/cosmichelix/internal/hue"
)

// Raster is a Surface backed by an offscreen RGBA canvas, stroked and filled
// through rasterx. It keeps canvas-2D-like state: a pending path plus the
// current stroke/fill colors, line width and global opacity.
type Raster struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	stroke    color.NRGBA
	fill      color.NRGBA
	opacity   float64
	lineWidth float64

	subpaths [][]geometry.Point
	circles  []geometry.Circle

	// Optional diagnostics hook; nil-safe.
	Logger Logger
}

// NewRaster builds a raster surface of the given pixel size.
func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Raster{
		img:       img,
		scanner:   scanner,
		filler:    rasterx.NewFiller(width, height, scanner),
		dasher:    rasterx.NewDasher(width, height, scanner),
		stroke:    color.NRGBA{R: 0xE8, G: 0xE8, B: 0xF0, A: 0xFF},
		fill:      color.NRGBA{A: 0xFF},
		opacity:   1,
		lineWidth: 1,
	}
}

// Image exposes the rendered canvas for encoding or blitting.
func (r *Raster) Image() *image.RGBA { return r.img }

// SetStroke parses a hex color for subsequent strokes. An unparseable color
// keeps the previous stroke color.
func (r *Raster) SetStroke(colorStr string) {
	parsed, err := hue.ParseHex(colorStr)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("raster", "stroke color ignored: %v", err)
		}
		return
	}
	r.stroke = parsed
}

// SetFill parses a hex color for subsequent fills. An unparseable color
// keeps the previous fill color.
func (r *Raster) SetFill(colorStr string) {
	parsed, err := hue.ParseHex(colorStr)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("raster", "fill color ignored: %v", err)
		}
		return
	}
	r.fill = parsed
}

func (r *Raster) SetLineWidth(width float64) {
	if width < 0 {
		width = 0
	}
	r.lineWidth = width
}

func (r *Raster) SetOpacity(alpha float64) {
	r.opacity = hue.Clamp(alpha, 0, 1)
}

func (r *Raster) BeginPath() {
	r.subpaths = r.subpaths[:0]
	r.circles = r.circles[:0]
}

func (r *Raster) MoveTo(x, y float64) {
	r.subpaths = append(r.subpaths, []geometry.Point{{X: x, Y: y}})
}

func (r *Raster) LineTo(x, y float64) {
	if len(r.subpaths) == 0 {
		// Canvas semantics: LineTo without MoveTo starts a subpath.
		r.MoveTo(x, y)
		return
	}
	last := len(r.subpaths) - 1
	r.subpaths[last] = append(r.subpaths[last], geometry.Point{X: x, Y: y})
}

func (r *Raster) Arc(cx, cy, radius float64) {
	r.circles = append(r.circles, geometry.Circle{CenterX: cx, CenterY: cy, Radius: radius})
}

// Stroke rasterizes the pending path with the current stroke state. The
// pending path survives so a caller can fill and stroke the same shape.
func (r *Raster) Stroke() {
	if r.lineWidth <= 0 {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(
		fixed.Int26_6(r.lineWidth*64), fixed.I(4),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round, nil, 0,
	)
	r.scanner.SetColor(rasterx.ApplyOpacity(r.stroke, r.opacity))
	r.feed(r.dasher, false)
	r.dasher.Draw()
	r.dasher.Clear()
}

// Fill rasterizes the pending path with the current fill state, closing
// open subpaths.
func (r *Raster) Fill() {
	r.filler.Clear()
	r.scanner.SetColor(rasterx.ApplyOpacity(r.fill, r.opacity))
	r.feed(r.filler, true)
	r.filler.Draw()
	r.filler.Clear()
}

// FillRect fills an axis-aligned rectangle without disturbing the pending path.
func (r *Raster) FillRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.filler.Clear()
	r.scanner.SetColor(rasterx.ApplyOpacity(r.fill, r.opacity))
	r.filler.Start(rasterx.ToFixedP(x, y))
	r.filler.Line(rasterx.ToFixedP(x+width, y))
	r.filler.Line(rasterx.ToFixedP(x+width, y+height))
	r.filler.Line(rasterx.ToFixedP(x, y+height))
	r.filler.Stop(true)
	r.filler.Draw()
	r.filler.Clear()
}

func (r *Raster) feed(adder rasterx.Adder, closeLoop bool) {
	for _, sub := range r.subpaths {
		if len(sub) < 2 {
			continue
		}
		adder.Start(rasterx.ToFixedP(sub[0].X, sub[0].Y))
		for _, p := range sub[1:] {
			adder.Line(rasterx.ToFixedP(p.X, p.Y))
		}
		adder.Stop(closeLoop)
	}
	for _, c := range r.circles {
		if c.Radius > 0 {
			rasterx.AddCircle(c.CenterX, c.CenterY, c.Radius, adder)
		}
	}
}
