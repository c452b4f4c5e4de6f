// Package render composes the four geometry layers onto a drawing surface
// and provides the raster, framebuffer and caption backends around it.
package render

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/geometry"
	"github.com/lightfold/cosmichelix/internal/layers"
)

// Surface is the minimal capability contract the compositor needs from its
// host: style setters, path building and a whole-canvas fill. Colors are
// passed as opaque strings; backends decide how to interpret them.
type Surface interface {
	SetStroke(color string)
	SetFill(color string)
	SetLineWidth(width float64)
	SetOpacity(alpha float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, radius float64)
	Stroke()
	Fill()

	FillRect(x, y, width, height float64)
}

// RenderHelix is the single entry point: it normalizes opts, fills the
// background and draws the four layers back to front (vesica grid,
// Tree-of-Life scaffold, Fibonacci curve, helix lattice). A nil surface is
// a silent no-op. Two calls with equal arguments issue identical surface
// call sequences.
func RenderHelix(surface Surface, opts config.Options) {
	if surface == nil {
		return
	}
	cfg := config.Normalize(opts)

	surface.SetOpacity(1)
	surface.SetFill(cfg.Palette.Background)
	surface.FillRect(0, 0, cfg.Width, cfg.Height)

	drawVesica(surface, cfg)
	drawTree(surface, cfg)
	drawFibonacci(surface, cfg)
	drawHelix(surface, cfg)
}

func drawVesica(surface Surface, cfg config.Config) {
	surface.SetOpacity(0.6)
	surface.SetStroke(cfg.Palette.LayerColors[0])
	surface.SetLineWidth(hairline(cfg))
	for _, circle := range layers.Vesica(cfg) {
		strokeCircle(surface, circle)
	}
	surface.SetOpacity(1)
}

func drawTree(surface Surface, cfg config.Config) {
	paths, nodes := layers.Tree(cfg)

	surface.SetStroke(cfg.Palette.LayerColors[1])
	surface.SetLineWidth(layers.TreePathWidth(cfg))
	for _, path := range paths {
		strokePolyline(surface, path)
	}

	// Nodes sit on top of the paths: filled with the layer color, rimmed
	// with ink so they read against both light and dark paths.
	surface.SetFill(cfg.Palette.LayerColors[2])
	surface.SetStroke(cfg.Palette.Ink)
	surface.SetLineWidth(hairline(cfg))
	for _, node := range nodes {
		surface.BeginPath()
		surface.Arc(node.CenterX, node.CenterY, node.Radius)
		surface.Fill()
		surface.Stroke()
	}
}

func drawFibonacci(surface Surface, cfg config.Config) {
	curves := layers.Fibonacci(cfg)
	if len(curves) == 0 {
		return
	}
	surface.SetStroke(cfg.Palette.LayerColors[3])
	surface.SetLineWidth(math.Max(hairline(cfg), 2))
	for _, curve := range curves {
		strokePolyline(surface, curve)
	}
}

func drawHelix(surface Surface, cfg config.Config) {
	strands, rungs := layers.Helix(cfg)

	if len(strands) > 0 {
		surface.SetStroke(cfg.Palette.LayerColors[4])
		surface.SetLineWidth(math.Max(hairline(cfg), 1.5))
		for _, strand := range strands {
			strokePolyline(surface, strand)
		}
	}

	if len(rungs) > 0 {
		surface.SetStroke(cfg.Palette.LayerColors[5])
		surface.SetLineWidth(hairline(cfg))
		surface.SetOpacity(0.8)
		for _, rung := range rungs {
			strokePolyline(surface, rung)
		}
		surface.SetOpacity(1)
	}
}

// hairline is the thinnest stroke used by the composition, derived from the
// ONEFORTYFOUR constant and clamped to stay visible.
func hairline(cfg config.Config) float64 {
	return math.Max(math.Min(cfg.Width, cfg.Height)/cfg.Numerology.OneFortyFour/4, 1)
}

func strokePolyline(surface Surface, line geometry.Polyline) {
	if len(line.Points) < 2 {
		return
	}
	surface.BeginPath()
	surface.MoveTo(line.Points[0].X, line.Points[0].Y)
	for _, p := range line.Points[1:] {
		surface.LineTo(p.X, p.Y)
	}
	surface.Stroke()
}

func strokeCircle(surface Surface, circle geometry.Circle) {
	surface.BeginPath()
	surface.Arc(circle.CenterX, circle.CenterY, circle.Radius)
	surface.Stroke()
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
