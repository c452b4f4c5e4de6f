// Viewer renders the composition once and shows it in a desktop window.
// Nothing animates: the frame is produced before the window opens and Update
// never changes it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/render"
)

type viewer struct {
	frame  *ebiten.Image
	width  int
	height int
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	width := flag.Float64("width", config.DefaultWidth, "canvas width in pixels")
	height := flag.Float64("height", config.DefaultHeight, "canvas height in pixels")
	palettePath := flag.String("palette", "data/palette.json", "palette JSON override (bg/ink/layers)")
	scale := flag.Float64("scale", 0.5, "window scale relative to the canvas")
	flag.Parse()

	opts := config.Options{Width: *width, Height: *height}
	if palette, err := loadPalette(*palettePath); err == nil {
		opts.Palette = palette
		fmt.Println("Palette loaded.")
	} else {
		fmt.Println("Palette missing; using safe fallback.")
	}
	cfg := config.Normalize(opts)

	surface := render.NewRaster(int(cfg.Width), int(cfg.Height))
	render.RenderHelix(surface, opts)

	windowScale := *scale
	if windowScale <= 0 {
		windowScale = 0.5
	}
	ebiten.SetWindowSize(int(cfg.Width*windowScale), int(cfg.Height*windowScale))
	ebiten.SetWindowTitle("Cosmic Helix Renderer (ND-safe, Offline)")

	v := &viewer{
		frame:  ebiten.NewImageFromImage(surface.Image()),
		width:  int(cfg.Width),
		height: int(cfg.Height),
	}
	if err := ebiten.RunGame(v); err != nil {
		fmt.Println("viewer error:", err)
		os.Exit(1)
	}
}

type paletteFile struct {
	BG     string   `json:"bg"`
	Ink    string   `json:"ink"`
	Layers []string `json:"layers"`
}

func loadPalette(path string) (*config.PaletteOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf paletteFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	return &config.PaletteOptions{Background: pf.BG, Ink: pf.Ink, LayerColors: pf.Layers}, nil
}
