package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/render"
)

func main() {
	fmt.Println("Cosmic Helix Renderer (ND-safe, Offline)")

	// Flags
	width := flag.Float64("width", config.DefaultWidth, "canvas width in pixels")
	height := flag.Float64("height", config.DefaultHeight, "canvas height in pixels")
	palettePath := flag.String("palette", "data/palette.json", "palette JSON override (bg/ink/layers); fallback palette is used when missing")
	numerologyPath := flag.String("numerology", "", "numerology JSON override (THREE..ONEFORTYFOUR); defaults when missing")
	outPath := flag.String("out", "helix.png", "output PNG path")
	caption := flag.String("caption", "", "optional caption line baked under the composition")
	fontPath := flag.String("font", "", "TTF font for the caption; built-in bitmap face when empty")
	fontSize := flag.Float64("font-size", 18, "caption font size in points")
	toFB := flag.Bool("fb", false, "also blit the canvas to a Linux framebuffer")
	fbDevice := flag.String("fb-device", "/dev/fb0", "framebuffer device used with -fb")
	debug := flag.Bool("debug", false, "enable debug logging to ./cosmichelix-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via COSMICHELIX_STDIO_LOG")
	flag.Parse()

	// With -fb the console displays the canvas, so send prints and panic
	// traces to a file where they stay readable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("COSMICHELIX_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger render.Logger = render.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./cosmichelix-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = render.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
			defer f.Close()
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	paletteOpts, err := loadPalette(*palettePath)
	if err != nil {
		fmt.Println("Palette missing; using safe fallback.")
		logger.Errorf("palette", "load %s failed: %v", *palettePath, err)
	} else {
		fmt.Println("Palette loaded.")
	}

	var numerologyOpts *config.NumerologyOptions
	if *numerologyPath != "" {
		numerologyOpts, err = loadNumerology(*numerologyPath)
		if err != nil {
			fmt.Println("Numerology missing; using defaults.")
			logger.Errorf("numerology", "load %s failed: %v", *numerologyPath, err)
		}
	}

	opts := config.Options{
		Width:      *width,
		Height:     *height,
		Palette:    paletteOpts,
		Numerology: numerologyOpts,
	}
	cfg := config.Normalize(opts)

	surface := render.NewRaster(int(cfg.Width), int(cfg.Height))
	surface.Logger = logger
	render.RenderHelix(surface, opts)
	logger.Infof("main", "rendered %dx%d canvas", int(cfg.Width), int(cfg.Height))

	if *caption != "" {
		face := render.LoadCaptionFace(*fontPath, *fontSize, logger)
		render.DrawCaption(surface.Image(), *caption, cfg.Palette.Ink, face)
	}

	if err := writePNG(*outPath, surface); err != nil {
		fmt.Println("png write error:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", *outPath)

	if *toFB {
		if err := render.BlitFramebuffer(*fbDevice, surface.Image()); err != nil {
			fmt.Println("framebuffer error:", err)
			os.Exit(1)
		}
	}
}

// paletteFile is the on-disk palette shape used by the original data file:
// {"bg": "#..", "ink": "#..", "layers": ["#..", ...]}.
type paletteFile struct {
	BG     string   `json:"bg"`
	Ink    string   `json:"ink"`
	Layers []string `json:"layers"`
}

func loadPalette(path string) (*config.PaletteOptions, error) {
	if path == "" {
		return nil, fmt.Errorf("no palette path")
	}
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

func loadNumerology(path string) (*config.NumerologyOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := &config.NumerologyOptions{}
	for key, value := range raw {
		switch key {
		case "THREE":
			out.Three = value
		case "SEVEN":
			out.Seven = value
		case "NINE":
			out.Nine = value
		case "ELEVEN":
			out.Eleven = value
		case "TWENTYTWO":
			out.TwentyTwo = value
		case "THIRTYTHREE":
			out.ThirtyThree = value
		case "NINETYNINE":
			out.NinetyNine = value
		case "ONEFORTYFOUR":
			out.OneFortyFour = value
		}
	}
	return out, nil
}

func writePNG(path string, surface *render.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, surface.Image())
}
