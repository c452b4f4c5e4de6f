package layers

import (
	"math"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/geometry"
)

// goldenRatio is the growth factor of the logarithmic spiral.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// Fibonacci samples a golden-ratio spiral into a single polyline. The point
// count comes from the NINETYNINE constant; fewer than two resolved points
// yields no primitive at all rather than a degenerate path.
func Fibonacci(cfg config.Config) []geometry.Polyline {
	num := cfg.Numerology
	samples := int(num.NinetyNine)
	if samples < 2 {
		return nil
	}

	sweep := num.Three * math.Pi
	base := math.Min(cfg.Width, cfg.Height) / num.TwentyTwo
	// Deliberately off-center; the spiral anchors the lower-right quadrant.
	centerX := cfg.Width * num.Seven / num.Eleven
	centerY := cfg.Height * num.Seven / num.Eleven

	points := make([]geometry.Point, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1)
		theta := t * sweep
		radius := base * math.Pow(goldenRatio, theta/(2*math.Pi))
		points[i] = geometry.Point{
			X: centerX + radius*math.Cos(theta),
			Y: centerY + radius*math.Sin(theta),
		}
	}
	return []geometry.Polyline{{Points: points}}
}
