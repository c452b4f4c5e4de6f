package layers

import (
	"math"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/geometry"
)

// Helix computes two phase-opposed sinusoidal strands plus straight rungs
// between them, returned as separate groups so the compositor can style
// them independently. Strand sample count comes from THIRTYTHREE, rung
// count from TWENTYTWO; strands and rungs share the same parametric
// functions so the lattice stays consistent at any sampling density.
func Helix(cfg config.Config) (strands, rungs []geometry.Polyline) {
	num := cfg.Numerology
	samples := int(num.ThirtyThree)
	rungCount := int(num.TwentyTwo)

	if samples >= 2 {
		strandA := make([]geometry.Point, samples)
		strandB := make([]geometry.Point, samples)
		for i := 0; i < samples; i++ {
			t := float64(i) / float64(samples-1)
			strandA[i] = helixPoint(cfg, t, 0)
			strandB[i] = helixPoint(cfg, t, math.Pi)
		}
		strands = []geometry.Polyline{{Points: strandA}, {Points: strandB}}
	}

	for j := 0; j < rungCount; j++ {
		t := 0.0
		if rungCount > 1 {
			t = float64(j) / float64(rungCount-1)
		}
		rungs = append(rungs, geometry.Segment(helixPoint(cfg, t, 0), helixPoint(cfg, t, math.Pi)))
	}
	return strands, rungs
}

// helixPoint evaluates a strand at parameter t in [0,1]. The y coordinate
// advances linearly down the vertical span; x swings by the sine amplitude.
func helixPoint(cfg config.Config, t, phase float64) geometry.Point {
	num := cfg.Numerology
	margin := cfg.Height / num.Eleven
	span := cfg.Height - 2*margin
	amplitude := cfg.Width / num.Nine
	turns := num.Three

	return geometry.Point{
		X: cfg.Width/2 + amplitude*math.Sin(turns*2*math.Pi*t+phase),
		Y: margin + span*t,
	}
}
