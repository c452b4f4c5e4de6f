// Package layers holds the four pure geometry generators of the composition.
// Each generator consumes a normalized config and returns draw primitives;
// none of them touches a drawing surface or keeps state between calls.
package layers

import (
	"math"

	"github.com/lightfold/cosmichelix/internal/config"
	"github.com/lightfold/cosmichelix/internal/geometry"
)

// Vesica lays out a grid of vertically offset circle pairs. Column and row
// counts come from the NINE and SEVEN constants; each pair is separated by
// one radius so the circles overlap in a lens without containing each other.
func Vesica(cfg config.Config) []geometry.Circle {
	num := cfg.Numerology
	columns := int(num.Nine)
	rows := int(num.Seven)
	if columns < 1 || rows < 1 {
		return nil
	}

	stepX := cfg.Width / float64(columns+1)
	stepY := cfg.Height / float64(rows+1)
	radius := math.Min(stepX, stepY) * num.Three / num.Seven
	offset := radius / 2

	circles := make([]geometry.Circle, 0, 2*columns*rows)
	for row := 1; row <= rows; row++ {
		for col := 1; col <= columns; col++ {
			cx := float64(col) * stepX
			cy := float64(row) * stepY
			circles = append(circles,
				geometry.Circle{CenterX: cx, CenterY: cy - offset, Radius: radius},
				geometry.Circle{CenterX: cx, CenterY: cy + offset, Radius: radius},
			)
		}
	}
	return circles
}
