package generator

import (
	"fmt"
	"image"
)

// RandomFont picks a font path uniformly from the active font list.
func (g *Generator) RandomFont() (string, error) {
	if len(g.fonts) == 0 {
		return "", ErrNoFonts
	}
	return g.fonts[g.rng.IntN(len(g.fonts))], nil
}

// RandomFontSize picks one of the configured sizes uniformly.
func (g *Generator) RandomFontSize() (float64, error) {
	if len(g.sizes) == 0 {
		return 0, ErrNoFontSizes
	}
	return g.sizes[g.rng.IntN(len(g.sizes))], nil
}

// RandomPoint picks x and y independently within the inclusive ranges.
// A range with Min > Max is rejected rather than silently swapped.
func (g *Generator) RandomPoint() (image.Point, error) {
	x, err := g.intIn(g.xRange)
	if err != nil {
		return image.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := g.intIn(g.yRange)
	if err != nil {
		return image.Point{}, fmt.Errorf("y: %w", err)
	}
	return image.Pt(x, y), nil
}

func (g *Generator) intIn(r Range) (int, error) {
	if r.Min > r.Max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
	}
	return r.Min + g.rng.IntN(r.Max-r.Min+1), nil
}

// RandomRGB returns a random colour that is never a near-white gray.
func (g *Generator) RandomRGB() RGB {
	return randomRGB(g.rng)
}

// RandomColor returns RandomRGB formatted as "rgb(R, G, B)".
func (g *Generator) RandomColor() string {
	return g.RandomRGB().String()
}
