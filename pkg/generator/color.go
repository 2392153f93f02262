// color.go — Sample colours: random selection, formatting and parsing.
package generator

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"
)

// RGB is an opaque text colour.
type RGB struct {
	R, G, B uint8
}

// String formats the colour as "rgb(R, G, B)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements color.Color with full alpha.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// nearWhiteGray reports a gray light enough to vanish on a pale background.
func (c RGB) nearWhiteGray() bool {
	return c.R == c.G && c.G == c.B && c.R&c.G&c.B > 200
}

// randomRGB draws channels uniformly until the result is not a near-white gray.
func randomRGB(rng *rand.Rand) RGB {
	for {
		c := RGB{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
		}
		if !c.nearWhiteGray() {
			return c
		}
	}
}

// ParseColor parses "#rrggbb", "rgb(r, g, b)" or "random". A random colour
// comes from a freshly seeded source and follows the same near-white rule as
// RandomRGB.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, "random") {
		return randomRGB(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))), nil
	}

	if inner, ok := strings.CutPrefix(s, "rgb("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return RGB{}, fmt.Errorf("invalid color %q: missing closing parenthesis", s)
		}
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("invalid color %q: expected 3 channels", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("invalid channel %d in %q: %w", i, s, err)
			}
			ch[i] = uint8(v)
		}
		return RGB{ch[0], ch[1], ch[2]}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 6-char hex or rgb(r, g, b)", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return RGB{uint8(rv), uint8(gv), uint8(bv)}, nil
}
