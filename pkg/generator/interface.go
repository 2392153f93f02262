package generator

import (
	"image"
	"image/color"
	"image/draw"
)

// Renderer is the drawing backend a Generator renders samples with.
// *render.Renderer is the production implementation.
type Renderer interface {
	// Canvas returns a fresh drawable copy of the image at path.
	Canvas(path string) (*image.NRGBA, error)
	// DrawLabel draws text with its top-left corner at at.
	DrawLabel(dst draw.Image, text, fontPath string, size float64, at image.Point, col color.Color) error
}
