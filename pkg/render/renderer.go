// renderer.go - Base image loading, text drawing and image output.
// Images are decoded and encoded with github.com/disintegration/imaging; text is
// drawn with a font.Drawer positioned so the given point is the text's top-left.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	_ "golang.org/x/image/webp" // Register WebP format
)

// Renderer draws labels onto copies of a base image.
type Renderer struct {
	fontManager *FontManager
	dpi         float64
	sources     map[string]image.Image
}

// NewRenderer creates a renderer with its own font cache.
func NewRenderer() *Renderer {
	return &Renderer{
		fontManager: NewFontManager(),
		dpi:         DefaultDPI,
		sources:     make(map[string]image.Image),
	}
}

// Canvas returns a fresh, drawable copy of the image at path. The decoded
// source is kept in memory, so the file is read once and never written.
func (r *Renderer) Canvas(path string) (*image.NRGBA, error) {
	src, ok := r.sources[path]
	if !ok {
		img, err := LoadImage(path)
		if err != nil {
			return nil, err
		}
		r.sources[path] = img
		src = img
	}
	return imaging.Clone(src), nil
}

// DrawLabel draws text with the font at fontPath and the given size. at is the
// top-left corner of the text box, matching how captcha positions are chosen.
func (r *Renderer) DrawLabel(dst draw.Image, text, fontPath string, size float64, at image.Point, col color.Color) error {
	face, err := r.fontManager.GetFace(fontPath, size, r.dpi)
	if err != nil {
		return err
	}
	defer face.Close()

	drawString(dst, text, at, col, face)
	return nil
}

// drawString draws text with its top-left corner at the specified position.
func drawString(dst draw.Image, text string, at image.Point, col color.Color, face font.Face) {
	ascent := face.Metrics().Ascent
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(at.X), Y: fixed.I(at.Y) + ascent},
	}
	drawer.DrawString(text)
}

// LoadImage decodes the image file at path.
// Supported formats: JPEG, PNG, GIF, BMP, TIFF, WebP.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return img, nil
}

// Solid creates a uniform image, used when no base image is configured.
func Solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// Save encodes img to path. The format is inferred from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// CheckFormat reports whether ext (".png", ".jpg", ...) can be written by Save.
func CheckFormat(ext string) error {
	if _, err := imaging.FormatFromFilename("x" + ext); err != nil {
		return fmt.Errorf("unsupported format %q: %w", ext, err)
	}
	return nil
}

// OutputPath joins dir and name with the output extension.
func OutputPath(dir, name, ext string) string {
	return filepath.Join(dir, name+ext)
}
