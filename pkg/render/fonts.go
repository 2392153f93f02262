// fonts.go - Font management for TrueType/OpenType files and collections.
// Uses golang.org/x/image/font/opentype for parsing and face creation. Parsed
// fonts are cached by path; faces are created per call and owned by the caller.
package render

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultDPI matches the point-to-pixel mapping of most imaging libraries.
const DefaultDPI = 72

// collectionTag is the header of .ttc/.otc font collections.
var collectionTag = []byte("ttcf")

// FontManager loads font files and hands out faces at requested sizes.
type FontManager struct {
	parsed map[string]*sfnt.Font
}

// NewFontManager creates an empty font manager.
func NewFontManager() *FontManager {
	return &FontManager{parsed: make(map[string]*sfnt.Font)}
}

// Font returns the parsed font at path, reading it on first use.
// For collections the first font is used.
func (fm *FontManager) Font(path string) (*sfnt.Font, error) {
	if f, ok := fm.parsed[path]; ok {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	var parsed *sfnt.Font
	if bytes.HasPrefix(data, collectionTag) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("font collection %s is empty", path)
		}
		parsed, err = coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, err)
		}
	} else {
		parsed, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", path, err)
		}
	}

	fm.parsed[path] = parsed
	return parsed, nil
}

// GetFace returns a font.Face for the font at path at the specified size.
// The caller must Close the face.
func (fm *FontManager) GetFace(path string, size float64, dpi float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	parsed, err := fm.Font(path)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return face, nil
}
