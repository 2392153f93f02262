package generator

import "errors"

// Configuration errors surface when a render needs the missing piece, not at construction.
var (
	ErrNoFonts      = errors.New("no fonts configured")
	ErrNoFontSizes  = errors.New("no font sizes configured")
	ErrInvalidRange = errors.New("invalid coordinate range")
	ErrFontIndex    = errors.New("font index out of range")
	ErrNoBaseImage  = errors.New("no base image or background configured")
)

// ErrInvalidLabel is returned when a label cannot be used as a file name.
var ErrInvalidLabel = errors.New("invalid label")
