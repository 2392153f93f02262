// Package generator draws permutations of an alphabet onto a base image and
// writes them out as labeled image files, the label being the file name.
//
// A Generator is not safe for concurrent use.
package generator

import (
	"fmt"
	"image"
	"iter"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/xob0t/permcaptcha/pkg/permute"
	"github.com/xob0t/permcaptcha/pkg/render"
)

const (
	// DefaultFormat is the output file extension.
	DefaultFormat = ".png"
	// DefaultProgressEvery is how many renders pass between progress reports.
	DefaultProgressEvery = 1000
)

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Background describes a solid canvas used when no base image is given.
type Background struct {
	Width  int
	Height int
	Color  RGB
}

// Config holds generator parameters. Nothing except the font directory
// listing is checked by New; bad values fail when a render needs them.
type Config struct {
	BaseImage string    // Path to the base image (any decodable format)
	FontDir   string    // Every entry in this directory is treated as a font
	FontSizes []float64 // Font sizes in points
	OutputDir string    // Base directory for iteration and font-test subdirectories
	XRange    Range     // Text left edge, inclusive
	YRange    Range     // Text top edge, inclusive

	Background    *Background  // Used when BaseImage is empty
	Format        string       // Output extension (default: ".png")
	ProgressEvery int          // Renders between progress reports (default: 1000)
	Seed          *uint64      // Fixed seed for reproducible output; nil seeds randomly
	Logger        hclog.Logger // Defaults to a null logger
	Renderer      Renderer     // Defaults to render.NewRenderer()
}

// Generator renders labeled captcha samples.
type Generator struct {
	baseImage  string
	background *Background
	discovered []string
	fonts      []string
	sizes      []float64
	outputDir  string
	xRange     Range
	yRange     Range

	format        string
	progressEvery int
	rng           *rand.Rand
	logger        hclog.Logger
	renderer      Renderer
}

// New creates a Generator, listing cfg.FontDir to build the font list.
func New(cfg Config) (*Generator, error) {
	fonts, err := discoverFonts(cfg.FontDir)
	if err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		format = DefaultFormat
	}
	if err := render.CheckFormat(format); err != nil {
		return nil, err
	}

	every := cfg.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var r Renderer = cfg.Renderer
	if r == nil {
		r = render.NewRenderer()
	}

	g := &Generator{
		baseImage:     cfg.BaseImage,
		background:    cfg.Background,
		discovered:    fonts,
		fonts:         slices.Clone(fonts),
		sizes:         slices.Clone(cfg.FontSizes),
		outputDir:     cfg.OutputDir,
		xRange:        cfg.XRange,
		yRange:        cfg.YRange,
		format:        format,
		progressEvery: every,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger:        logger.Named("generator"),
		renderer:      r,
	}

	g.logger.Debug("generator ready", "fonts", len(fonts), "sizes", len(g.sizes), "output", g.outputDir, "seed", seed)
	return g, nil
}

// discoverFonts lists dir and joins every entry name onto it. No filtering
// happens: a non-font entry fails when it is first loaded.
func discoverFonts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list font directory: %w", err)
	}

	fonts := make([]string, 0, len(entries))
	for _, e := range entries {
		fonts = append(fonts, filepath.Join(dir, e.Name()))
	}
	return fonts, nil
}

// OutputDir returns the base output directory.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// SetOutputDir changes the base output directory for later drivers.
func (g *Generator) SetOutputDir(dir string) {
	g.outputDir = dir
}

// Fonts returns a copy of the active font list.
func (g *Generator) Fonts() []string {
	return slices.Clone(g.fonts)
}

// DiscoveredFonts returns the font list as listed at construction.
// RemoveFonts indices refer to this list.
func (g *Generator) DiscoveredFonts() []string {
	return slices.Clone(g.discovered)
}

// FontSizes returns a copy of the configured sizes.
func (g *Generator) FontSizes() []float64 {
	return slices.Clone(g.sizes)
}

// RemoveFonts drops the fonts at the given indices of the discovered list from
// the active list. Indices are all resolved before anything is removed; a font
// that is already gone is skipped, so repeating a call changes nothing.
func (g *Generator) RemoveFonts(indices []int) error {
	paths := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(g.discovered) {
			return fmt.Errorf("%w: %d (have %d fonts)", ErrFontIndex, idx, len(g.discovered))
		}
		paths = append(paths, g.discovered[idx])
	}

	for _, p := range paths {
		i := slices.Index(g.fonts, p)
		if i < 0 {
			continue
		}
		g.fonts = slices.Delete(g.fonts, i, i+1)
		g.logger.Debug("font removed", "path", p)
	}
	return nil
}

// Permutations yields the label of every r-length permutation of alphabet.
func (g *Generator) Permutations(alphabet string, r int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tuple := range permute.Permutations([]rune(alphabet), r) {
			if !yield(permute.Join(tuple)) {
				return
			}
		}
	}
}

// Render draws label with a random font, size, position and colour and saves
// it as <dir>/<label><ext>.
func (g *Generator) Render(dir, label string) error {
	fontPath, err := g.RandomFont()
	if err != nil {
		return err
	}
	size, err := g.RandomFontSize()
	if err != nil {
		return err
	}
	return g.RenderWith(dir, label, label, fontPath, size)
}

// RenderWith draws label with the given font and size at a random position
// and colour, saving it as <dir>/<name><ext>.
func (g *Generator) RenderWith(dir, name, label, fontPath string, size float64) error {
	if err := ValidateLabel(name); err != nil {
		return err
	}

	canvas, err := g.canvas()
	if err != nil {
		return err
	}

	at, err := g.RandomPoint()
	if err != nil {
		return err
	}
	col := g.RandomRGB()

	if err := g.renderer.DrawLabel(canvas, label, fontPath, size, at, col); err != nil {
		return fmt.Errorf("draw %q with %s: %w", label, fontPath, err)
	}

	out := render.OutputPath(dir, name, g.format)
	if err := render.Save(canvas, out); err != nil {
		return err
	}

	g.logger.Trace("sample written", "path", out, "font", fontPath, "size", size, "at", at, "color", col.String())
	return nil
}

// canvas returns a fresh copy of the base image, or a solid background.
func (g *Generator) canvas() (*image.NRGBA, error) {
	if g.baseImage != "" {
		img, err := g.renderer.Canvas(g.baseImage)
		if err != nil {
			return nil, fmt.Errorf("open base image: %w", err)
		}
		return img, nil
	}
	if g.background != nil {
		return render.Solid(g.background.Width, g.background.Height, g.background.Color), nil
	}
	return nil, ErrNoBaseImage
}
