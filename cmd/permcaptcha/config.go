package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xob0t/permcaptcha/pkg/generator"
)

// configFlags are the generator settings shared by generate and test-fonts.
type configFlags struct {
	base       string
	fontDir    string
	sizes      []float64
	output     string
	x          []int
	y          []int
	exclude    []int
	seed       uint64
	format     string
	background string
	width      int
	height     int

	progressEvery int
}

func (c *configFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.base, "base", "", "Base image drawn under every label")
	fs.StringVar(&c.fontDir, "fonts", "", "Directory of font files (every entry is used)")
	fs.Float64SliceVar(&c.sizes, "sizes", []float64{32}, "Font sizes in points")
	fs.StringVarP(&c.output, "output", "o", ".", "Base output directory")
	fs.IntSliceVar(&c.x, "x", []int{0, 0}, "Inclusive x range for the text's left edge: min,max")
	fs.IntSliceVar(&c.y, "y", []int{0, 0}, "Inclusive y range for the text's top edge: min,max")
	fs.IntSliceVar(&c.exclude, "exclude-fonts", nil, "Font indices to skip (see 'permcaptcha fonts')")
	fs.Uint64Var(&c.seed, "seed", 0, "Seed for reproducible output (default: random)")
	fs.StringVar(&c.format, "format", generator.DefaultFormat, "Output extension: .png, .jpg, .gif, .bmp, .tiff")
	fs.StringVar(&c.background, "background", "", "Solid background colour when --base is empty: #rrggbb, rgb(r, g, b) or random")
	fs.IntVar(&c.width, "width", 160, "Background width in pixels (with --background)")
	fs.IntVar(&c.height, "height", 60, "Background height in pixels (with --background)")
}

// build turns the flags into a Generator with excluded fonts removed.
func (c *configFlags) build(cmd *cobra.Command, logger hclog.Logger) (*generator.Generator, error) {
	if c.fontDir == "" {
		return nil, fmt.Errorf("--fonts is required")
	}
	if c.base == "" && c.background == "" {
		return nil, fmt.Errorf("either --base or --background is required")
	}

	xr, err := parseRange("x", c.x)
	if err != nil {
		return nil, err
	}
	yr, err := parseRange("y", c.y)
	if err != nil {
		return nil, err
	}

	cfg := generator.Config{
		BaseImage: c.base,
		FontDir:   c.fontDir,
		FontSizes: c.sizes,
		OutputDir: c.output,
		XRange:    xr,
		YRange:    yr,
		Format:    c.format,
		Logger:    logger,

		ProgressEvery: c.progressEvery,
	}

	if c.base == "" {
		col, err := generator.ParseColor(c.background)
		if err != nil {
			return nil, fmt.Errorf("--background: %w", err)
		}
		cfg.Background = &generator.Background{Width: c.width, Height: c.height, Color: col}
	}

	if cmd.Flags().Changed("seed") {
		seed := c.seed
		cfg.Seed = &seed
	}

	gen, err := generator.New(cfg)
	if err != nil {
		return nil, err
	}

	if len(c.exclude) > 0 {
		if err := gen.RemoveFonts(c.exclude); err != nil {
			return nil, fmt.Errorf("--exclude-fonts: %w", err)
		}
		logger.Debug("fonts excluded", "indices", c.exclude, "remaining", len(gen.Fonts()))
	}

	return gen, nil
}

func parseRange(name string, v []int) (generator.Range, error) {
	if len(v) != 2 {
		return generator.Range{}, fmt.Errorf("--%s expects min,max, got %d values", name, len(v))
	}
	return generator.Range{Min: v[0], Max: v[1]}, nil
}
