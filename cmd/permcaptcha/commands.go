package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/xob0t/permcaptcha/pkg/generator"
	"github.com/xob0t/permcaptcha/pkg/permute"
)

func newGenerateCmd(g *globalFlags) *cobra.Command {
	var (
		cfg        configFlags
		alphabet   string
		length     int
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every permutation of the alphabet, once per iteration",
		Long: `Render every permutation of --length characters drawn from --alphabet.

Iteration i writes into <output>/<i>/, one <label>.png per permutation.
Existing directories are reused and same-named files overwritten. The run
stops at the first error and leaves already written files in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if alphabet == "" {
				return fmt.Errorf("--alphabet is required")
			}
			if iterations < 1 {
				return fmt.Errorf("--iterations must be at least 1")
			}

			logger := g.logger(cmd)
			gen, err := cfg.build(cmd, logger)
			if err != nil {
				return err
			}

			total := permute.MulSat(iterations, permute.Count(len([]rune(alphabet)), length))
			if !g.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Generating %s images into %s\n", humanize.Comma(int64(total)), gen.OutputDir())
			}

			stats, err := gen.GenerateBatch(iterations, alphabet, length)
			if err != nil {
				return fmt.Errorf("generate (%s of %s written): %w",
					humanize.Comma(int64(stats.Rendered)), humanize.Comma(int64(stats.Total)), err)
			}

			if !g.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Done: %s images in %d directories\n",
					humanize.Comma(int64(stats.Rendered)), len(stats.Dirs))
			}
			return nil
		},
	}

	cfg.register(cmd.Flags())
	cmd.Flags().StringVarP(&alphabet, "alphabet", "a", "", "Characters to permute")
	cmd.Flags().IntVarP(&length, "length", "r", 4, "Characters per label")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1, "Number of passes over all permutations")
	cmd.Flags().IntVar(&cfg.progressEvery, "progress-every", generator.DefaultProgressEvery, "Renders between progress reports")

	return cmd
}

func newTestFontsCmd(g *globalFlags) *cobra.Command {
	var (
		cfg   configFlags
		probe string
	)

	cmd := &cobra.Command{
		Use:   "test-fonts",
		Short: "Render a probe string with every font at every size",
		Long: `Render --probe once per font and size for visual review.

Font n of the active list writes into <output>/test_font<n>/, size m as
<probe><m>.png. Without --exclude-fonts these numbers match the indices
--exclude-fonts takes; once fonts are excluded they no longer do, so look
the indices up with 'permcaptcha fonts' before dropping fonts that render
badly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := cfg.build(cmd, g.logger(cmd))
			if err != nil {
				return err
			}

			if err := gen.TestFonts(probe); err != nil {
				return err
			}

			if !g.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Done: %d fonts × %d sizes in %s\n",
					len(gen.Fonts()), len(gen.FontSizes()), gen.OutputDir())
			}
			return nil
		},
	}

	cfg.register(cmd.Flags())
	cmd.Flags().StringVar(&probe, "probe", generator.DefaultProbe, "Text rendered with every font and size")

	return cmd
}

func newFontsCmd() *cobra.Command {
	var fontDir string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List discovered fonts with their indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fontDir == "" {
				return fmt.Errorf("--fonts is required")
			}
			gen, err := generator.New(generator.Config{FontDir: fontDir})
			if err != nil {
				return err
			}

			for i, f := range gen.DiscoveredFonts() {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", i, f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fontDir, "fonts", "", "Directory of font files")
	return cmd
}
