// permcaptcha — Labeled captcha dataset generation.
//
// Usage:
//
//	permcaptcha generate --base <img> --fonts <dir> --output <dir> --alphabet <chars> --length <r> [options]
//	permcaptcha test-fonts --base <img> --fonts <dir> --output <dir> [options]
//	permcaptcha fonts --fonts <dir>
//	permcaptcha version
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xob0t/permcaptcha/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

type globalFlags struct {
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "permcaptcha",
		Short: "Generate labeled captcha images from alphabet permutations",
		Long: `permcaptcha draws every permutation of an alphabet onto copies of a base
image and writes each one as <label>.png, so the file name is the label.

Each sample gets a random font from the font directory, a random size from
--sizes, a random position inside --x/--y and a random colour.

Examples:
  # Two passes over all 4-digit permutations
  permcaptcha generate --base bg.png --fonts fonts/ --sizes 28,32,36 \
    --x 0,20 --y 0,10 --alphabet 0123456789 --length 4 --iterations 2 -o out/

  # Render a probe with every font and size for review
  permcaptcha test-fonts --base bg.png --fonts fonts/ --sizes 28,32,36 -o out/

  # Show font indices for --exclude-fonts
  permcaptcha fonts --fonts fonts/`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newGenerateCmd(&g),
		newTestFontsCmd(&g),
		newFontsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// logger builds the command logger; --quiet wins over --verbose.
func (g *globalFlags) logger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if g.verbose {
		level = hclog.Debug
	}
	if g.quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "permcaptcha",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
