// batch.go — Batch and font-test drivers. Both stop at the first error and
// leave whatever was already written on disk.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/xob0t/permcaptcha/pkg/permute"
)

// DefaultProbe exercises every digit curve a numeric captcha can contain.
const DefaultProbe = "012374"

// Stats describes what a batch produced.
type Stats struct {
	Rendered int      // Images written
	Total    int      // Images the batch was expected to write
	Dirs     []string // Iteration directories created or reused
}

// GenerateBatch renders every r-length permutation of alphabet once per
// iteration, into <output>/<i>/<label><ext>. Existing directories are reused
// and same-named files overwritten. r must be at least 1, since the only
// zero-length permutation is the empty label; nothing is created otherwise.
func (g *Generator) GenerateBatch(iteration int, alphabet string, r int) (Stats, error) {
	if r < 1 {
		return Stats{}, fmt.Errorf("permutation length must be at least 1, got %d", r)
	}
	if err := validateAlphabet(alphabet); err != nil {
		return Stats{}, err
	}

	perIteration := permute.Count(len([]rune(alphabet)), r)
	stats := Stats{Total: permute.MulSat(iteration, perIteration)}

	g.logger.Info("starting batch",
		"iterations", iteration,
		"per_iteration", humanize.Comma(int64(perIteration)),
		"total", humanize.Comma(int64(stats.Total)),
		"output", g.outputDir)

	for i := range iteration {
		dir := filepath.Join(g.outputDir, strconv.Itoa(i))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return stats, fmt.Errorf("create %s: %w", dir, err)
		}
		stats.Dirs = append(stats.Dirs, dir)

		for label := range g.Permutations(alphabet, r) {
			if err := g.Render(dir, label); err != nil {
				return stats, fmt.Errorf("iteration %d, label %q: %w", i, label, err)
			}
			stats.Rendered++

			if stats.Rendered%g.progressEvery == 0 {
				g.logger.Info("progress",
					"rendered", humanize.Comma(int64(stats.Rendered)),
					"remaining", fmt.Sprintf("%.4f", remaining(stats.Rendered, stats.Total)))
			}
		}
	}

	g.logger.Info("batch complete", "rendered", humanize.Comma(int64(stats.Rendered)), "dirs", len(stats.Dirs))
	return stats, nil
}

// remaining is the fraction of the batch still to render.
func remaining(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return 1 - float64(done)/float64(total)
}

// TestFonts renders probe with every active font at every configured size,
// into <output>/test_font<n>/<probe><m><ext>, for visual review.
func (g *Generator) TestFonts(probe string) error {
	if probe == "" {
		probe = DefaultProbe
	}

	fonts := slices.Clone(g.fonts)
	if len(fonts) == 0 {
		g.logger.Warn("no fonts to test")
	}

	for n, fontPath := range fonts {
		dir := filepath.Join(g.outputDir, "test_font"+strconv.Itoa(n))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}

		for m, size := range g.sizes {
			name := probe + strconv.Itoa(m)
			if err := g.RenderWith(dir, name, probe, fontPath, size); err != nil {
				return fmt.Errorf("font %d (%s) size %v: %w", n, fontPath, size, err)
			}
		}
		g.logger.Debug("font tested", "index", n, "path", fontPath, "sizes", len(g.sizes))
	}

	return nil
}
