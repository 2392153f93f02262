package permute

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](items []T, r int) [][]T {
	var out [][]T
	for p := range Permutations(items, r) {
		out = append(out, p)
	}
	return out
}

func TestPermutationsOrder(t *testing.T) {
	got := collect([]rune("ABC"), 2)

	labels := make([]string, len(got))
	for i, p := range got {
		labels[i] = Join(p)
	}
	assert.Equal(t, []string{"AB", "AC", "BA", "BC", "CA", "CB"}, labels)
}

func TestPermutationsCountAndDistinctPositions(t *testing.T) {
	tests := []struct {
		n, r int
	}{
		{0, 0},
		{1, 1},
		{3, 0},
		{4, 2},
		{5, 3},
		{6, 6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d,r=%d", tt.n, tt.r), func(t *testing.T) {
			positions := make([]int, tt.n)
			for i := range positions {
				positions[i] = i
			}

			got := collect(positions, tt.r)
			require.Len(t, got, Count(tt.n, tt.r))

			seen := make(map[string]struct{}, len(got))
			for _, p := range got {
				require.Len(t, p, tt.r)

				sorted := slices.Clone(p)
				slices.Sort(sorted)
				assert.Len(t, slices.Compact(sorted), tt.r, "position reused in %v", p)

				key := fmt.Sprint(p)
				_, dup := seen[key]
				assert.False(t, dup, "duplicate tuple %v", p)
				seen[key] = struct{}{}
			}
		})
	}
}

func TestPermutationsRepeatedValues(t *testing.T) {
	got := collect([]rune("AA"), 2)

	require.Len(t, got, 2)
	assert.Equal(t, "AA", Join(got[0]))
	assert.Equal(t, "AA", Join(got[1]))
}

func TestPermutationsOutOfRange(t *testing.T) {
	assert.Empty(t, collect([]rune("AB"), 3))
	assert.Empty(t, collect([]rune("AB"), -1))
	assert.Zero(t, Count(2, 3))
	assert.Zero(t, Count(2, -1))
}

func TestPermutationsRestartable(t *testing.T) {
	seq := Permutations([]rune("XYZ"), 3)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	assert.Equal(t, 6, first)
	assert.Equal(t, first, second)
}

func TestPermutationsEarlyStop(t *testing.T) {
	n := 0
	for range Permutations([]rune("ABCDE"), 3) {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, Count(0, 0))
	assert.Equal(t, 10, Count(10, 1))
	assert.Equal(t, 5040, Count(10, 4))
	assert.Equal(t, 720, Count(6, 6))
	assert.Equal(t, 2432902008176640000, Count(20, 20))
}

func TestCountSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Count(36, 13))
	assert.Equal(t, math.MaxInt, Count(62, 12))
	assert.Equal(t, math.MaxInt, Count(21, 21))
	assert.Equal(t, 0, Count(62, 63))
}

func TestMulSat(t *testing.T) {
	assert.Equal(t, 0, MulSat(0, math.MaxInt))
	assert.Equal(t, 0, MulSat(5, 0))
	assert.Equal(t, 50400, MulSat(10, 5040))
	assert.Equal(t, math.MaxInt, MulSat(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, MulSat(math.MaxInt, 2))
	assert.Equal(t, math.MaxInt, MulSat(1<<32, 1<<31))
}
