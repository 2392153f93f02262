// Package permute enumerates ordered selections of distinct positions from a sequence.
package permute

import (
	"iter"
	"math"
	"strings"
)

// Permutations returns a lazy sequence of every r-length permutation of items.
// Positions, not values, are distinct: repeated values produce repeated tuples.
// Tuples come in lexicographic order of input positions. The yielded slice is
// freshly allocated for every tuple, so callers may keep it.
//
// If r is negative or larger than len(items), the sequence is empty.
func Permutations[T any](items []T, r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if r < 0 || r > n {
			return
		}

		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		cycles := make([]int, r)
		for i := range cycles {
			cycles[i] = n - i
		}

		if !yield(pick(items, indices[:r])) {
			return
		}

		for {
			advanced := false
			for i := r - 1; i >= 0; i-- {
				cycles[i]--
				if cycles[i] == 0 {
					// Rotate indices[i:] left by one.
					first := indices[i]
					copy(indices[i:], indices[i+1:])
					indices[n-1] = first
					cycles[i] = n - i
					continue
				}

				j := n - cycles[i]
				indices[i], indices[j] = indices[j], indices[i]
				if !yield(pick(items, indices[:r])) {
					return
				}
				advanced = true
				break
			}
			if !advanced {
				return
			}
		}
	}
}

// Count returns n!/(n-r)!, the number of r-length permutations of n items.
// It returns 0 when r is negative or larger than n, and saturates at
// math.MaxInt when the true count does not fit in an int.
func Count(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	total := 1
	for i := n; i > n-r; i-- {
		total = MulSat(total, i)
	}
	return total
}

// MulSat multiplies two non-negative counts, saturating at math.MaxInt.
func MulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// Join concatenates the characters of one tuple into a label.
func Join(tuple []rune) string {
	var b strings.Builder
	for _, c := range tuple {
		b.WriteRune(c)
	}
	return b.String()
}

func pick[T any](items []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = items[idx]
	}
	return out
}
