package basin

import (
	"fmt"
	"math"
	"sort"
)

// LargestProduct multiplies the n largest values of sizes.
// sizes is not modified. Ties are interchangeable, so no stable sort is used.
// Returns ErrOptionViolation if n < 1 or a size is negative, ErrTooFewBasins
// if len(sizes) < n, and ErrProductOverflow if the product exceeds math.MaxInt.
// Complexity: O(k log k) for k sizes.
func LargestProduct(sizes []int, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: rank count must be positive (%d)", ErrOptionViolation, n)
	}
	if len(sizes) < n {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrTooFewBasins, len(sizes), n)
	}
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	if sorted[len(sorted)-1] < 0 {
		return 0, fmt.Errorf("%w: negative size %d", ErrOptionViolation, sorted[len(sorted)-1])
	}

	product := 1
	for _, s := range sorted[:n] {
		if s > 0 && product > math.MaxInt/s {
			return 0, fmt.Errorf("%w: top %d of %d sizes", ErrProductOverflow, n, len(sizes))
		}
		product *= s
	}
	return product, nil
}

// Score is the product of the DefaultTop largest basin sizes.
func Score(basins []Basin) (int, error) {
	return LargestProduct(Sizes(basins), DefaultTop)
}
