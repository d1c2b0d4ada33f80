package design

import (
	"math/cmplx"
	"sort"
)

// CmplxSort orders a complex array by ascending magnitude and returns the
// sorted copy together with the permutation that produces it. Ties keep
// their original order.
func CmplxSort(p []complex128) ([]complex128, []int) {
	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return cmplx.Abs(p[idx[a]]) < cmplx.Abs(p[idx[b]])
	})

	sorted := make([]complex128, len(p))
	for i, j := range idx {
		sorted[i] = p[j]
	}

	return sorted, idx
}
