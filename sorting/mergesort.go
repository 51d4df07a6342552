package sorting

import (
	"github.com/kabu1204/go-nlogn/types"
)

// MergeSort returns a new Slice holding the elements of s in non-decreasing
// order under cmp. The input is halved until single elements remain (the
// log n part), then the sorted halves are merged back with linear passes
// (the n part). A Slice of length 0 or 1 is returned as-is.
func MergeSort(s types.Slice, cmp types.Comparator) types.Slice {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	left := MergeSort(s[:mid], cmp)
	right := MergeSort(s[mid:], cmp)
	return Merge(left, right, cmp)
}

// Merge interleaves two sorted Slices into one sorted Slice in a single
// pass. Ties go to the right Slice. Once either side runs out, the rest of
// the other side is appended wholesale.
func Merge(left, right types.Slice, cmp types.Comparator) types.Slice {
	result := make(types.Slice, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) < 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}
