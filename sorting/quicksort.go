package sorting

import (
	"github.com/kabu1204/go-nlogn/types"
)

// QuickSort returns a new Slice holding the elements of s in non-decreasing
// order under cmp. The middle element is the pivot; elements are split into
// less-than, equal and greater-than groups, the outer two are sorted
// recursively and the three are concatenated. Average O(n log n); inputs
// that keep handing the middle index a bad pivot degrade to O(n²), a known
// limitation of this pivot rule.
func QuickSort(s types.Slice, cmp types.Comparator) types.Slice {
	if len(s) <= 1 {
		return s
	}
	pivot := s[len(s)/2]
	var less, equal, greater types.Slice
	for _, e := range s {
		switch c := cmp(e, pivot); {
		case c < 0:
			less = append(less, e)
		case c > 0:
			greater = append(greater, e)
		default:
			equal = append(equal, e)
		}
	}
	result := make(types.Slice, 0, len(s))
	result = append(result, QuickSort(less, cmp)...)
	result = append(result, equal...)
	return append(result, QuickSort(greater, cmp)...)
}
