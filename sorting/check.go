package sorting

import (
	"github.com/kabu1204/go-nlogn/optional"
	"github.com/kabu1204/go-nlogn/types"
)

// IsSorted reports whether s is in non-decreasing order under cmp.
func IsSorted(s types.Slice, cmp types.Comparator) bool {
	it := s.Iterator()
	prev, ok := it.Next()
	if !ok {
		return true
	}
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if cmp(*e, *prev) < 0 {
			return false
		}
		prev = e
	}
	return true
}

// Min returns the smallest element of s under cmp, or None for the empty
// Slice.
func Min(s types.Slice, cmp types.Comparator) optional.Optional {
	if len(s) == 0 {
		return optional.None{}
	}
	best := s[0]
	for _, e := range s[1:] {
		if cmp(e, best) < 0 {
			best = e
		}
	}
	return optional.Some{Value: best}
}

// Max returns the largest element of s under cmp, or None for the empty
// Slice.
func Max(s types.Slice, cmp types.Comparator) optional.Optional {
	if len(s) == 0 {
		return optional.None{}
	}
	best := s[0]
	for _, e := range s[1:] {
		if cmp(e, best) > 0 {
			best = e
		}
	}
	return optional.Some{Value: best}
}
