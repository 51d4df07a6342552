package sorting

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/kabu1204/go-nlogn/types"
)

// TreeSort returns a new Slice holding the elements of s in non-decreasing
// order under cmp. Every element is put into a balanced ordered map keyed
// by value with its occurrence count, then the keys are read back in order.
// Insertion is O(log n) per element, so the whole pass is O(n log n) like
// the divide-and-conquer sorts, reached by a different route.
func TreeSort(s types.Slice, cmp types.Comparator) types.Slice {
	if len(s) <= 1 {
		return s
	}
	mp := treemap.NewWith(utils.Comparator(cmp))
	for _, e := range s {
		if c, ok := mp.Get(e); ok {
			mp.Put(e, c.(int)+1)
		} else {
			mp.Put(e, 1)
		}
	}
	result := make(types.Slice, 0, len(s))
	it := mp.Iterator()
	for it.Next() {
		e, c := it.Key(), it.Value().(int)
		for ; c > 0; c-- {
			result = append(result, e)
		}
	}
	return result
}
