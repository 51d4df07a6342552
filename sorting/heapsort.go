package sorting

import (
	"github.com/kabu1204/go-nlogn/types"
)

// HeapSort reorders s in place into non-decreasing order under cmp. The
// Slice is first arranged into a binary max-heap (parent at i, children at
// 2i+1 and 2i+2), then the maximum is repeatedly swapped to the back and
// the heap shrunk by one.
func HeapSort(s types.Slice, cmp types.Comparator) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, cmp, i, n)
	}
	for boundary := n - 1; boundary >= 1; boundary-- {
		s[0], s[boundary] = s[boundary], s[0]
		siftDown(s, cmp, 0, boundary)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// considering only the first size elements of s.
func siftDown(s types.Slice, cmp types.Comparator, root, size int) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < size && cmp(s[l], s[largest]) > 0 {
			largest = l
		}
		if r < size && cmp(s[r], s[largest]) > 0 {
			largest = r
		}
		if largest == root {
			return
		}
		s[root], s[largest] = s[largest], s[root]
		root = largest
	}
}
