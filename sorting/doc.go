// Package sorting collects the classic O(n log n) comparison sorts.
//
// MergeSort, HeapSort and QuickSort all reach linearithmic time the same
// way: the input is divided in half repeatedly, giving log n levels, and
// each level does a linear amount of comparison work. TreeSort reaches the
// same bound through a balanced ordered map instead. HeapSort reorders its
// input in place; the others return a new Slice.
package sorting
