package types

type sliceIterator struct {
	index int
	slice *Slice
}

// Iterator walks the Slice front to back. The cursor starts before the
// first element; Next advances and hands back a pointer into the Slice.
func (s *Slice) Iterator() *sliceIterator {
	return &sliceIterator{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator) hasNext() bool {
	return it.index < len(*it.slice)-1
}

func (it *sliceIterator) Next() (*interface{}, bool) {
	if it.hasNext() {
		it.index++
		return &((*it.slice)[it.index]), true
	}
	return nil, false
}

func (it *sliceIterator) Len() int {
	return len(*it.slice)
}
