package sorting

import (
	"github.com/cornelk/hashmap"
	"github.com/kabu1204/go-nlogn/types"
)

// multiset counts element occurrences keyed by a user hash. Identity is
// whatever the hash says it is, so two elements with the same hash are the
// same element as far as the counts are concerned.
type multiset struct {
	set  *hashmap.HashMap
	hash types.IntFunction
}

func newMultiset(hash types.IntFunction) *multiset {
	return &multiset{
		set:  &hashmap.HashMap{},
		hash: hash,
	}
}

func (m *multiset) add(e interface{}) {
	h := m.hash(e)
	if c, ok := m.set.Get(h); ok {
		m.set.Set(h, c.(int)+1)
	} else {
		m.set.Set(h, 1)
	}
}

// take decrements the count for e, reporting false if none remain.
func (m *multiset) take(e interface{}) bool {
	h := m.hash(e)
	c, ok := m.set.Get(h)
	if !ok || c.(int) <= 0 {
		return false
	}
	m.set.Set(h, c.(int)-1)
	return true
}
