package types

import (
	"reflect"
)

// From lifts any concrete slice (e.g. []int, []string) into a Slice.
// Non-slice input is a caller contract violation and yields nil.
func From(elems interface{}) Slice {
	if elems == nil || reflect.TypeOf(elems).Kind() != reflect.Slice {
		return nil
	}
	valueOfElems := reflect.ValueOf(elems)
	n := valueOfElems.Len()
	slice := make(Slice, 0, n)
	for i := 0; i < n; i++ {
		slice = append(slice, valueOfElems.Index(i).Interface())
	}
	return slice
}
