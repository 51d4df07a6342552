package types

type (
	// Slice is an ordered sequence of comparable elements. Elements have no
	// identity beyond value and position; what "comparable" means is the
	// Comparator's contract, not the Slice's.
	Slice []interface{}

	// Comparator imposes a strict total order: negative if e1 < e2, zero if
	// e1 == e2, positive if e1 > e2. Layout-compatible with gods
	// utils.Comparator, so the stock gods comparators convert directly.
	Comparator func(e1, e2 interface{}) int

	IntFunction func(interface{}) int
)

// Array pairs a Slice with its Comparator so the pair satisfies
// sort.Interface.
type Array struct {
	Data Slice
	Cmp  Comparator
}
