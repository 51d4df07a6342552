package types

func (s *Array) Len() int           { return len(s.Data) }
func (s *Array) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }
func (s *Array) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }

// Clone returns a copy of s with its own backing array.
func (s Slice) Clone() Slice {
	c := make(Slice, len(s))
	copy(c, s)
	return c
}

// Equal reports whether s and t hold equal elements in the same order
// under cmp.
func (s Slice) Equal(t Slice, cmp Comparator) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if cmp(s[i], t[i]) != 0 {
			return false
		}
	}
	return true
}
