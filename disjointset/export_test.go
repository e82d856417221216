package disjointset

// Pointers exposes a copy of the packed parent array for white-box tests.
func (ds *DisjointSet[T]) Pointers() []int {
	out := make([]int, len(ds.pointers))
	copy(out, ds.pointers)

	return out
}
