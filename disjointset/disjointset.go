package disjointset

import "fmt"

// DisjointSet is a union-find forest over items of type T.
// The zero value is not usable; construct with New.
type DisjointSet[T comparable] struct {
	pointers []int     // parent index, or -(rank+1) at roots
	index    map[T]int // item → dense index in registration order
}

// New returns an empty DisjointSet.
// Complexity: O(1).
func New[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{
		pointers: make([]int, 0),
		index:    make(map[T]int),
	}
}

// NewWithCapacity returns an empty DisjointSet pre-sized for n items.
// Complexity: O(n) memory reservation, O(1) time.
func NewWithCapacity[T comparable](n int) *DisjointSet[T] {
	if n < 0 {
		n = 0
	}

	return &DisjointSet[T]{
		pointers: make([]int, 0, n),
		index:    make(map[T]int, n),
	}
}

// Len returns the number of registered items.
func (ds *DisjointSet[T]) Len() int { return len(ds.pointers) }

// Contains reports whether item has been registered with MakeSet.
func (ds *DisjointSet[T]) Contains(item T) bool {
	_, ok := ds.index[item]

	return ok
}

// MakeSet registers item as a new singleton set with rank 0.
//
// Errors:
//   - ErrInvalidArgument (with ErrDuplicateItem) if item is already registered.
//
// Complexity: O(1) amortized.
func (ds *DisjointSet[T]) MakeSet(item T) error {
	if _, ok := ds.index[item]; ok {
		return invalid(ErrDuplicateItem, item)
	}
	// The next free index is the current length; slots are never reused.
	ds.index[item] = len(ds.pointers)
	ds.pointers = append(ds.pointers, rootOf(0))

	return nil
}

// FindSet returns the root index of the set containing item and compresses the
// walked path so that every visited node points directly at that root.
//
// Errors:
//   - ErrInvalidArgument (with ErrUnknownItem) if item was never registered.
//
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet[T]) FindSet(item T) (int, error) {
	id, ok := ds.index[item]
	if !ok {
		return 0, invalid(ErrUnknownItem, item)
	}

	return ds.find(id), nil
}

// Union merges the sets containing item1 and item2. The root of lower rank is
// attached under the root of higher rank; on a tie the second root goes under the
// first and the first root's rank grows by one.
//
// Errors:
//   - ErrInvalidArgument (with ErrUnknownItem) if either item was never registered.
//
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet[T]) Union(item1, item2 T) error {
	id1, ok := ds.index[item1]
	if !ok {
		return invalid(ErrUnknownItem, item1)
	}
	id2, ok := ds.index[item2]
	if !ok {
		return invalid(ErrUnknownItem, item2)
	}
	ds.link(ds.find(id1), ds.find(id2))

	return nil
}

// find runs the two-pass lookup: locate the root without mutation, then
// retarget every node on the original path to it.
func (ds *DisjointSet[T]) find(id int) int {
	root := id
	for ds.pointers[root] >= 0 {
		root = ds.pointers[root]
	}

	for ds.pointers[id] >= 0 {
		next := ds.pointers[id]
		ds.pointers[id] = root
		id = next
	}

	return root
}

// link joins two roots by rank. Slots are negative at roots, so a smaller slot
// value means a higher rank.
func (ds *DisjointSet[T]) link(root1, root2 int) {
	if root1 == root2 {
		return
	}

	slot1, slot2 := ds.pointers[root1], ds.pointers[root2]
	switch {
	case slot1 < slot2: // root1 ranks higher
		ds.pointers[root2] = root1
	case slot1 > slot2: // root2 ranks higher
		ds.pointers[root1] = root2
	default:
		ds.pointers[root2] = root1
		ds.pointers[root1] = rootOf(rankOf(slot1) + 1)
	}
}

// invalid reports detail and ErrInvalidArgument together so both satisfy errors.Is.
func invalid[T comparable](detail error, item T) error {
	return fmt.Errorf("%w: %w: %v", ErrInvalidArgument, detail, item)
}
