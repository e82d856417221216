package disjointset

import "errors"

// Sentinel errors returned by DisjointSet operations.
var (
	// ErrInvalidArgument is the umbrella error for every rejected input.
	// Detailed sentinels below are always reported together with it.
	ErrInvalidArgument = errors.New("disjointset: invalid argument")

	// ErrDuplicateItem indicates MakeSet was called for an already registered item.
	ErrDuplicateItem = errors.New("disjointset: item already registered")

	// ErrUnknownItem indicates FindSet or Union referenced an item never passed to MakeSet.
	ErrUnknownItem = errors.New("disjointset: item not registered")
)

// rootOf encodes a root slot holding the given rank.
func rootOf(rank int) int { return -(rank + 1) }

// rankOf decodes the rank stored in a root slot.
func rankOf(slot int) int { return -slot - 1 }
