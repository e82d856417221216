// Package disjointset provides a union-find (disjoint-set) structure over arbitrary
// comparable items, with path compression and union by rank.
//
// # What and why
//
//   - A DisjointSet partitions registered items into non-overlapping sets and answers
//     "are these two items in the same set?" in near-constant amortized time.
//   - It is the cycle detector behind Kruskal's minimum spanning tree (see package wgraph).
//
// # Representation
//
// Every item is mapped to a dense index 0..n-1 in registration order. A single int
// slice (pointers) stores the forest:
//
//	pointers[i] >= 0  → parent index of i
//	pointers[i] <  0  → i is a root; its rank is -(pointers[i]+1)
//
// A fresh singleton is therefore stored as -1 (rank 0).
//
// # Operations
//
//   - MakeSet(item)         register a singleton; duplicate → ErrInvalidArgument.
//   - FindSet(item)         root index; compresses the walked path onto the root.
//   - Union(item1, item2)   merge by rank; equal roots are a no-op.
//
// Two items are in the same set iff FindSet returns equal values for both. The numeric
// value of a root is only meaningful for such comparisons.
//
// # Complexity
//
//   - Time:  O(α(n)) amortized per FindSet/Union, O(1) amortized per MakeSet.
//   - Space: O(n).
//
// A DisjointSet is not safe for concurrent use.
package disjointset
