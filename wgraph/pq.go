package wgraph

import "container/heap"

// minQueue is a binary min-heap over T ordered by less. It never deduplicates:
// callers may insert several entries for the same logical key and discard stale
// ones when they surface.
type minQueue[T any] struct {
	h entries[T]
}

// newMinQueue returns an empty queue ordered by less.
func newMinQueue[T any](less func(a, b T) bool, capacity int) *minQueue[T] {
	return &minQueue[T]{h: entries[T]{values: make([]T, 0, capacity), less: less}}
}

// Insert adds item. Complexity: O(log n).
func (q *minQueue[T]) Insert(item T) { heap.Push(&q.h, item) }

// RemoveMin pops the smallest item. The queue must not be empty.
// Complexity: O(log n).
func (q *minQueue[T]) RemoveMin() T { return heap.Pop(&q.h).(T) }

// IsEmpty reports whether the queue holds no items.
func (q *minQueue[T]) IsEmpty() bool { return len(q.h.values) == 0 }

// Len returns the number of queued items, stale ones included.
func (q *minQueue[T]) Len() int { return len(q.h.values) }

// entries implements heap.Interface for minQueue.
type entries[T any] struct {
	values []T
	less   func(a, b T) bool
}

func (h *entries[T]) Len() int           { return len(h.values) }
func (h *entries[T]) Less(i, j int) bool { return h.less(h.values[i], h.values[j]) }
func (h *entries[T]) Swap(i, j int)      { h.values[i], h.values[j] = h.values[j], h.values[i] }

func (h *entries[T]) Push(x any) { h.values = append(h.values, x.(T)) }

func (h *entries[T]) Pop() any {
	n := len(h.values)
	item := h.values[n-1]
	h.values = h.values[:n-1]

	return item
}
