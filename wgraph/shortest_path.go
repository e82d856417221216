package wgraph

import (
	"fmt"
	"math"
	"slices"
)

// ShortestPath returns the edges of a minimum-weight walk from start to end, in
// order: the first edge leaves start, the last edge reaches end.
//
// Validation order:
//  1. start or end nil          → ErrInvalidArgument (ErrNilVertex)
//  2. start or end not a vertex → ErrInvalidArgument (ErrUnknownVertex)
//  3. start == end              → empty slice, nil error
//
// If end is unreachable from start the search drains its queue and returns ErrNoPath.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func (g *Graph[V, E]) ShortestPath(start, end V) ([]E, error) {
	// 1) Validate endpoints.
	if isNil(start) {
		return nil, invalid(ErrNilVertex, "start")
	}
	if isNil(end) {
		return nil, invalid(ErrNilVertex, "end")
	}
	if !g.HasVertex(start) {
		return nil, invalid(ErrUnknownVertex, "start %v", start)
	}
	if !g.HasVertex(end) {
		return nil, invalid(ErrUnknownVertex, "end %v", end)
	}
	if start == end {
		return []E{}, nil
	}

	// 2) Run the search; it leaves a predecessor chain from end back to start.
	s := newSearch(g, start)
	if !s.run(end) {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, end)
	}

	// 3) Rebuild the walk end → start, then flip it.
	return s.path(end), nil
}

// label is the per-vertex record: best known distance and the vertex it was
// reached from.
type label[V comparable] struct {
	dist float64
	pred V
}

// queued is a heap entry: a snapshot of a vertex's tentative distance when it
// was pushed. seq breaks distance ties in push order.
type queued[V comparable] struct {
	vertex V
	dist   float64
	seq    uint64
}

// search holds the mutable state of one ShortestPath call.
type search[V comparable, E Edge[V]] struct {
	g         *Graph[V, E]
	start     V
	labels    map[V]*label[V]
	unsettled map[V]struct{}
	pq        *minQueue[queued[V]]
	seq       uint64
}

// newSearch initializes every label to +Inf, marks every vertex unsettled and
// seeds the queue with start at distance 0.
func newSearch[V comparable, E Edge[V]](g *Graph[V, E], start V) *search[V, E] {
	n := len(g.vertices)
	s := &search[V, E]{
		g:         g,
		start:     start,
		labels:    make(map[V]*label[V], n),
		unsettled: make(map[V]struct{}, n),
		pq: newMinQueue(func(a, b queued[V]) bool {
			if a.dist != b.dist {
				return a.dist < b.dist
			}
			return a.seq < b.seq
		}, n),
	}
	for _, v := range g.vertices {
		s.labels[v] = &label[V]{dist: math.Inf(1)}
		s.unsettled[v] = struct{}{}
	}
	s.labels[start].dist = 0
	s.push(start, 0)

	return s
}

// push queues a snapshot of v at distance d.
func (s *search[V, E]) push(v V, d float64) {
	s.pq.Insert(queued[V]{vertex: v, dist: d, seq: s.seq})
	s.seq++
}

// run settles vertices in distance order until target is popped (true) or the
// queue is empty (false).
func (s *search[V, E]) run(target V) bool {
	for !s.pq.IsEmpty() {
		item := s.pq.RemoveMin()
		u := item.vertex

		// Duplicate entries are expected; only the first pop of a vertex counts.
		if _, open := s.unsettled[u]; !open {
			continue
		}
		if u == target {
			return true
		}

		du := s.labels[u].dist
		for _, e := range s.g.adjacency[u] {
			v := e.OtherVertex(u)
			if _, open := s.unsettled[v]; !open {
				continue
			}
			lv := s.labels[v]
			if nd := du + e.Weight(); nd < lv.dist {
				lv.dist = nd
				lv.pred = u
				s.push(v, nd)
			}
		}
		delete(s.unsettled, u)
	}

	return false
}

// path walks predecessors from end to start. For each hop it scans the current
// vertex's incidence list for an edge leading to the predecessor; among parallel
// candidates the lightest one is the edge the search relaxed.
func (s *search[V, E]) path(end V) []E {
	var out []E
	cur := end
	for cur != s.start {
		pred := s.labels[cur].pred

		var (
			best  E
			found bool
		)
		for _, e := range s.g.adjacency[cur] {
			if e.OtherVertex(cur) != pred {
				continue
			}
			if !found || e.Weight() < best.Weight() {
				best, found = e, true
			}
		}
		out = append(out, best)
		cur = pred
	}
	slices.Reverse(out)

	return out
}
