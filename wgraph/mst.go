package wgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mazegraph/disjointset"
)

// MinimumSpanningTree returns the edges of a minimum spanning tree using Kruskal's
// algorithm.
//
// Steps:
//  1. Stable-sort a private copy of the edge list by ascending weight; equal weights
//     keep construction order.
//  2. Register every vertex as a singleton in a fresh DisjointSet.
//  3. For each edge in order: if its endpoints lie in different sets, keep it and
//     union the sets; otherwise it would close a cycle and is dropped.
//
// All edges are scanned; there is no early exit at |V|-1.
//
// Precondition: the graph is connected. For a disconnected graph the result is a
// minimum spanning forest with fewer than |V|-1 edges. When several MSTs exist any
// one of them may be returned; compare totals, not edge identity.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func (g *Graph[V, E]) MinimumSpanningTree() []E {
	// 1) Sort a private copy; g.edges keeps construction order.
	sorted := g.Edges()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight() < sorted[j].Weight()
	})

	// 2) One singleton per vertex. New rejected duplicates, so MakeSet cannot fail.
	ds := disjointset.NewWithCapacity[V](len(g.vertices))
	for _, v := range g.vertices {
		_ = ds.MakeSet(v)
	}

	// 3) Greedy scan. Endpoints were validated by New, so lookups cannot fail.
	capacity := len(g.vertices) - 1
	if capacity < 0 {
		capacity = 0
	}
	mst := make([]E, 0, capacity)
	for _, e := range sorted {
		u, v := e.Vertex1(), e.Vertex2()
		ru, _ := ds.FindSet(u)
		rv, _ := ds.FindSet(v)
		if ru == rv {
			continue
		}
		mst = append(mst, e)
		_ = ds.Union(u, v)
	}

	return mst
}

// SpanningTree is MinimumSpanningTree with the connectivity precondition checked:
// it returns ErrDisconnected when fewer than |V|-1 edges were selected.
// An empty graph has no spanning tree and is reported as disconnected.
func (g *Graph[V, E]) SpanningTree() ([]E, error) {
	if len(g.vertices) == 0 {
		return nil, ErrDisconnected
	}
	mst := g.MinimumSpanningTree()
	if len(mst) < len(g.vertices)-1 {
		return nil, fmt.Errorf("%w: %d of %d tree edges", ErrDisconnected, len(mst), len(g.vertices)-1)
	}

	return mst, nil
}
