package wgraph_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegraph/wgraph"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

// edge is the test edge type: string endpoints and a float weight. Pointer
// identity keeps parallel edges distinct.
type edge struct {
	a, b string
	w    float64
}

func (e *edge) Vertex1() string { return e.a }
func (e *edge) Vertex2() string { return e.b }
func (e *edge) Weight() float64 { return e.w }
func (e *edge) String() string  { return fmt.Sprintf("%s-%s(%g)", e.a, e.b, e.w) }
func (e *edge) OtherVertex(v string) string {
	if v == e.a {
		return e.b
	}
	return e.a
}

func e(a, b string, w float64) *edge { return &edge{a: a, b: b, w: w} }

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, vertices []string, edges ...*edge) *wgraph.Graph[string, *edge] {
	t.Helper()
	g, err := wgraph.New(vertices, edges)
	require.NoError(t, err)

	return g
}

// triangle is A-B(1), B-C(2), A-C(5).
func triangle(t testing.TB) *wgraph.Graph[string, *edge] {
	return mustGraph(t, []string{"A", "B", "C"},
		e("A", "B", 1), e("B", "C", 2), e("A", "C", 5))
}

// randomGraph returns n vertices "V0".."Vn-1" and m random edges with weights in
// [0,10). When connected is true a spanning chain is added first.
func randomGraph(r *rand.Rand, n, m int, connected bool) ([]string, []*edge) {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = fmt.Sprintf("V%d", i)
	}
	var es []*edge
	if connected {
		for i := 1; i < n; i++ {
			es = append(es, e(vs[r.Intn(i)], vs[i], r.Float64()*10))
		}
	}
	for len(es) < m {
		es = append(es, e(vs[r.Intn(n)], vs[r.Intn(n)], r.Float64()*10))
	}

	return vs, es
}

// floydWarshall computes all-pairs distances over the undirected edge list.
func floydWarshall(vs []string, es []*edge) map[string]map[string]float64 {
	d := make(map[string]map[string]float64, len(vs))
	for _, u := range vs {
		d[u] = make(map[string]float64, len(vs))
		for _, v := range vs {
			d[u][v] = math.Inf(1)
		}
		d[u][u] = 0
	}
	for _, x := range es {
		if x.w < d[x.a][x.b] {
			d[x.a][x.b], d[x.b][x.a] = x.w, x.w
		}
	}
	for _, k := range vs {
		for _, i := range vs {
			for _, j := range vs {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// primWeight is an O(V²) reference MST weight for a connected graph.
func primWeight(vs []string, es []*edge) float64 {
	best := make(map[string]map[string]float64, len(vs))
	for _, u := range vs {
		best[u] = map[string]float64{}
	}
	for _, x := range es {
		if x.a == x.b {
			continue
		}
		if w, ok := best[x.a][x.b]; !ok || x.w < w {
			best[x.a][x.b], best[x.b][x.a] = x.w, x.w
		}
	}
	in := map[string]bool{vs[0]: true}
	key := map[string]float64{}
	for _, v := range vs {
		key[v] = math.Inf(1)
	}
	for v, w := range best[vs[0]] {
		key[v] = w
	}
	var total float64
	for len(in) < len(vs) {
		next, nk := "", math.Inf(1)
		for _, v := range vs {
			if !in[v] && key[v] < nk {
				next, nk = v, key[v]
			}
		}
		in[next] = true
		total += nk
		for v, w := range best[next] {
			if !in[v] && w < key[v] {
				key[v] = w
			}
		}
	}

	return total
}

// requireWalk asserts that path is a contiguous walk from start to end.
func requireWalk(t *testing.T, path []*edge, start, end string) {
	t.Helper()
	cur := start
	for i, x := range path {
		require.True(t, x.a == cur || x.b == cur, "edge %d (%v) does not touch %s", i, x, cur)
		cur = x.OtherVertex(cur)
	}
	require.Equal(t, end, cur)
}
