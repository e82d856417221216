package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazegraph/maze"
)

func BenchmarkWallsToRemove_50x50(b *testing.B) {
	m, err := maze.NewGrid(50, 50)
	if err != nil {
		b.Fatal(err)
	}
	c := maze.NewKruskalCarver(maze.WithSeed(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.WallsToRemove(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_50x50(b *testing.B) {
	m, err := maze.NewGrid(50, 50)
	if err != nil {
		b.Fatal(err)
	}
	removed, err := maze.NewKruskalCarver(maze.WithSeed(1)).WallsToRemove(m)
	if err != nil {
		b.Fatal(err)
	}
	from, to := m.Rooms[0], m.Rooms[len(m.Rooms)-1]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Solve(m, removed, from, to); err != nil {
			b.Fatal(err)
		}
	}
}
