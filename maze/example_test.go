package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/maze"
)

// ExampleKruskalCarver carves a 4×4 grid: a perfect maze keeps rooms-1 passages.
func ExampleKruskalCarver() {
	m, err := maze.NewGrid(4, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	removed, err := maze.NewKruskalCarver(maze.WithSeed(42)).WallsToRemove(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("removed %d of %d walls\n", len(removed), len(m.Walls))
	// Output: removed 15 of 24 walls
}

// ExampleRender draws a 1×3 corridor with both inner walls knocked down.
func ExampleRender() {
	m, _ := maze.NewGrid(1, 3)
	fmt.Print(maze.Render(m, m.Walls, maze.DefaultRenderOptions()))
	// Output:
	// +---+---+---+
	// |           |
	// +---+---+---+
}
