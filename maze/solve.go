package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegraph/wgraph"
)

// Passages returns the graph of open passages: every room of m, and one edge per
// removed wall weighted by the wall's current distance.
func Passages(m *Maze, removed []*Wall) (*wgraph.Graph[Room, *Wall], error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	g, err := wgraph.New(m.Rooms, removed)
	if err != nil {
		return nil, fmt.Errorf("maze: passages of %s: %w", m.ID, err)
	}

	return g, nil
}

// Solve returns the shortest route from one room to another through the walls
// in removed, as the ordered list of knocked-down walls crossed.
//
// Errors: ErrNilMaze; wgraph.ErrInvalidArgument for rooms or walls that do not
// belong to m; wgraph.ErrNoPath when the carved passages do not connect the rooms.
func Solve(m *Maze, removed []*Wall, from, to Room) ([]*Wall, error) {
	g, err := Passages(m, removed)
	if err != nil {
		return nil, err
	}
	route, err := g.ShortestPath(from, to)
	if err != nil {
		return nil, fmt.Errorf("maze: solve %v→%v: %w", from, to, err)
	}

	return route, nil
}

// RouteRooms lists the rooms visited by route starting at from, from included.
func RouteRooms(from Room, route []*Wall) []Room {
	rooms := make([]Room, 0, len(route)+1)
	rooms = append(rooms, from)
	cur := from
	for _, w := range route {
		cur = w.OtherVertex(cur)
		rooms = append(rooms, cur)
	}

	return rooms
}
