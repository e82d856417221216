package maze

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for maze construction and carving.
var (
	// ErrBadSize indicates a grid dimension below 1.
	ErrBadSize = errors.New("maze: rows and cols must be ≥ 1")

	// ErrNilMaze indicates a nil *Maze passed to a carver or solver.
	ErrNilMaze = errors.New("maze: nil maze")

	// ErrBadDistance indicates a negative or NaN original wall distance.
	ErrBadDistance = errors.New("maze: wall distance must be ≥ 0")
)

// DefaultWallDistance is the original distance of every grid wall unless
// WithWallDistance overrides it.
const DefaultWallDistance float64 = 1

// Room is a cell of the maze. Rooms compare by value.
type Room struct {
	ID  int
	Row int
	Col int
}

// String renders the room as "#id(row,col)".
func (r Room) String() string { return fmt.Sprintf("#%d(%d,%d)", r.ID, r.Row, r.Col) }

// Wall separates two rooms. It carries a fixed original distance and a mutable
// current distance used as the edge weight.
type Wall struct {
	room1, room2 Room
	original     float64
	distance     float64
}

// NewWall returns a wall between r1 and r2 whose current and original distance is d.
func NewWall(r1, r2 Room, d float64) *Wall {
	return &Wall{room1: r1, room2: r2, original: d, distance: d}
}

// Room1 returns the first room.
func (w *Wall) Room1() Room { return w.room1 }

// Room2 returns the second room.
func (w *Wall) Room2() Room { return w.room2 }

// Distance returns the current distance.
func (w *Wall) Distance() float64 { return w.distance }

// OriginalDistance returns the distance the wall was created with.
func (w *Wall) OriginalDistance() float64 { return w.original }

// SetDistance overrides the current distance.
func (w *Wall) SetDistance(d float64) { w.distance = d }

// ResetDistanceToOriginal restores the current distance to the original one.
func (w *Wall) ResetDistanceToOriginal() { w.distance = w.original }

// Vertex1 implements wgraph.Edge.
func (w *Wall) Vertex1() Room { return w.room1 }

// Vertex2 implements wgraph.Edge.
func (w *Wall) Vertex2() Room { return w.room2 }

// Weight implements wgraph.Edge; it is the current distance.
func (w *Wall) Weight() float64 { return w.distance }

// OtherVertex implements wgraph.Edge.
func (w *Wall) OtherVertex(r Room) Room {
	if r == w.room1 {
		return w.room2
	}
	return w.room1
}

// String renders the wall as "room1|room2".
func (w *Wall) String() string { return w.room1.String() + "|" + w.room2.String() }

// Maze is a set of rooms and the walls between them. Rows and Cols are zero for
// mazes not built by NewGrid.
type Maze struct {
	ID    uuid.UUID
	Rows  int
	Cols  int
	Rooms []Room
	Walls []*Wall
}

// New wraps rooms and walls into a Maze with a fresh ID. The slices are used as is.
func New(rooms []Room, walls []*Wall) *Maze {
	return &Maze{ID: uuid.New(), Rooms: rooms, Walls: walls}
}

// RoomAt returns the room at (row, col) of a grid maze.
func (m *Maze) RoomAt(row, col int) (Room, bool) {
	if row < 0 || col < 0 || row >= m.Rows || col >= m.Cols {
		return Room{}, false
	}
	idx := row*m.Cols + col
	if idx >= len(m.Rooms) {
		return Room{}, false
	}

	return m.Rooms[idx], true
}

// Distances snapshots the current distance of every wall, in m.Walls order.
func (m *Maze) Distances() []float64 {
	out := make([]float64, len(m.Walls))
	for i, w := range m.Walls {
		if w != nil {
			out[i] = w.distance
		}
	}

	return out
}
