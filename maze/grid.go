package maze

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// GridOption customizes NewGrid.
type GridOption func(*gridConfig)

type gridConfig struct {
	distanceFn func(a, b Room) float64
	id         uuid.UUID
}

// WithWallDistance sets the original distance of each wall from its two rooms.
// Panics on nil.
func WithWallDistance(fn func(a, b Room) float64) GridOption {
	if fn == nil {
		panic("maze: WithWallDistance(nil)")
	}
	return func(c *gridConfig) { c.distanceFn = fn }
}

// WithID fixes the maze ID instead of generating a random one.
func WithID(id uuid.UUID) GridOption {
	return func(c *gridConfig) { c.id = id }
}

// NewGrid builds a rows×cols maze with every wall standing.
//
// Layout:
//   - Rooms in row-major order; room (r,c) has ID r*cols+c.
//   - For each room, a wall to the right neighbour (r,c+1) then to the bottom
//     neighbour (r+1,c) when they exist: rows*(cols-1) + (rows-1)*cols walls.
//
// Errors: ErrBadSize if rows or cols < 1, ErrBadDistance if the distance
// function yields a negative or NaN value.
//
// Complexity: O(rows·cols).
func NewGrid(rows, cols int, opts ...GridOption) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrBadSize, rows, cols)
	}

	cfg := gridConfig{
		distanceFn: func(_, _ Room) float64 { return DefaultWallDistance },
		id:         uuid.Nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}

	// 1) Rooms in row-major order.
	rooms := make([]Room, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rooms = append(rooms, Room{ID: r*cols + c, Row: r, Col: c})
		}
	}

	// 2) Right then bottom wall per room.
	walls := make([]*Wall, 0, rows*(cols-1)+(rows-1)*cols)
	addWall := func(a, b Room) error {
		d := cfg.distanceFn(a, b)
		if d < 0 || math.IsNaN(d) {
			return fmt.Errorf("%w: %v|%v distance=%g", ErrBadDistance, a, b, d)
		}
		walls = append(walls, NewWall(a, b, d))
		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := rooms[r*cols+c]
			if c+1 < cols {
				if err := addWall(here, rooms[r*cols+c+1]); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := addWall(here, rooms[(r+1)*cols+c]); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Maze{ID: cfg.id, Rows: rows, Cols: cols, Rooms: rooms, Walls: walls}, nil
}
