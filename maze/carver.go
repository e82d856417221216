package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazegraph/wgraph"
)

// Carver chooses which walls of a maze to knock down.
type Carver interface {
	// WallsToRemove returns the walls whose removal connects the rooms without
	// cycles. The maze must be observably unchanged afterwards.
	WallsToRemove(m *Maze) ([]*Wall, error)
}

// CarverOption customizes a KruskalCarver.
type CarverOption func(*KruskalCarver)

// WithSeed makes the carver deterministic for the given seed.
func WithSeed(seed int64) CarverOption {
	return func(c *KruskalCarver) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) CarverOption {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *KruskalCarver) { c.rng = r }
}

// KruskalCarver carves perfect mazes from a randomized minimum spanning tree.
// It owns its RNG and is not safe for concurrent use.
type KruskalCarver struct {
	rng *rand.Rand
}

var _ Carver = (*KruskalCarver)(nil)

// NewKruskalCarver returns a carver seeded from the clock unless an option
// provides an RNG.
func NewKruskalCarver(opts ...CarverOption) *KruskalCarver {
	c := &KruskalCarver{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// WallsToRemove assigns every wall an independent random distance in [0,1),
// computes the minimum spanning tree of (rooms, walls) under those distances and
// returns its edges. Every wall is reset to its original distance before
// returning, whether or not an error occurred.
//
// Errors: ErrNilMaze, or a wgraph.ErrInvalidArgument wrap when the rooms and
// walls do not form a valid graph (nil wall, wall to an unknown room, ...).
//
// Complexity: O(W log W + W·α(R)).
func (c *KruskalCarver) WallsToRemove(m *Maze) ([]*Wall, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	// Restore must cover every exit path, so it is armed before the first mutation.
	defer resetDistances(m.Walls)
	for _, w := range m.Walls {
		if w != nil {
			w.SetDistance(c.rng.Float64())
		}
	}

	g, err := wgraph.New(m.Rooms, m.Walls)
	if err != nil {
		return nil, fmt.Errorf("maze: carve %s: %w", m.ID, err)
	}

	return g.MinimumSpanningTree(), nil
}

// resetDistances restores the original distance of every non-nil wall.
func resetDistances(walls []*Wall) {
	for _, w := range walls {
		if w != nil {
			w.ResetDistanceToOriginal()
		}
	}
}
