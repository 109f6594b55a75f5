package generator

import (
	"math/rand"

	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/tiles"
)

// LineWalkerGenerator starts from a uniform board and paints straight
// strokes of one type in random directions, with branching probability
type LineWalkerGenerator struct{}

// Walk parameters
const (
	cellsPerStroke    = 6 // one stroke per this many cells
	minStroke         = 2
	maxStroke         = 5
	branchProbability = 0.3
)

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a board with stroke-shaped regions
func (g *LineWalkerGenerator) Generate(grid *world.Grid, palette tiles.Palette, rng *rand.Rand) (*tiles.Board, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	types := make([]tiles.Type, grid.Size())
	for i := range types {
		types[i] = palette.Random(rng)
	}

	strokes := grid.Size() / cellsPerStroke
	if strokes < 1 {
		strokes = 1
	}
	for i := 0; i < strokes; i++ {
		g.walk(grid, types, rng, rng.Intn(grid.Size()), randomDirection(rng), palette.Random(rng), branchProbability)
	}

	return tiles.NewBoard(grid, palette, types)
}

// randomDirection returns a random cardinal direction
func randomDirection(rng *rand.Rand) world.Direction {
	return world.Direction(rng.Intn(4))
}

// walk paints t along a line from index in the given direction, stopping at
// the grid edge, and branches with the given probability
func (g *LineWalkerGenerator) walk(grid *world.Grid, types []tiles.Type, rng *rand.Rand, index int, dir world.Direction, t tiles.Type, branchProb float64) {
	distance := minStroke + rng.Intn(maxStroke-minStroke+1)

	for segment := 0; segment < distance; segment++ {
		types[index] = t

		if rng.Float64() < branchProb {
			g.walk(grid, types, rng, index, randomDirection(rng), t, branchProb-.1)
		}

		next, ok := grid.Neighbor(index, dir)
		if !ok {
			return
		}
		index = next
	}
	types[index] = t
}
