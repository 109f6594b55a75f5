// Package generator fills a grid with tile types. The uniform generator
// samples every cell independently; the others paint larger same-type
// areas, which is useful for exercising big regions.
package generator

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/tiles"
)

// BoardGenerator is an interface for board generation algorithms
type BoardGenerator interface {
	Generate(grid *world.Grid, palette tiles.Palette, rng *rand.Rand) (*tiles.Board, error)
	Name() string
}

// Available generators
var (
	Uniform    = &UniformGenerator{}
	BSP        = &BSPGenerator{}
	LineWalker = &LineWalkerGenerator{}
)

// DefaultGenerator is the default board generator
var DefaultGenerator BoardGenerator = Uniform

// ErrUnknownGenerator is returned by ByName for names not in Names
var ErrUnknownGenerator = errors.New("unknown generator")

var generators = map[string]BoardGenerator{
	"uniform": Uniform,
	"bsp":     BSP,
	"walker":  LineWalker,
}

// ByName returns the generator registered under name
func ByName(name string) (BoardGenerator, error) {
	if g, ok := generators[name]; ok {
		return g, nil
	}
	return nil, errors.Wrapf(ErrUnknownGenerator, "%q", name)
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UniformGenerator samples every cell independently and uniformly
type UniformGenerator struct{}

// Name returns the name of this generator
func (g *UniformGenerator) Name() string {
	return "Uniform"
}

// Generate creates a board with independently sampled cells
func (g *UniformGenerator) Generate(grid *world.Grid, palette tiles.Palette, rng *rand.Rand) (*tiles.Board, error) {
	return tiles.NewRandomBoard(grid, palette, rng)
}
