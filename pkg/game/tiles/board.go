package tiles

import (
	"math/rand"

	"github.com/pkg/errors"

	"tilegrid/pkg/engine/world"
)

var (
	// ErrTypeCount indicates a type slice whose length differs from the grid size.
	ErrTypeCount = errors.New("tiles: number of types must match the number of cells")
	// ErrUnknownType indicates a cell type missing from the palette.
	ErrUnknownType = errors.New("tiles: type is not part of the palette")
)

// Board assigns an immutable type to every cell of a grid.
type Board struct {
	grid    *world.Grid
	palette Palette
	types   []Type
}

// NewBoard creates a board from explicit row-major types
func NewBoard(grid *world.Grid, palette Palette, types []Type) (*Board, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	if len(types) != grid.Size() {
		return nil, errors.Wrapf(ErrTypeCount, "got %d types for %d cells", len(types), grid.Size())
	}
	for i, t := range types {
		if palette.IndexOf(t) < 0 {
			return nil, errors.Wrapf(ErrUnknownType, "cell %d has type %q", i, t)
		}
	}
	cells := make([]Type, len(types))
	copy(cells, types)
	return &Board{grid: grid, palette: palette, types: cells}, nil
}

// NewRandomBoard samples every cell independently and uniformly from the palette
func NewRandomBoard(grid *world.Grid, palette Palette, rng *rand.Rand) (*Board, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	types := make([]Type, grid.Size())
	for i := range types {
		types[i] = palette.Random(rng)
	}
	return &Board{grid: grid, palette: palette, types: types}, nil
}

// Grid returns the board's grid
func (b *Board) Grid() *world.Grid {
	return b.grid
}

// Palette returns the palette the board was built from
func (b *Board) Palette() Palette {
	return b.palette
}

// TypeOf returns the type of a cell. It is total over valid indices and
// returns the empty type for anything else.
func (b *Board) TypeOf(index int) Type {
	if !b.grid.IsValidIndex(index) {
		return ""
	}
	return b.types[index]
}

// TypeAt returns the type of the cell at row, col
func (b *Board) TypeAt(row, col int) (Type, error) {
	index, err := b.grid.ToIndex(row, col)
	if err != nil {
		return "", err
	}
	return b.types[index], nil
}

// Region returns the connected same-type region containing start
func (b *Board) Region(start int) (world.Region, error) {
	return world.FindRegion(b.grid, start, b.TypeOf)
}

// Counts returns how many cells carry each palette type
func (b *Board) Counts() map[Type]int {
	counts := make(map[Type]int, len(b.palette))
	for _, t := range b.types {
		counts[t]++
	}
	return counts
}
