// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
//
// A Grid is implicit: it stores only its dimensions and maps between linear
// cell indices (row-major) and (row, col) positions.
package world

import "github.com/pkg/errors"

// Grid represents a fixed width x height arrangement of cells
type Grid struct {
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}
	return &Grid{width: width, height: height}, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return g.width * g.height
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsValidIndex checks if a linear index addresses a cell of this grid
func (g *Grid) IsValidIndex(index int) bool {
	return index >= 0 && index < g.Size()
}

// ToRowCol converts a linear index to its row and column
func (g *Grid) ToRowCol(index int) (row, col int, err error) {
	if !g.IsValidIndex(index) {
		return 0, 0, errors.Wrapf(ErrOutOfRange, "index %d not in [0,%d)", index, g.Size())
	}
	return index / g.width, index % g.width, nil
}

// ToIndex converts a row and column to a linear index
func (g *Grid) ToIndex(row, col int) (int, error) {
	if !g.IsValidPosition(row, col) {
		return 0, errors.Wrapf(ErrOutOfRange, "position (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	return g.index(row, col), nil
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Neighbors returns the in-bounds orthogonal neighbours of a cell, in
// AllDirections order (left, right, up, down).
func (g *Grid) Neighbors(index int) ([]int, error) {
	row, col, err := g.ToRowCol(index)
	if err != nil {
		return nil, err
	}
	neighbors := make([]int, 0, 4)
	g.eachNeighbor(row, col, func(index int) {
		neighbors = append(neighbors, index)
	})
	return neighbors, nil
}

// eachNeighbor calls fn for the in-grid neighbours of (row, col) in
// West, East, North, South order.
func (g *Grid) eachNeighbor(row, col int, fn func(index int)) {
	for _, dir := range AllDirections() {
		rowRel, colRel := dir.Delta()
		if g.IsValidPosition(row+rowRel, col+colRel) {
			fn(g.index(row+rowRel, col+colRel))
		}
	}
}

// Neighbor returns the cell adjacent to index in the given direction.
// ok is false when the neighbour would fall outside the grid.
func (g *Grid) Neighbor(index int, dir Direction) (neighbor int, ok bool) {
	row, col, err := g.ToRowCol(index)
	if err != nil || !dir.IsValid() {
		return 0, false
	}
	rowRel, colRel := dir.Delta()
	if !g.IsValidPosition(row+rowRel, col+colRel) {
		return 0, false
	}
	return g.index(row+rowRel, col+colRel), true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(index, row, col int)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(g.index(row, col), row, col)
		}
	}
}
