package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Region is a set of cell indices. A Region returned by FindRegion is the
// maximal 4-connected set of same-type cells around its start cell.
type Region struct {
	cells *mapset.Set[int]
}

// EmptyRegion returns a region with no cells
func EmptyRegion() Region {
	cells := mapset.New[int]()
	return Region{cells: &cells}
}

// RegionOf returns a region containing the given indices
func RegionOf(indices ...int) Region {
	cells := mapset.Of(indices...)
	return Region{cells: &cells}
}

// Has reports whether index is part of the region
func (r Region) Has(index int) bool {
	if r.cells == nil {
		return false
	}
	return r.cells.Has(index)
}

// Size returns the number of cells in the region
func (r Region) Size() int {
	if r.cells == nil {
		return 0
	}
	return r.cells.Size()
}

// IsEmpty reports whether the region has no cells
func (r Region) IsEmpty() bool {
	return r.Size() == 0
}

// Each calls fn for every index in the region in no particular order
func (r Region) Each(fn func(index int)) {
	if r.cells == nil {
		return
	}
	r.cells.Each(fn)
}

// Indices returns the region's cells in ascending order
func (r Region) Indices() []int {
	indices := make([]int, 0, r.Size())
	r.Each(func(index int) {
		indices = append(indices, index)
	})
	sort.Ints(indices)
	return indices
}

// Equal reports whether both regions contain exactly the same cells
func (r Region) Equal(other Region) bool {
	if r.Size() != other.Size() {
		return false
	}
	equal := true
	r.Each(func(index int) {
		if !other.Has(index) {
			equal = false
		}
	})
	return equal
}

// FindRegion returns the connected region of cells sharing the type of start.
// Cells are connected through 4-adjacency; typeOf must be total over the grid
// and free of side effects. Each cell is visited at most once, so the search
// is O(W*H) in time and memory regardless of the grid's shape.
func FindRegion[T comparable](g *Grid, start int, typeOf func(index int) T) (Region, error) {
	if _, _, err := g.ToRowCol(start); err != nil {
		return Region{}, err
	}

	target := typeOf(start)
	visited := mapset.New[int]()
	pending := stack.New[int]()

	visited.Put(start)
	pending.Push(start)

	for pending.Size() > 0 {
		current := pending.Pop()
		row, col := current/g.width, current%g.width

		g.eachNeighbor(row, col, func(next int) {
			if visited.Has(next) || typeOf(next) != target {
				return
			}
			visited.Put(next)
			pending.Push(next)
		})
	}

	return Region{cells: &visited}, nil
}
