package generator

import (
	"math/rand"

	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/tiles"
)

// BSPGenerator partitions the grid with Binary Space Partitioning and paints
// each leaf rectangle with one type
type BSPGenerator struct {
	// MinNodeSize is the smallest side a leaf may have; 0 uses defaultMinNodeSize
	MinNodeSize int
}

const defaultMinNodeSize = 2

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate creates a board of same-type rectangles
func (g *BSPGenerator) Generate(grid *world.Grid, palette tiles.Palette, rng *rand.Rand) (*tiles.Board, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	minSize := g.MinNodeSize
	if minSize <= 0 {
		minSize = defaultMinNodeSize
	}

	root := &bspNode{width: grid.Width(), height: grid.Height()}
	splitBSP(root, minSize, rng)

	types := make([]tiles.Type, grid.Size())
	paintLeaves(grid, root, palette, rng, types)
	return tiles.NewBoard(grid, palette, types)
}

// splitBSP recursively splits a node until both sides are below 2*minSize
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	canSplitWidth := node.width >= minSize*2
	canSplitHeight := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case canSplitWidth && canSplitHeight && node.width == node.height:
		splitHorizontal = rng.Intn(2) == 0
	case canSplitWidth && node.width >= node.height:
		splitHorizontal = false
	case canSplitHeight:
		splitHorizontal = true
	case canSplitWidth:
		splitHorizontal = false
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	// Recursively split children
	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// paintLeaves assigns one random type to every cell of each leaf
func paintLeaves(grid *world.Grid, node *bspNode, palette tiles.Palette, rng *rand.Rand, types []tiles.Type) {
	if node.left != nil || node.right != nil {
		paintLeaves(grid, node.left, palette, rng, types)
		paintLeaves(grid, node.right, palette, rng, types)
		return
	}

	t := palette.Random(rng)
	for row := node.y; row < node.y+node.height; row++ {
		for col := node.x; col < node.x+node.width; col++ {
			index, err := grid.ToIndex(row, col)
			if err != nil {
				continue
			}
			types[index] = t
		}
	}
}
