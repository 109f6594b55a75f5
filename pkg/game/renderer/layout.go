package renderer

// Layout places grid cells on a surface measured in pixels (GUI) or
// character cells (TUI). Cells are CellWidth x CellHeight, separated by Gap,
// starting at (OriginX, OriginY).
type Layout struct {
	OriginX    int
	OriginY    int
	CellWidth  int
	CellHeight int
	Gap        int
	Cols       int
	Rows       int
}

func (l Layout) strideX() int { return l.CellWidth + l.Gap }
func (l Layout) strideY() int { return l.CellHeight + l.Gap }

// CellAt returns the index of the cell under (x, y). ok is false outside the
// grid and on the gaps between cells.
func (l Layout) CellAt(x, y int) (index int, ok bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return 0, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, false
	}
	col, offX := dx/l.strideX(), dx%l.strideX()
	row, offY := dy/l.strideY(), dy%l.strideY()
	if col >= l.Cols || row >= l.Rows {
		return 0, false
	}
	if offX >= l.CellWidth || offY >= l.CellHeight {
		return 0, false
	}
	return row*l.Cols + col, true
}

// CellOrigin returns the top-left corner of a cell
func (l Layout) CellOrigin(index int) (x, y int) {
	row, col := index/l.Cols, index%l.Cols
	return l.OriginX + col*l.strideX(), l.OriginY + row*l.strideY()
}

// Size returns the width and height the grid occupies
func (l Layout) Size() (width, height int) {
	if l.Cols == 0 || l.Rows == 0 {
		return 0, 0
	}
	return l.Cols*l.strideX() - l.Gap, l.Rows*l.strideY() - l.Gap
}

// Centered returns a copy of l with its origin set so the grid is centered
// in a width x height area whose top edge is at top.
func (l Layout) Centered(width, height, top int) Layout {
	w, h := l.Size()
	l.OriginX = (width - w) / 2
	l.OriginY = top + (height-top-h)/2
	if l.OriginX < 0 {
		l.OriginX = 0
	}
	if l.OriginY < top {
		l.OriginY = top
	}
	return l
}
