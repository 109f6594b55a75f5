// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	MinCellWidth = 3
	MaxCellWidth = 10
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CellWidth returns how many columns each of gridCols tiles may take on the
// current terminal.
func CellWidth(gridCols int) int {
	width, _ := GetSize()
	return CellWidthFor(width, gridCols)
}

// CellWidthFor returns the tile width that fits gridCols tiles into
// termWidth columns, clamped to [MinCellWidth, MaxCellWidth].
func CellWidthFor(termWidth, gridCols int) int {
	if gridCols <= 0 {
		return MinCellWidth
	}
	w := termWidth / gridCols
	if w < MinCellWidth {
		return MinCellWidth
	}
	if w > MaxCellWidth {
		return MaxCellWidth
	}
	return w
}
