package terminal

import "testing"

func TestCellWidthFor(t *testing.T) {
	cases := []struct {
		termWidth, gridCols, want int
	}{
		{80, 6, 10},
		{48, 6, 8},
		{10, 6, MinCellWidth},
		{200, 0, MinCellWidth},
	}
	for _, c := range cases {
		if got := CellWidthFor(c.termWidth, c.gridCols); got != c.want {
			t.Errorf("CellWidthFor(%d, %d) = %d, want %d", c.termWidth, c.gridCols, got, c.want)
		}
	}
}
