package devtools

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/highlight"
	"tilegrid/pkg/game/tiles"
)

// makeBoard builds a 3x2 board:
//
//	A A B
//	B A B
func makeBoard(t *testing.T) *tiles.Board {
	t.Helper()
	g, err := world.NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	b, err := tiles.NewBoard(g, tiles.PaletteOf("img/a.png", "img/b.png"),
		[]tiles.Type{"img/a.png", "img/a.png", "img/b.png", "img/b.png", "img/a.png", "img/b.png"})
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	return b
}

func TestWriteBoard(t *testing.T) {
	board := makeBoard(t)
	layers := highlight.NewLayers()
	layers.Apply(highlight.Update{Kind: highlight.MarkSelected, Cells: world.RegionOf(0, 1, 4)})
	layers.Apply(highlight.Update{Kind: highlight.MarkPreview, Cells: world.RegionOf(2, 5, 4)})

	var buf bytes.Buffer
	if err := WriteBoard(&buf, board, layers); err != nil {
		t.Fatalf("WriteBoard error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"width: 3\n",
		"A = img/a.png (3 cells)\n",
		"B = img/b.png (3 cells)\n",
		"--- Types ---\nAAB\nBAB\n",
		"**+\n.#+\n",
		"selected: [0 1 4]\n",
		"preview: [2 4 5]\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteBoard output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBoard_NoLayers(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBoard(&buf, makeBoard(t), nil); err != nil {
		t.Fatalf("WriteBoard error: %v", err)
	}
	if strings.Contains(buf.String(), "Marks") {
		t.Errorf("WriteBoard without layers wrote a marks section:\n%s", buf.String())
	}
}

func TestWriteRegion(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRegion(&buf, makeBoard(t), 2); err != nil {
		t.Fatalf("WriteRegion error: %v", err)
	}
	want := "start: 2\ntype: img/b.png (B)\nsize: 2\ncells: [2 5]\n..B\n..B\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteRegion = %q, want %q", got, want)
	}
}

func TestWriteRegion_OutOfRange(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRegion(&buf, makeBoard(t), 6)
	if !errors.Is(err, world.ErrOutOfRange) {
		t.Errorf("WriteRegion(6) error = %v, want ErrOutOfRange", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteRegion(6) wrote %q, want nothing", buf.String())
	}
}
