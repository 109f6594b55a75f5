package tiles

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tilegrid/pkg/engine/world"
)

func mustGrid(t *testing.T, width, height int) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error: %v", width, height, err)
	}
	return g
}

func TestType_Label(t *testing.T) {
	cases := map[Type]string{
		"img/buba.png": "buba",
		"pika.png":     "pika",
		"A":            "A",
	}
	for typ, want := range cases {
		if got := typ.Label(); got != want {
			t.Errorf("Type(%q).Label() = %q, want %q", typ, got, want)
		}
	}
}

func TestPalette_Validate(t *testing.T) {
	if err := (Palette{}).Validate(); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("empty palette: error = %v, want ErrEmptyPalette", err)
	}
	if err := PaletteOf("a", "b", "a").Validate(); !errors.Is(err, ErrDuplicateType) {
		t.Errorf("duplicate palette: error = %v, want ErrDuplicateType", err)
	}
	if err := DefaultPalette().Validate(); err != nil {
		t.Errorf("DefaultPalette().Validate() = %v, want nil", err)
	}
}

func TestDefaultPalette_NotShared(t *testing.T) {
	p := DefaultPalette()
	p[0] = "changed"
	if DefaultPalette()[0] != "img/buba.png" {
		t.Error("DefaultPalette() returned shared state")
	}
}

func TestNewBoard_TypeCount(t *testing.T) {
	g := mustGrid(t, 2, 2)
	_, err := NewBoard(g, PaletteOf("A", "B"), []Type{"A", "B", "A"})
	if !errors.Is(err, ErrTypeCount) {
		t.Errorf("NewBoard with 3 types on 4 cells: error = %v, want ErrTypeCount", err)
	}
}

func TestNewBoard_UnknownType(t *testing.T) {
	g := mustGrid(t, 2, 1)
	_, err := NewBoard(g, PaletteOf("A", "B"), []Type{"A", "C"})
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("NewBoard with type C: error = %v, want ErrUnknownType", err)
	}
}

func TestNewBoard_CopiesTypes(t *testing.T) {
	g := mustGrid(t, 2, 1)
	types := []Type{"A", "A"}
	b, err := NewBoard(g, PaletteOf("A", "B"), types)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	types[0] = "B"
	if b.TypeOf(0) != "A" {
		t.Error("board types changed after mutating the input slice")
	}
}

func TestNewRandomBoard_Seeded(t *testing.T) {
	g := mustGrid(t, 6, 7)
	a, err := NewRandomBoard(g, DefaultPalette(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewRandomBoard error: %v", err)
	}
	b, _ := NewRandomBoard(g, DefaultPalette(), rand.New(rand.NewSource(7)))
	for i := 0; i < g.Size(); i++ {
		if a.TypeOf(i) != b.TypeOf(i) {
			t.Fatalf("same seed produced different boards at cell %d: %q vs %q", i, a.TypeOf(i), b.TypeOf(i))
		}
		if DefaultPalette().IndexOf(a.TypeOf(i)) < 0 {
			t.Errorf("cell %d has type %q outside the palette", i, a.TypeOf(i))
		}
	}
	total := 0
	for _, n := range a.Counts() {
		total += n
	}
	if total != g.Size() {
		t.Errorf("Counts() total = %d, want %d", total, g.Size())
	}
}

func TestBoard_TypeOfOutOfRange(t *testing.T) {
	g := mustGrid(t, 1, 1)
	b, _ := NewBoard(g, PaletteOf("A"), []Type{"A"})
	if got := b.TypeOf(5); got != "" {
		t.Errorf("TypeOf(5) = %q, want empty", got)
	}
	if _, err := b.TypeAt(0, 1); !errors.Is(err, world.ErrOutOfRange) {
		t.Errorf("TypeAt(0, 1) error = %v, want ErrOutOfRange", err)
	}
}

func TestBoard_Region(t *testing.T) {
	g := mustGrid(t, 3, 1)
	b, err := NewBoard(g, PaletteOf("A", "B"), []Type{"A", "A", "B"})
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	r, err := b.Region(0)
	if err != nil {
		t.Fatalf("Region(0) error: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1}, r.Indices()); diff != "" {
		t.Errorf("Region(0) mismatch (-want +got):\n%s", diff)
	}
	if _, err := b.Region(3); !errors.Is(err, world.ErrOutOfRange) {
		t.Errorf("Region(3) error = %v, want ErrOutOfRange", err)
	}
}
