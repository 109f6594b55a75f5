package renderer

import (
	"testing"

	"tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/state"
)

// markerRenderer wraps styled text in the style number so tests can see it
type markerRenderer struct{}

func (markerRenderer) Init() error {
	return nil
}

func (markerRenderer) Run(*state.Game) error {
	return nil
}

func (markerRenderer) StyleText(text string, style TextStyle) string {
	return "<" + string(rune('0'+int(style))) + ">" + text
}

func (m markerRenderer) FormatText(msg string, args ...any) string {
	return FormatString(msg, args...)
}

func TestFormatString_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	got := FormatString("Selected SELECTED{%d} tiles", 3)
	if got != "Selected 3 tiles" {
		t.Errorf("FormatString = %q, want %q", got, "Selected 3 tiles")
	}
}

func TestFormatString_Styles(t *testing.T) {
	SetRenderer(markerRenderer{})
	t.Cleanup(func() { SetRenderer(nil) })

	got := FormatText("SELECTED{a} PREVIEW{b} SUBTLE{c} UNKNOWN{d}")
	want := "<2>a <3>b <5>c UNKNOWN{d}"
	if got != want {
		t.Errorf("FormatText = %q, want %q", got, want)
	}
}

func TestFormatString_GTPassesThrough(t *testing.T) {
	SetRenderer(nil)
	if got := FormatString("GT{Hover a tile}"); got != "Hover a tile" {
		t.Errorf("FormatString(GT{...}) = %q, want untranslated key", got)
	}
}

func TestFormatString_KeepsPercentWithoutArgs(t *testing.T) {
	SetRenderer(nil)
	if got := FormatString("100%"); got != "100%" {
		t.Errorf("FormatString(\"100%%\") = %q", got)
	}
}

func TestApplyMarkup_NoFormatting(t *testing.T) {
	SetRenderer(nil)
	if got := ApplyMarkup("GT{Done} %d SELECTED{%s}"); got != "Done %d %s" {
		t.Errorf("ApplyMarkup = %q, want %q", got, "Done %d %s")
	}
}

func TestLayout_CellAt(t *testing.T) {
	l := Layout{OriginX: 10, OriginY: 20, CellWidth: 4, CellHeight: 2, Gap: 1, Cols: 3, Rows: 2}
	cases := []struct {
		x, y  int
		index int
		ok    bool
	}{
		{10, 20, 0, true},
		{13, 21, 0, true},
		{14, 20, 0, false}, // gap column
		{15, 20, 1, true},
		{20, 23, 5, true},
		{10, 22, 0, false}, // gap row
		{9, 20, 0, false},
		{25, 20, 0, false}, // past last column
		{10, 26, 0, false}, // past last row
	}
	for _, c := range cases {
		index, ok := l.CellAt(c.x, c.y)
		if ok != c.ok || (ok && index != c.index) {
			t.Errorf("CellAt(%d, %d) = %d, %v, want %d, %v", c.x, c.y, index, ok, c.index, c.ok)
		}
	}
}

// TestLayout_RoundTrip checks that every cell origin hit-tests back to its own index.
func TestLayout_RoundTrip(t *testing.T) {
	l := Layout{OriginX: 3, OriginY: 5, CellWidth: 64, CellHeight: 64, Gap: 4, Cols: 6, Rows: 7}
	for i := 0; i < l.Cols*l.Rows; i++ {
		x, y := l.CellOrigin(i)
		if got, ok := l.CellAt(x+l.CellWidth-1, y+l.CellHeight-1); !ok || got != i {
			t.Errorf("CellAt(origin of %d) = %d, %v", i, got, ok)
		}
	}
}

func TestLayout_Centered(t *testing.T) {
	l := Layout{CellWidth: 10, CellHeight: 10, Gap: 2, Cols: 2, Rows: 2}
	w, h := l.Size()
	if w != 22 || h != 22 {
		t.Fatalf("Size() = %d, %d, want 22, 22", w, h)
	}
	c := l.Centered(100, 60, 10)
	if c.OriginX != 39 || c.OriginY != 24 {
		t.Errorf("Centered origin = (%d, %d), want (39, 24)", c.OriginX, c.OriginY)
	}
	tight := l.Centered(10, 10, 5)
	if tight.OriginX != 0 || tight.OriginY != 5 {
		t.Errorf("Centered on a small area = (%d, %d), want (0, 5)", tight.OriginX, tight.OriginY)
	}
}

func TestPointer_Events(t *testing.T) {
	p := NewPointer(input.DeviceMouse, Layout{CellWidth: 10, CellHeight: 10, Gap: 2, Cols: 2, Rows: 1})

	steps := []struct {
		name  string
		event func() (input.Event, bool)
		want  string // "" when no event is expected
	}{
		{"move onto cell 0", func() (input.Event, bool) { return p.Move(1, 1) }, "enter(0)"},
		{"move within cell 0", func() (input.Event, bool) { return p.Move(5, 5) }, ""},
		{"move into gap", func() (input.Event, bool) { return p.Move(11, 5) }, "leave()"},
		{"move in gap again", func() (input.Event, bool) { return p.Move(10, 5) }, ""},
		{"move onto cell 1", func() (input.Event, bool) { return p.Move(12, 0) }, "enter(1)"},
		{"press cell 0", func() (input.Event, bool) { return p.Press(0, 9) }, "click(0)"},
		{"press gap", func() (input.Event, bool) { return p.Press(10, 0) }, ""},
		{"exit window", func() (input.Event, bool) { return p.Exit() }, "leave()"},
		{"exit again", func() (input.Event, bool) { return p.Exit() }, ""},
	}
	for _, s := range steps {
		ev, ok := s.event()
		got := ""
		if ok {
			got = ev.String()
			if ev.Device != input.DeviceMouse {
				t.Errorf("%s: device = %v, want mouse", s.name, ev.Device)
			}
		}
		if got != s.want {
			t.Errorf("%s: got %q, want %q", s.name, got, s.want)
		}
	}
	if p.Over() != state.NoCell {
		t.Errorf("Over() = %d after exit, want NoCell", p.Over())
	}
}
