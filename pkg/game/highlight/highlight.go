// Package highlight turns pointer events into mark updates and keeps the
// independent mark layers a renderer draws.
//
// A click marks the clicked cell's region as selected, a pointer entering a
// cell marks its region as preview, and the pointer leaving clears the
// preview. Each update replaces every mark of its own kind and never touches
// the other kind.
package highlight

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"

	"tilegrid/pkg/engine/input"
	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/tiles"
)

// MarkKind identifies a mark layer
type MarkKind int

const (
	MarkSelected MarkKind = iota
	MarkPreview
)

// String returns the name of the layer
func (k MarkKind) String() string {
	switch k {
	case MarkSelected:
		return "selected"
	case MarkPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// Update replaces the marks of one layer with Cells.
type Update struct {
	Kind  MarkKind
	Cells world.Region
}

// IsClear reports whether the update only removes marks
func (u Update) IsClear() bool {
	return u.Cells.IsEmpty()
}

// String returns "selected", "preview" or "clear-preview"
func (u Update) String() string {
	if u.IsClear() {
		return "clear-" + u.Kind.String()
	}
	return u.Kind.String()
}

// Sink receives updates, typically a Layers value owned by a renderer.
type Sink interface {
	Apply(u Update)
}

// Highlighter computes updates for pointer events on a board.
type Highlighter struct {
	board *tiles.Board
}

// New creates a highlighter for the given board
func New(board *tiles.Board) *Highlighter {
	return &Highlighter{board: board}
}

// Board returns the board queries run against
func (h *Highlighter) Board() *tiles.Board {
	return h.board
}

// Click marks the region of the clicked cell as selected
func (h *Highlighter) Click(index int) (Update, error) {
	return h.regionUpdate(MarkSelected, index)
}

// Enter marks the region of the entered cell as preview
func (h *Highlighter) Enter(index int) (Update, error) {
	return h.regionUpdate(MarkPreview, index)
}

// Leave clears every preview mark
func (h *Highlighter) Leave() Update {
	return Update{Kind: MarkPreview, Cells: world.EmptyRegion()}
}

// Handle dispatches an input event to Click, Enter or Leave
func (h *Highlighter) Handle(ev input.Event) (Update, error) {
	switch ev.Kind {
	case input.EventClick:
		return h.Click(ev.Index)
	case input.EventEnter:
		return h.Enter(ev.Index)
	case input.EventLeave:
		return h.Leave(), nil
	default:
		return Update{}, errors.Errorf("highlight: unsupported event %s", ev)
	}
}

func (h *Highlighter) regionUpdate(kind MarkKind, index int) (Update, error) {
	region, err := h.board.Region(index)
	if err != nil {
		return Update{}, errors.Wrapf(err, "%s on cell %d", kind, index)
	}
	sigolo.Tracef("Region of cell %d has %d cells", index, region.Size())
	return Update{Kind: kind, Cells: region}, nil
}
