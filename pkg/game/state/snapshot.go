package state

import (
	"tilegrid/pkg/game/highlight"
	"tilegrid/pkg/game/tiles"
)

// Snapshot is a consistent, read-only copy of the session for rendering
type Snapshot struct {
	Board    *tiles.Board
	Layers   *highlight.Layers
	Cursor   int
	Hovered  int
	Messages []string

	SelectedSize int
	PreviewSize  int
}

// Snapshot copies the mutable session state
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	layers := g.layers.Clone()
	messages := make([]string, len(g.messages))
	copy(messages, g.messages)

	return Snapshot{
		Board:        g.Board,
		Layers:       layers,
		Cursor:       g.cursor,
		Hovered:      g.hovered,
		Messages:     messages,
		SelectedSize: layers.Selected().Size(),
		PreviewSize:  layers.Preview().Size(),
	}
}

// Marks reports which layers mark the given cell
func (s Snapshot) Marks(index int) (selected, preview bool) {
	if s.Layers == nil {
		return false, false
	}
	return s.Layers.Marks(index)
}

// HoveredType returns the type of the hovered cell, or the empty type
func (s Snapshot) HoveredType() tiles.Type {
	if s.Hovered == NoCell {
		return ""
	}
	return s.Board.TypeOf(s.Hovered)
}
