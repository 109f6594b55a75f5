package renderer

import (
	"tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/state"
)

// Pointer turns pointer positions into cell events using a Layout.
// Motion only produces an event when the cell under the pointer changes:
// enter for a new cell, leave when the pointer moves off the grid.
type Pointer struct {
	Layout Layout

	device input.Device
	over   int
}

// NewPointer creates a pointer tracker for the given device
func NewPointer(device input.Device, layout Layout) *Pointer {
	return &Pointer{Layout: layout, device: device, over: state.NoCell}
}

// Over returns the cell currently under the pointer, or state.NoCell
func (p *Pointer) Over() int {
	return p.over
}

// Move records the pointer at (x, y)
func (p *Pointer) Move(x, y int) (input.Event, bool) {
	index, onGrid := p.Layout.CellAt(x, y)
	if !onGrid {
		if p.over == state.NoCell {
			return input.Event{}, false
		}
		p.over = state.NoCell
		return input.Leave().From(p.device), true
	}
	if index == p.over {
		return input.Event{}, false
	}
	p.over = index
	return input.Enter(index).From(p.device), true
}

// Press returns a click on the cell at (x, y). Presses between cells or
// outside the grid produce nothing.
func (p *Pointer) Press(x, y int) (input.Event, bool) {
	index, onGrid := p.Layout.CellAt(x, y)
	if !onGrid {
		return input.Event{}, false
	}
	return input.Click(index).From(p.device), true
}

// Exit reports the pointer leaving the surface, e.g. the window losing the cursor
func (p *Pointer) Exit() (input.Event, bool) {
	if p.over == state.NoCell {
		return input.Event{}, false
	}
	p.over = state.NoCell
	return input.Leave().From(p.device), true
}
