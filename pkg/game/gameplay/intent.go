// Package gameplay connects input to the session: keyboard actions become
// pointer events, and queued events are applied in arrival order.
package gameplay

import (
	"context"

	"github.com/hauke96/sigolo/v2"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/state"
)

// ProcessAction translates a keyboard action into the pointer event it stands
// for. ok is false when the action produces no event (quit, zoom, or a cursor
// move off the grid).
func ProcessAction(g *state.Game, action engineinput.Action) (ev engineinput.Event, ok bool) {
	switch action {
	case engineinput.ActionCursorLeft:
		return g.MoveCursor(world.West)
	case engineinput.ActionCursorRight:
		return g.MoveCursor(world.East)
	case engineinput.ActionCursorUp:
		return g.MoveCursor(world.North)
	case engineinput.ActionCursorDown:
		return g.MoveCursor(world.South)

	case engineinput.ActionSelect:
		cursor := g.Cursor()
		if cursor == state.NoCell {
			return engineinput.Event{}, false
		}
		return engineinput.Click(cursor).From(engineinput.DeviceKeyboard), true

	case engineinput.ActionClearPreview:
		return engineinput.Leave().From(engineinput.DeviceKeyboard), true

	case engineinput.ActionQuit:
		g.RequestQuit()
		return engineinput.Event{}, false

	default:
		return engineinput.Event{}, false
	}
}

// Run applies events from q to g one at a time, in the order they were
// queued, until ctx is cancelled or the queue is closed. Failed events are
// logged by the session and skipped.
func Run(ctx context.Context, g *state.Game, q *engineinput.Queue) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, open := <-q.Ready():
			for _, ev := range q.Drain() {
				_, _ = g.Handle(ev)
			}
			if !open {
				sigolo.Debugf("Event queue closed")
				return nil
			}
		}
	}
}
