// Package state holds the interactive session: the board, the mark layers
// the renderers draw, the keyboard cursor and the message log.
package state

import (
	"sync"

	"github.com/hauke96/sigolo/v2"
	"github.com/leonelquinteros/gotext"

	"tilegrid/pkg/engine/input"
	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/highlight"
	"tilegrid/pkg/game/tiles"
)

const maxMessages = 5

// NoCell marks an unset cursor or hover position
const NoCell = -1

// Game represents one interactive session over a board.
// Handle and the cursor methods may be called from any goroutine; renderers
// read through Snapshot.
type Game struct {
	Board *tiles.Board

	highlighter *highlight.Highlighter

	mu       sync.RWMutex
	layers   *highlight.Layers
	cursor   int
	hovered  int
	messages []string
	quit     bool
}

// NewGame creates a new session over the given board
func NewGame(board *tiles.Board) *Game {
	return &Game{
		Board:       board,
		highlighter: highlight.New(board),
		layers:      highlight.NewLayers(),
		cursor:      NoCell,
		hovered:     NoCell,
		messages:    make([]string, 0),
	}
}

// Handle computes the mark update for an event and applies it to the layers.
// The region is computed before the lock is taken; the board is immutable.
func (g *Game) Handle(ev input.Event) (highlight.Update, error) {
	u, err := g.highlighter.Handle(ev)
	if err != nil {
		sigolo.Errorf("Ignoring %s: %v", ev, err)
		return u, err
	}

	g.mu.Lock()
	g.layers.Apply(u)
	switch ev.Kind {
	case input.EventEnter:
		g.hovered = ev.Index
	case input.EventLeave:
		g.hovered = NoCell
	case input.EventClick:
		g.addMessageUnlocked(gotext.Get("Selected %d %s tiles", u.Cells.Size(), g.Board.TypeOf(ev.Index).Label()))
	}
	g.mu.Unlock()

	sigolo.Debugf("Handled %s -> %s (%d cells)", ev, u, u.Cells.Size())
	return u, nil
}

// MoveCursor moves the keyboard cursor one cell and returns the matching
// enter event. The first move places the cursor on cell 0. ok is false when
// the move would leave the grid.
func (g *Game) MoveCursor(dir world.Direction) (ev input.Event, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cursor == NoCell {
		g.cursor = 0
		return input.Enter(0).From(input.DeviceKeyboard), true
	}
	next, ok := g.Board.Grid().Neighbor(g.cursor, dir)
	if !ok {
		return input.Event{}, false
	}
	g.cursor = next
	return input.Enter(next).From(input.DeviceKeyboard), true
}

// SetCursor places the keyboard cursor on a cell, typically the one under the pointer
func (g *Game) SetCursor(index int) {
	if !g.Board.Grid().IsValidIndex(index) {
		return
	}
	g.mu.Lock()
	g.cursor = index
	g.mu.Unlock()
}

// Cursor returns the cursor cell, or NoCell
func (g *Game) Cursor() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursor
}

// AddMessage adds a message to the session's message log
func (g *Game) AddMessage(msg string) {
	g.mu.Lock()
	g.addMessageUnlocked(msg)
	g.mu.Unlock()
}

func (g *Game) addMessageUnlocked(msg string) {
	g.messages = append(g.messages, msg)

	// Keep only the last maxMessages
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.mu.Lock()
	g.messages = make([]string, 0)
	g.mu.Unlock()
}

// RequestQuit flags the session as finished
func (g *Game) RequestQuit() {
	g.mu.Lock()
	g.quit = true
	g.mu.Unlock()
}

// QuitRequested reports whether RequestQuit was called
func (g *Game) QuitRequested() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.quit
}
