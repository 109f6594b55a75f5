package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hauke96/sigolo/v2"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/gameplay"
)

// Update handles input (Ebiten interface). Pointer and keyboard events are
// pushed to the queue in the order they are detected.
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		sigolo.Infof("Main window opened successfully (%dx%d)", w, h)
	}

	e.handlePointer()
	e.handleKeys()

	if e.game.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// handlePointer turns cursor motion and left clicks into cell events
func (e *EbitenRenderer) handlePointer() {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= e.windowWidth || y >= e.windowHeight {
		if ev, ok := e.pointer.Exit(); ok {
			e.push(ev)
		}
	} else if ev, ok := e.pointer.Move(x, y); ok {
		e.push(ev)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ev, ok := e.pointer.Press(x, y); ok {
			e.game.SetCursor(ev.Index)
			e.push(ev)
		}
	}
}

// handleKeys maps newly pressed keys through the shared bindings
func (e *EbitenRenderer) handleKeys() {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		action := engineinput.MapToAction(keyCode(key))
		switch action {
		case engineinput.ActionNone:
			continue
		case engineinput.ActionZoomIn:
			e.increaseTileSize()
			continue
		case engineinput.ActionZoomOut:
			e.decreaseTileSize()
			continue
		}
		if ev, ok := gameplay.ProcessAction(e.game, action); ok {
			e.push(ev)
		}
	}
}

// push queues an event. A full queue makes room by dropping its oldest hover event.
func (e *EbitenRenderer) push(ev engineinput.Event) {
	if dropped, ok := e.queue.Push(ev); ok {
		sigolo.Debugf("Event queue full, dropped %s for %s", dropped, ev)
	}
}

// keyCode converts an Ebiten key into the code used by the key bindings
func keyCode(key ebiten.Key) string {
	switch key {
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	case ebiten.KeySpace:
		return " "
	case ebiten.KeyEscape:
		return "esc"
	case ebiten.KeyEqual:
		return "="
	case ebiten.KeyNumpadAdd:
		return "+"
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		return "-"
	}
	name := key.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return ""
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
		e.invalidateFontCache()
		e.recalculateLayout()
		sigolo.Debugf("Tile size %d", e.tileSize)
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
		e.invalidateFontCache()
		e.recalculateLayout()
		sigolo.Debugf("Tile size %d", e.tileSize)
	}
}
