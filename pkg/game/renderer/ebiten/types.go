// Package ebiten provides an Ebiten-based 2D graphical renderer for the tile board.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/renderer"
	"tilegrid/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions, updated by Layout
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize        int
	defaultTileSize int

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for tile labels and UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for the title

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTileFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedTitleFace    *text.GoTextFace

	// Session being shown (set by Run)
	game *state.Game

	// Grid placement for the current window and tile size
	layout renderer.Layout

	// Turns cursor motion into enter/leave events
	pointer *renderer.Pointer

	// Events for the session, consumed by gameplay.Run in its own goroutine
	queue *engineinput.Queue

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}
