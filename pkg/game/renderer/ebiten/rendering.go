package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"tilegrid/pkg/game/renderer"
	"tilegrid/pkg/game/state"
)

// Draw renders the board to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	if e.game == nil || e.sansFontSource == nil {
		// Can't draw without a session or fonts
		return
	}

	// Snapshot for consistent rendering while events are applied concurrently
	snap := e.game.Snapshot()

	e.drawHeader(screen, snap)

	// Board background with a margin around the tiles
	w, h := e.layout.Size()
	vector.DrawFilledRect(screen, float32(e.layout.OriginX-mapMargin), float32(e.layout.OriginY-mapMargin),
		float32(w+mapMargin*2), float32(h+mapMargin*2), colorMapBackground, false)

	grid := snap.Board.Grid()
	grid.ForEachCell(func(index, _, _ int) {
		e.drawTile(screen, snap, index)
	})

	e.drawMessages(screen, snap)
}

// drawHeader draws the title and the hover/selection status line
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap state.Snapshot) {
	x := mapMargin
	e.drawColoredTextWithFace(screen, gotext.Get("Tile regions"), x, mapMargin/2, colorText, e.getTitleFontFace())

	hovered := e.StyleText("-", renderer.StyleSubtle)
	if t := snap.HoveredType(); t != "" {
		hovered = e.StyleText(t.Label(), renderer.StylePreview)
	}
	status := e.FormatText("GT{Hover}: %s   GT{Preview}: PREVIEW{%d}   GT{Selected}: SELECTED{%d}",
		hovered, snap.PreviewSize, snap.SelectedSize)
	e.drawColoredTextSegments(screen, parseMarkup(status), x, mapMargin/2+int(e.getUIFontSize())*2)
}

// drawTile draws one tile with its selection and preview marks
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, snap state.Snapshot, index int) {
	x, y := e.layout.CellOrigin(index)
	size := float32(e.tileSize)
	fx, fy := float32(x), float32(y)

	t := snap.Board.TypeOf(index)
	vector.DrawFilledRect(screen, fx, fy, size, size, tileColor(snap.Board.Palette().IndexOf(t)), false)
	e.drawCenteredText(screen, t.Label(), x, y, e.tileSize, e.tileSize, colorTileText, e.getTileFontFace())

	selected, preview := snap.Marks(index)
	if preview {
		vector.DrawFilledRect(screen, fx, fy, size, size, colorPreviewOverlay, false)
		inset := float32(selectedWidth + previewWidth)
		vector.StrokeRect(screen, fx+inset, fy+inset, size-2*inset, size-2*inset, previewWidth, colorPreview, false)
	}
	if selected {
		half := float32(selectedWidth) / 2
		vector.StrokeRect(screen, fx+half, fy+half, size-selectedWidth, size-selectedWidth, selectedWidth, colorSelected, false)
	}
	if index == snap.Cursor {
		vector.StrokeRect(screen, fx-cursorWidth, fy-cursorWidth, size+2*cursorWidth, size+2*cursorWidth, cursorWidth, colorCursor, false)
	}
}

// drawMessages draws the message log as a bottom-aligned overlay
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap state.Snapshot) {
	if len(snap.Messages) == 0 {
		return
	}
	lineHeight := int(e.getUIFontSize() * 1.5)
	height := lineHeight*len(snap.Messages) + mapMargin/2
	top := e.windowHeight - height - mapMargin/2

	width := 0
	lines := make([][]textSegment, len(snap.Messages))
	for i, msg := range snap.Messages {
		lines[i] = parseMarkup(msg)
		w := 0.0
		for _, seg := range lines[i] {
			w += e.getTextWidth(seg.text)
		}
		if int(w) > width {
			width = int(w)
		}
	}
	vector.DrawFilledRect(screen, float32(mapMargin/2), float32(top), float32(width+mapMargin), float32(height),
		colorPanelBackground, false)

	for i, segments := range lines {
		e.drawColoredTextSegments(screen, segments, mapMargin, top+mapMargin/4+i*lineHeight)
	}
}
