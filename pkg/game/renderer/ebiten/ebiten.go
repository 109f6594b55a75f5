package ebiten

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hauke96/sigolo/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/gameplay"
	"tilegrid/pkg/game/renderer"
	"tilegrid/pkg/game/state"
)

// New creates a new Ebiten renderer drawing tiles at tileSize pixels
func New(tileSize int) *EbitenRenderer {
	if tileSize < minTileSize || tileSize > maxTileSize {
		tileSize = 64
	}
	return &EbitenRenderer{
		windowWidth:     1024,
		windowHeight:    768,
		tileSize:        tileSize,
		defaultTileSize: tileSize,
		pointer:         renderer.NewPointer(engineinput.DeviceMouse, renderer.Layout{}),
		queue:           engineinput.NewQueue(engineinput.DefaultQueueSize),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Tile regions"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run opens the window and blocks until it is closed or the user quits.
// Input collected in Update is applied by gameplay.Run in a separate
// goroutine, in the order it was queued.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.recalculateLayout()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- gameplay.Run(ctx, g, e.queue)
	}()

	err := ebiten.RunGame(e)
	e.queue.Close()
	if runErr := <-done; runErr != nil {
		sigolo.Debugf("Event loop stopped: %v", runErr)
	}

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running ebiten game")
	}
	return nil
}

// StyleText wraps text in markup; the text is colored when drawn
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return "TITLE{" + text + "}"
	case renderer.StyleSelected:
		return "SELECTED{" + text + "}"
	case renderer.StylePreview:
		return "PREVIEW{" + text + "}"
	case renderer.StyleCursor:
		return "CURSOR{" + text + "}"
	case renderer.StyleSubtle:
		return "SUBTLE{" + text + "}"
	default:
		return text
	}
}

// FormatText formats a message; markup is kept and resolved by parseMarkup when drawn
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
		e.recalculateLayout()
	}
	return outsideWidth, outsideHeight
}

// headerHeight returns the space reserved above the board for the title and status
func (e *EbitenRenderer) headerHeight() int {
	return int(e.getUIFontSize())*3 + mapMargin
}

// recalculateLayout centers the board in the window for the current tile size
func (e *EbitenRenderer) recalculateLayout() {
	if e.game == nil {
		return
	}
	grid := e.game.Board.Grid()
	gap := e.tileSize / 16
	if gap < 2 {
		gap = 2
	}
	e.layout = renderer.Layout{
		CellWidth:  e.tileSize,
		CellHeight: e.tileSize,
		Gap:        gap,
		Cols:       grid.Width(),
		Rows:       grid.Height(),
	}.Centered(e.windowWidth, e.windowHeight-mapMargin, e.headerHeight())
	e.pointer.Layout = e.layout
}
