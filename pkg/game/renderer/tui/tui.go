// Package tui renders the board in a terminal. Mouse clicks and motion are
// read through bubbletea; cells are colored with gookit/color.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gookit/color"
	"github.com/hauke96/sigolo/v2"
	"github.com/leonelquinteros/gotext"

	"tilegrid/pkg/engine/input"
	"tilegrid/pkg/engine/terminal"
	"tilegrid/pkg/game/gameplay"
	"tilegrid/pkg/game/renderer"
	"tilegrid/pkg/game/state"
)

// Layout margins in character cells
const (
	GridTop    = 2 // title + blank line
	GridLeft   = 2
	CellHeight = 1
	CellGap    = 1
)

// Background colors assigned to palette entries, in palette order
var typeColors = []color.Color{
	color.BgBlue,
	color.BgGreen,
	color.BgYellow,
	color.BgMagenta,
	color.BgCyan,
	color.BgRed,
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorTitle    color.Style
	colorSelected color.Style
	colorPreview  color.Style
	colorCursor   color.Style
	colorSubtle   color.Style

	options []tea.ProgramOption
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, program options)
func (t *TUIRenderer) Init() error {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorSelected = color.Style{color.FgWhite, color.OpBold}
	t.colorPreview = color.Style{color.FgYellow}
	t.colorCursor = color.Style{color.OpReverse}
	t.colorSubtle = color.Style{color.FgGray}

	t.options = []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSelected:
		return t.colorSelected.Sprint(text)
	case renderer.StylePreview:
		return t.colorPreview.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(msg, args...)
}

// Run starts the bubbletea program and blocks until the user quits
func (t *TUIRenderer) Run(g *state.Game) error {
	if !terminal.IsInteractive() {
		sigolo.Debugf("stdout is not a terminal, mouse input may be unavailable")
	}
	width, height := terminal.GetSize()
	m := newModel(t, g, width, height)

	_, err := tea.NewProgram(m, t.options...).Run()
	return err
}

// model is the bubbletea model. Events are applied to the session as they
// arrive; bubbletea delivers messages one at a time, so they keep their order.
type model struct {
	r       *TUIRenderer
	game    *state.Game
	layout  renderer.Layout
	pointer *renderer.Pointer
	width   int
	height  int
}

func newModel(r *TUIRenderer, g *state.Game, width, height int) *model {
	m := &model{r: r, game: g, pointer: renderer.NewPointer(input.DeviceMouse, renderer.Layout{})}
	m.resize(width, height)
	return m
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	grid := m.game.Board.Grid()
	cols := grid.Width()
	m.layout = renderer.Layout{
		OriginX:    GridLeft,
		OriginY:    GridTop,
		CellWidth:  terminal.CellWidthFor(width-2*GridLeft-(cols-1)*CellGap, cols),
		CellHeight: CellHeight,
		Gap:        CellGap,
		Cols:       cols,
		Rows:       grid.Height(),
	}
	m.pointer.Layout = m.layout
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		for _, ev := range m.pointerEvents(msg) {
			m.apply(ev)
		}

	case tea.KeyMsg:
		action := input.MapToAction(msg.String())
		if ev, ok := gameplay.ProcessAction(m.game, action); ok {
			m.apply(ev)
		}
		if m.game.QuitRequested() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// pointerEvents turns a mouse message into pointer events. Only a left
// button press is a click; motion with or without a button held is hover.
// A click also moves the keyboard cursor to the clicked cell.
func (m *model) pointerEvents(msg tea.MouseMsg) []input.Event {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		ev, ok := m.pointer.Press(msg.X, msg.Y)
		if !ok {
			return nil
		}
		m.game.SetCursor(ev.Index)
		return []input.Event{ev}

	case tea.MouseActionMotion:
		if ev, ok := m.pointer.Move(msg.X, msg.Y); ok {
			return []input.Event{ev}
		}
	}
	return nil
}

func (m *model) apply(ev input.Event) {
	if _, err := m.game.Handle(ev); err != nil {
		sigolo.Debugf("TUI event %s rejected: %v", ev, err)
	}
}

func (m *model) View() string {
	snap := m.game.Snapshot()
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", GridLeft))
	sb.WriteString(m.r.StyleText(gotext.Get("Tile regions"), renderer.StyleTitle))
	sb.WriteString("\n\n")

	grid := snap.Board.Grid()
	for row := 0; row < grid.Height(); row++ {
		sb.WriteString(strings.Repeat(" ", m.layout.OriginX))
		for col := 0; col < grid.Width(); col++ {
			if col > 0 {
				sb.WriteString(strings.Repeat(" ", m.layout.Gap))
			}
			sb.WriteString(m.renderCell(snap, row*grid.Width()+col))
		}
		sb.WriteString("\n")
		if row < grid.Height()-1 {
			sb.WriteString(strings.Repeat("\n", m.layout.Gap))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusLine(snap))
	sb.WriteString("\n")
	m.writeMessages(&sb, snap)
	sb.WriteString(m.r.StyleText(gotext.Get("click to select, hover to preview, arrows + enter, q to quit"), renderer.StyleSubtle))
	sb.WriteString("\n")
	return sb.String()
}

// renderCell draws one tile: the type's label on its palette color, framed by
// brackets when selected and dots when previewed.
func (m *model) renderCell(snap state.Snapshot, index int) string {
	t := snap.Board.TypeOf(index)
	selected, preview := snap.Marks(index)

	inner := m.layout.CellWidth - 2
	label := []rune(t.Label())
	if len(label) > inner {
		label = label[:inner]
	}
	text := string(label) + strings.Repeat(" ", inner-len(label))

	left, right := " ", " "
	switch {
	case selected:
		left, right = "[", "]"
	case preview:
		left, right = "·", "·"
	}

	style := color.Style{color.FgBlack, typeColor(snap.Board.Palette().IndexOf(t))}
	if selected {
		style = append(style, color.OpBold)
	}
	if preview {
		style = append(style, color.OpUnderscore)
	}
	if index == snap.Cursor {
		style = append(style, color.OpReverse)
	}
	return style.Sprint(left + text + right)
}

func typeColor(paletteIndex int) color.Color {
	if paletteIndex < 0 {
		paletteIndex = 0
	}
	return typeColors[paletteIndex%len(typeColors)]
}

func (m *model) statusLine(snap state.Snapshot) string {
	hovered := m.r.StyleText("-", renderer.StyleSubtle)
	if t := snap.HoveredType(); t != "" {
		hovered = m.r.StyleText(t.Label(), renderer.StylePreview)
	}
	return fmt.Sprintf("%s%s  %s  %s",
		strings.Repeat(" ", GridLeft),
		gotext.Get("Hover: %s", hovered),
		gotext.Get("Preview: %d", snap.PreviewSize),
		m.r.StyleText(gotext.Get("Selected: %d", snap.SelectedSize), renderer.StyleSelected),
	)
}

// writeMessages renders the message log pane
func (m *model) writeMessages(sb *strings.Builder, snap state.Snapshot) {
	width := m.width
	if width <= 0 {
		width = terminal.DefaultWidth
	}

	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	sb.WriteString(m.r.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))
	sb.WriteString("\n")
	if len(snap.Messages) == 0 {
		sb.WriteString(m.r.StyleText("  "+gotext.Get("(no messages)"), renderer.StyleSubtle))
		sb.WriteString("\n")
	}
	for _, msg := range snap.Messages {
		sb.WriteString("  " + renderer.ApplyMarkup(msg) + "\n")
	}
	sb.WriteString(m.r.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
	sb.WriteString("\n")
}
