package renderer

import (
	"tilegrid/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleSelected
	StylePreview
	StyleCursor
	StyleSubtle
)

// Renderer defines the interface for rendering backends.
// Implementations include the terminal (bubbletea) and Ebiten renderers.
type Renderer interface {
	// Init prepares the renderer (colors, fonts, window)
	Init() error

	// Run shows the board and feeds pointer events into the session until
	// the user quits
	Run(g *state.Game) error

	// StyleText applies a style to text and returns the styled string.
	// For the TUI this applies ANSI colors; the GUI returns the text as-is.
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Run runs the current renderer
func Run(g *state.Game) error {
	if Current != nil {
		return Current.Run(g)
	}
	return nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return FormatString(msg, args...)
}
