package ebiten

import (
	"image/color"

	"tilegrid/pkg/game/config"
)

// Color palette for the board
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for the board area
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTileText        = color.RGBA{20, 20, 30, 255}    // Labels on tiles
	colorSelected        = color.RGBA{255, 255, 255, 255} // Selection outline
	colorPreview         = color.RGBA{255, 220, 100, 255} // Preview outline
	colorPreviewOverlay  = color.RGBA{255, 220, 100, 70}  // Translucent preview wash
	colorCursor          = color.RGBA{0, 255, 100, 255}   // Keyboard cursor
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Tile fill colors, assigned to palette entries in order
var tileColors = []color.RGBA{
	{100, 150, 255, 255}, // Blue
	{100, 220, 130, 255}, // Green
	{255, 200, 100, 255}, // Orange
	{220, 170, 255, 255}, // Purple
	{100, 220, 230, 255}, // Cyan
	{255, 120, 120, 255}, // Red
}

// Tile size constraints
const (
	minTileSize  = config.MinTileSize
	maxTileSize  = config.MaxTileSize
	tileSizeStep = config.TileSizeStep
	baseFontSize = 16.0 // Base font size at a 64px tile
)

// Layout spacing in pixels
const (
	mapMargin     = 20
	selectedWidth = 4
	previewWidth  = 2
	cursorWidth   = 2
)

// tileColor returns the fill color for a palette index
func tileColor(paletteIndex int) color.RGBA {
	if paletteIndex < 0 {
		paletteIndex = 0
	}
	return tileColors[paletteIndex%len(tileColors)]
}
