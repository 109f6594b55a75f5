// Package config holds the settings a session is started with.
package config

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"tilegrid/pkg/engine/world"
	"tilegrid/pkg/game/generator"
	"tilegrid/pkg/game/tiles"
)

const (
	DefaultWidth     = 6
	DefaultHeight    = 7
	DefaultTileSize  = 64
	DefaultLocale    = "en_GB"
	DefaultGenerator = "uniform"

	MinTileSize  = 16
	MaxTileSize  = 160
	TileSizeStep = 8
)

// Renderer names accepted by Config.Renderer
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config describes the board and how it is presented
type Config struct {
	Width     int
	Height    int
	Seed      int64 // 0 picks a time-based seed
	Palette   []string
	Generator string
	Renderer  string
	TileSize  int
	Locale    string
}

// Default returns the 6x7 board with the four-image palette
func Default() Config {
	palette := tiles.DefaultPalette()
	names := make([]string, len(palette))
	for i, t := range palette {
		names[i] = string(t)
	}
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Palette:   names,
		Generator: DefaultGenerator,
		Renderer:  RendererTUI,
		TileSize:  DefaultTileSize,
		Locale:    DefaultLocale,
	}
}

// Validate checks the configuration for values a session cannot start with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if err := tiles.PaletteOf(c.Palette...).Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	if _, err := generator.ByName(c.Generator); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Renderer != RendererTUI && c.Renderer != RendererEbiten {
		return errors.Errorf("config: unknown renderer %q", c.Renderer)
	}
	if c.TileSize < MinTileSize || c.TileSize > MaxTileSize {
		return errors.Errorf("config: tile size %d not in [%d,%d]", c.TileSize, MinTileSize, MaxTileSize)
	}
	return nil
}

// ResolvedSeed returns Seed, or a time-based seed when Seed is 0
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewBoard builds the grid and fills it with the configured generator
func (c Config) NewBoard(seed int64) (*tiles.Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	grid, err := world.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	gen, err := generator.ByName(c.Generator)
	if err != nil {
		return nil, err
	}
	return gen.Generate(grid, tiles.PaletteOf(c.Palette...), rand.New(rand.NewSource(seed)))
}
