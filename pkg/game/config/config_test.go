package config

import (
	"errors"
	"testing"

	"tilegrid/pkg/game/tiles"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if c.Width*c.Height != 42 {
		t.Errorf("default grid has %d cells, want 42", c.Width*c.Height)
	}
	if len(c.Palette) != 4 {
		t.Errorf("default palette has %d types, want 4", len(c.Palette))
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":        func(c *Config) { c.Width = 0 },
		"negative height":   func(c *Config) { c.Height = -1 },
		"empty palette":     func(c *Config) { c.Palette = nil },
		"unknown renderer":  func(c *Config) { c.Renderer = "sdl" },
		"unknown generator": func(c *Config) { c.Generator = "maze" },
		"tiny tiles":        func(c *Config) { c.TileSize = 1 },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", name)
		}
	}
}

func TestValidate_DuplicatePaletteIsMatchable(t *testing.T) {
	c := Default()
	c.Palette = []string{"a", "a"}
	if err := c.Validate(); !errors.Is(err, tiles.ErrDuplicateType) {
		t.Errorf("Validate() = %v, want ErrDuplicateType", err)
	}
}

func TestNewBoard_SameSeedSameBoard(t *testing.T) {
	c := Default()
	a, err := c.NewBoard(99)
	if err != nil {
		t.Fatalf("NewBoard error: %v", err)
	}
	b, _ := c.NewBoard(99)
	for i := 0; i < a.Grid().Size(); i++ {
		if a.TypeOf(i) != b.TypeOf(i) {
			t.Fatalf("cell %d differs between boards with the same seed", i)
		}
	}
}

func TestResolvedSeed(t *testing.T) {
	c := Default()
	c.Seed = 5
	if c.ResolvedSeed() != 5 {
		t.Errorf("ResolvedSeed() = %d, want 5", c.ResolvedSeed())
	}
	c.Seed = 0
	if c.ResolvedSeed() == 0 {
		t.Error("ResolvedSeed() = 0 for an unset seed")
	}
}

func TestNewBoard_Generators(t *testing.T) {
	for _, name := range []string{"uniform", "bsp", "walker"} {
		c := Default()
		c.Generator = name
		b, err := c.NewBoard(1)
		if err != nil {
			t.Fatalf("%s: NewBoard error: %v", name, err)
		}
		if b.Grid().Size() != 42 {
			t.Errorf("%s: board has %d cells, want 42", name, b.Grid().Size())
		}
	}
}
