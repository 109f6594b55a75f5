// Package tiles holds the tile palette and the board of randomly chosen tile
// types that region queries run against.
package tiles

import (
	"math/rand"
	"path"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyPalette indicates a palette with no tile types.
	ErrEmptyPalette = errors.New("tiles: palette must contain at least one type")
	// ErrDuplicateType indicates a palette listing the same type twice.
	ErrDuplicateType = errors.New("tiles: palette types must be unique")
)

// Type is the label shared by tiles that belong to the same region.
// In the default palette it is the path of the tile image.
type Type string

// Label returns a short display name: the file stem for image paths
// ("img/buba.png" -> "buba"), or the type itself otherwise.
func (t Type) Label() string {
	base := path.Base(string(t))
	if base == "." || base == "/" {
		return string(t)
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// Palette is the finite, ordered set of types tiles are drawn from.
type Palette []Type

// DefaultPalette returns the four tile images of the default board.
func DefaultPalette() Palette {
	return Palette{
		"img/buba.png",
		"img/chirva.png",
		"img/cresta.png",
		"img/pika.png",
	}
}

// PaletteOf builds a palette from plain strings
func PaletteOf(names ...string) Palette {
	p := make(Palette, len(names))
	for i, n := range names {
		p[i] = Type(n)
	}
	return p
}

// Validate checks that the palette is non-empty and has no duplicates
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[Type]bool, len(p))
	for _, t := range p {
		if seen[t] {
			return errors.Wrapf(ErrDuplicateType, "%q", t)
		}
		seen[t] = true
	}
	return nil
}

// IndexOf returns the position of t in the palette, or -1
func (p Palette) IndexOf(t Type) int {
	for i, pt := range p {
		if pt == t {
			return i
		}
	}
	return -1
}

// Random returns a type chosen uniformly from the palette
func (p Palette) Random(rng *rand.Rand) Type {
	return p[rng.Intn(len(p))]
}
