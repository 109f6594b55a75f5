package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return errors.Wrap(err, "loading regular font")
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return errors.Wrap(err, "loading bold font")
	}
	e.sansFontSource = sans
	e.sansBoldFontSource = bold
	return nil
}

// getTileFontSize returns the font size for tile labels, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / 64.0
}

// getUIFontSize returns the font size for UI text
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := e.getTileFontSize()
	if size < 12 {
		size = 12
	}
	return size
}

// getTileFontFace returns a cached font face for tile labels
func (e *EbitenRenderer) getTileFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
		e.cachedTitleFace = nil
	}
	return e.cachedSansFace
}

// getTitleFontFace returns a bold face 2pt larger than UI text
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil || e.cachedTitleFace.Size != e.getUIFontSize()+2 {
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   e.getUIFontSize() + 2,
		}
	}
	return e.cachedTitleFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedTileFace = nil
	e.cachedSansFace = nil
	e.cachedTitleFace = nil
}
