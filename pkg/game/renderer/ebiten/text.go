package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var regexpMarkup = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// parseMarkup splits a message into colored segments. Plain text uses
// colorText; unknown functions are drawn as-is.
func parseMarkup(msg string) []textSegment {
	segments := make([]textSegment, 0)
	last := 0

	for _, loc := range regexpMarkup.FindAllStringSubmatchIndex(msg, -1) {
		if loc[0] > last {
			segments = append(segments, textSegment{text: msg[last:loc[0]], color: colorText})
		}
		function, operand := msg[loc[2]:loc[3]], msg[loc[4]:loc[5]]

		switch function {
		case "GT":
			segments = append(segments, textSegment{text: dynamicGet(operand), color: colorText})
		case "TITLE":
			segments = append(segments, textSegment{text: operand, color: colorText})
		case "SELECTED":
			segments = append(segments, textSegment{text: operand, color: colorSelected})
		case "PREVIEW":
			segments = append(segments, textSegment{text: operand, color: colorPreview})
		case "CURSOR":
			segments = append(segments, textSegment{text: operand, color: colorCursor})
		case "SUBTLE":
			segments = append(segments, textSegment{text: operand, color: colorSubtle})
		default:
			segments = append(segments, textSegment{text: msg[loc[0]:loc[1]], color: colorText})
		}
		last = loc[1]
	}

	if last < len(msg) {
		segments = append(segments, textSegment{text: msg[last:], color: colorText})
	}
	return segments
}

// drawColoredTextWithFace draws text with a specific color and font face.
// Uses the face's size for baseline offset so different font sizes position correctly.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)+face.Size)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawCenteredText draws text centered in a w x h box at (x, y)
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, x, y, w, h int, col color.Color, face *text.GoTextFace) {
	tw, th := text.Measure(str, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(w)-tw)/2, float64(y)+(float64(h)-th)/2)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y)+face.Size)
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}
