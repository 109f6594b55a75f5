// Package renderer defines the rendering backends' common interface, the
// message markup they share and the cell layout used for hit testing.
package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)

// FormatString formats a string with markup, styling it through StyleText.
//
// Supported functions:
//
//	GT{key}        translated text
//	SELECTED{text} selected-layer style
//	PREVIEW{text}  preview-layer style
//	CURSOR{text}   cursor style
//	SUBTLE{text}   de-emphasised text
//	TITLE{text}    heading style
func FormatString(msg string, a ...any) string {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	return ApplyMarkup(msg)
}

// ApplyMarkup resolves the markup functions in text that has already been
// formatted, such as a stored message.
func ApplyMarkup(text string) string {
	return regexpStringFunctions.ReplaceAllStringFunc(text, func(match string) string {
		parts := regexpStringFunctions.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]

		switch function {
		case "GT":
			return dynamicGet(operand)
		case "SELECTED":
			return StyleText(operand, StyleSelected)
		case "PREVIEW":
			return StyleText(operand, StylePreview)
		case "CURSOR":
			return StyleText(operand, StyleCursor)
		case "SUBTLE":
			return StyleText(operand, StyleSubtle)
		case "TITLE":
			return StyleText(operand, StyleTitle)
		default:
			return match
		}
	})
}
