// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"tilegrid/pkg/game/highlight"
	"tilegrid/pkg/game/tiles"
)

const boardDumpFilename = "board.txt"

// typeSymbol returns the letter for a palette entry: A for the first type, B for the second, ...
func typeSymbol(p tiles.Palette, t tiles.Type) rune {
	i := p.IndexOf(t)
	if i < 0 {
		return '?'
	}
	if i >= 26 {
		return '#'
	}
	return rune('A' + i)
}

// markSymbol returns the mark-layer symbol for a cell
func markSymbol(layers *highlight.Layers, index int) rune {
	if layers == nil {
		return '.'
	}
	selected, preview := layers.Marks(index)
	switch {
	case selected && preview:
		return '#'
	case selected:
		return '*'
	case preview:
		return '+'
	default:
		return '.'
	}
}

// writeGrid writes one symbol per cell, one line per row
func writeGrid(buf *bytes.Buffer, board *tiles.Board, symbol func(index int) rune) {
	grid := board.Grid()
	grid.ForEachCell(func(index, _, col int) {
		buf.WriteRune(symbol(index))
		if col == grid.Width()-1 {
			buf.WriteByte('\n')
		}
	})
}

// WriteBoard writes a debug dump of the board: metadata, legend, the type
// grid and, when layers is non-nil, the mark grid.
func WriteBoard(w io.Writer, board *tiles.Board, layers *highlight.Layers) error {
	var buf bytes.Buffer
	palette := board.Palette()
	counts := board.Counts()

	fmt.Fprintln(&buf, "=== BOARD DUMP ===")
	fmt.Fprintln(&buf, "")
	fmt.Fprintln(&buf, "--- Metadata ---")
	fmt.Fprintf(&buf, "width: %d\n", board.Grid().Width())
	fmt.Fprintf(&buf, "height: %d\n", board.Grid().Height())
	fmt.Fprintf(&buf, "cells: %d\n", board.Grid().Size())
	fmt.Fprintln(&buf, "coordinate_system: index = row*width + col (0-based)")
	fmt.Fprintln(&buf, "")

	fmt.Fprintln(&buf, "--- Legend ---")
	for _, t := range palette {
		fmt.Fprintf(&buf, "%c = %s (%d cells)\n", typeSymbol(palette, t), t, counts[t])
	}
	fmt.Fprintln(&buf, "")

	fmt.Fprintln(&buf, "--- Types ---")
	writeGrid(&buf, board, func(index int) rune {
		return typeSymbol(palette, board.TypeOf(index))
	})

	if layers != nil {
		fmt.Fprintln(&buf, "")
		fmt.Fprintln(&buf, "--- Marks (* selected, + preview, # both) ---")
		writeGrid(&buf, board, func(index int) rune {
			return markSymbol(layers, index)
		})
		fmt.Fprintf(&buf, "selected: %v\n", layers.Selected().Indices())
		fmt.Fprintf(&buf, "preview: %v\n", layers.Preview().Indices())
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteRegion writes the region around start: its type, size, member
// indices and a grid with the region's cells drawn as their type letter.
func WriteRegion(w io.Writer, board *tiles.Board, start int) error {
	region, err := board.Region(start)
	if err != nil {
		return err
	}
	palette := board.Palette()
	t := board.TypeOf(start)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "start: %d\n", start)
	fmt.Fprintf(&buf, "type: %s (%c)\n", t, typeSymbol(palette, t))
	fmt.Fprintf(&buf, "size: %d\n", region.Size())
	fmt.Fprintf(&buf, "cells: %v\n", region.Indices())
	writeGrid(&buf, board, func(index int) rune {
		if region.Has(index) {
			return typeSymbol(palette, t)
		}
		return '.'
	})

	_, err = w.Write(buf.Bytes())
	return err
}

// DumpBoardToFile writes WriteBoard's output to board.txt in the working
// directory and returns the absolute path.
func DumpBoardToFile(board *tiles.Board, layers *highlight.Layers) (string, error) {
	absPath, err := filepath.Abs(boardDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", absPath)
	}
	defer f.Close()

	if err := WriteBoard(f, board, layers); err != nil {
		return "", errors.Wrapf(err, "writing %s", absPath)
	}
	return absPath, nil
}
