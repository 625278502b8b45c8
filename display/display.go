// Package display draws boards for people playing in a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"chomp/game"
)

const Title = `
+===========+
|           |
|+-+-+-+-+-+|
||C|h|o|m|p||
|+-+-+-+-+-+|
|           |
+===========+
`

const (
	alive    = "#"
	eaten    = "."
	poison   = "P"
	clearSeq = "\033[H\033[2J"
)

// Render writes the alive part of the board as a grid, highest row first.
func Render(w io.Writer, b *game.Board) error {
	if b.IsEmpty() {
		_, err := fmt.Fprintln(w, "(empty board)")
		return err
	}
	// Rows and columns start at the poison square, which is the lower bound
	// of every staircase.
	maxRow, err := b.MaxRow()
	if err != nil {
		return err
	}
	maxColumn, err := b.MaxColumn()
	if err != nil {
		return err
	}
	width := len(fmt.Sprint(maxRow))

	var sb strings.Builder
	for r := maxRow; r >= 1; r-- {
		fmt.Fprintf(&sb, "%*d ", width, r)
		for c := 0; c <= maxColumn; c++ {
			p := game.Position{Column: c, Row: r}
			cell := eaten
			switch {
			case b.Contains(p) && p.IsPoison():
				cell = poison
			case b.Contains(p):
				cell = alive
			}
			sb.WriteString(" " + cell)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(" ", width+1))
	alphabet := b.Size().Alphabet
	for c := 0; c <= maxColumn; c++ {
		letter, err := alphabet.Letter(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, " %c", letter)
	}
	sb.WriteString("\n")

	_, err = io.WriteString(w, sb.String())
	return err
}

// Clear clears an ANSI terminal.
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearSeq)
	return err
}
