package rascii

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// ColorFunc sets the terminal color before a glyph is written. It is called
// with the color of the cell as decomposed by Color.RGB.
type ColorFunc func(r, g, b uint8)

// Render writes the grid to w one row per line. For every cell fg is called
// first, then bg, then the glyph is written. bg is only called when fg is
// set. Either callback may be nil. Rendering with a callback panics on a
// cell without a color; grids from Convert always have one.
//
// Callbacks usually write escape sequences to the same writer, so Render
// does not buffer w.
func Render(grid Grid, w io.Writer, fg, bg ColorFunc) error {
	var glyph [utf8.UTFMax]byte

	for _, row := range grid {
		for _, cell := range row {
			if fg != nil {
				if cell.Color == nil {
					panic("rascii: Render: cell has no color")
				}
				r, g, b := cell.Color.RGB()
				fg(r, g, b)
				if bg != nil {
					bg(r, g, b)
				}
			}

			n := utf8.EncodeRune(glyph[:], cell.Glyph)
			if _, err := w.Write(glyph[:n]); err != nil {
				return fmt.Errorf("rascii: Render: %w", err)
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("rascii: Render: %w", err)
		}
	}

	return nil
}

// WriteTo writes the glyphs of the grid to w without color. The count is
// the number of bytes w accepted.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	wr := bufio.NewWriter(cw)

	if err := Render(g, wr, nil, nil); err != nil {
		return cw.n, err
	}

	if err := wr.Flush(); err != nil {
		return cw.n, fmt.Errorf("rascii: WriteTo: %w", err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
