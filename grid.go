package rascii

import "strings"

// Cell is one glyph of the output together with the color of its tile.
// Color is never nil in a grid returned by Convert.
type Cell struct {
	Glyph rune
	Color Color
}

// Grid is the output of a conversion, rows top to bottom and cells left to
// right.
type Grid [][]Cell

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of cells in a row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at the given row and column.
func (g Grid) At(row, col int) Cell {
	return g[row][col]
}

// String returns the glyphs of the grid without any color, one line per row.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))

	for _, row := range g {
		for _, cell := range row {
			sb.WriteRune(cell.Glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
