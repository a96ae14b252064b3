package rascii

import (
	"fmt"
)

// tileGrid is the geometry of a conversion. Tile (tx, ty) covers the pixels
// [tx*tileW, tx*tileW+tileW) x [ty*tileH, ty*tileH+tileH).
type tileGrid struct {
	cols, rows   int
	tileW, tileH int
}

func newTileGrid(width, height, cols, rows int) (tileGrid, error) {
	if cols < 2 || rows < 2 {
		return tileGrid{}, fmt.Errorf("%w: target of %dx%d tiles leaves no tiles after trimming",
			ErrInvalidDimension, cols, rows)
	}

	g := tileGrid{
		cols:  cols,
		rows:  rows,
		tileW: width / cols,
		tileH: height / rows,
	}

	if g.tileW == 0 || g.tileH == 0 {
		return tileGrid{}, fmt.Errorf("%w: %dx%d image is too small for %dx%d tiles",
			ErrInvalidDimension, width, height, cols, rows)
	}

	return g, nil
}

// outputCols returns the number of cells per row. The first and last tile
// column are never sampled.
func (g tileGrid) outputCols() int {
	return g.cols - 2
}

// outputRows returns the number of rows. The first and last tile row are
// never sampled.
func (g tileGrid) outputRows() int {
	return g.rows - 2
}

// tilePixels appends the pixels of tile (tx, ty) to buf in row-major order.
func (g tileGrid) tilePixels(src PixelSource, tx, ty int, buf []RGB) []RGB {
	x0 := tx * g.tileW
	y0 := ty * g.tileH

	for y := y0; y < y0+g.tileH; y++ {
		for x := x0; x < x0+g.tileW; x++ {
			r, gr, b := src.Pixel(x, y)
			buf = append(buf, RGB{R: r, G: gr, B: b})
		}
	}

	return buf
}

// aggregate reduces the pixels of a tile to one color using floored integer
// means. In grayscale mode each pixel is mapped through Luminance first.
func aggregate(pixels []RGB, colorMode bool) Color {
	if len(pixels) == 0 {
		panic("rascii: aggregate: empty tile")
	}

	n := uint64(len(pixels))

	if colorMode {
		var r, g, b uint64
		for _, p := range pixels {
			r += uint64(p.R)
			g += uint64(p.G)
			b += uint64(p.B)
		}

		return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
	}

	var l uint64
	for _, p := range pixels {
		l += uint64(Luminance(p))
	}

	return Grayscale{L: uint8(l / n)}
}
