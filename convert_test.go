package rascii

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// tileImage colors every pixel with the coordinates of the tile it belongs
// to: R = tx, G = ty.
func tileImage(w, h, tileW, tileH int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x / tileW), G: uint8(y / tileH), A: 255})
		}
	}
	return img
}

type countingSource struct {
	PixelSource
	reads map[image.Point]int
}

func (c *countingSource) Pixel(x, y int) (uint8, uint8, uint8) {
	c.reads[image.Pt(x, y)]++
	return c.PixelSource.Pixel(x, y)
}

func TestConvertDimensions(t *testing.T) {
	cases := []struct {
		w, h, cols, rows int
	}{
		{4, 4, 2, 2},
		{4, 4, 4, 4},
		{40, 20, 20, 10},
		{41, 23, 20, 10},
		{100, 60, 7, 3},
	}

	for _, tc := range cases {
		src := NewImageSource(solidImage(tc.w, tc.h, color.NRGBA{R: 9, G: 9, B: 9, A: 255}))
		grid, err := Convert(src, Config{Columns: tc.cols, Rows: tc.rows, Color: true})
		require.NoError(t, err)

		assert.Len(t, grid, tc.rows-2)
		for _, row := range grid {
			assert.Len(t, row, tc.cols-2)
		}
	}
}

func TestConvertInvalidDimension(t *testing.T) {
	src := NewImageSource(solidImage(10, 10, color.NRGBA{A: 255}))

	cases := []struct {
		name       string
		cols, rows int
	}{
		{"one column", 1, 5},
		{"one row", 5, 1},
		{"zero", 0, 0},
		{"negative", -3, 4},
		{"too many columns", 11, 5},
		{"too many rows", 5, 11},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := Convert(src, Config{Columns: tc.cols, Rows: tc.rows})
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, grid)
		})
	}
}

func TestConvertSolidRedColor(t *testing.T) {
	src := NewImageSource(solidImage(4, 4, color.NRGBA{R: 255, A: 255}))

	grid, err := Convert(src, Config{Columns: 4, Rows: 4, Color: true, Depth: 0})
	require.NoError(t, err)
	require.Equal(t, 2, grid.Rows())
	require.Equal(t, 2, grid.Cols())

	want := Cell{Glyph: Glyph(Luminance(RGB{R: 255}), 0), Color: RGB{R: 255}}
	assert.Equal(t, '@', want.Glyph)
	for _, row := range grid {
		for _, cell := range row {
			assert.Equal(t, want, cell)
		}
	}
}

func TestConvertSolidRedGrayscale(t *testing.T) {
	src := NewImageSource(solidImage(4, 4, color.NRGBA{R: 255, A: 255}))

	grid, err := Convert(src, Config{Columns: 4, Rows: 4, Color: false, Depth: 0})
	require.NoError(t, err)

	v := Luminance(RGB{R: 255})
	want := Cell{Glyph: Glyph(v, 0), Color: Grayscale{L: v}}
	for _, row := range grid {
		for _, cell := range row {
			assert.Equal(t, want, cell)
		}
	}
}

func TestConvertTwoColumns(t *testing.T) {
	src := NewImageSource(solidImage(10, 10, color.NRGBA{A: 255}))

	grid, err := Convert(src, Config{Columns: 2, Rows: 5})
	require.NoError(t, err)
	assert.Len(t, grid, 3)
	assert.Equal(t, 0, grid.Cols())
	for _, row := range grid {
		assert.Empty(t, row)
	}
	assert.Equal(t, "\n\n\n", grid.String())
}

func TestConvertTileGeometry(t *testing.T) {
	// 16x11 with 5x5 tiles gives 3x2 pixel tiles and leaves a remainder that
	// is never read.
	img := tileImage(16, 11, 3, 2)

	grid, err := Convert(NewImageSource(img), Config{Columns: 5, Rows: 5, Color: true})
	require.NoError(t, err)
	require.Equal(t, 3, grid.Rows())
	require.Equal(t, 3, grid.Cols())

	for r, row := range grid {
		for c, cell := range row {
			assert.Equal(t, RGB{R: uint8(c + 1), G: uint8(r + 1)}, cell.Color, "cell %d,%d", r, c)
		}
	}
}

func TestConvertSkipsOuterTiles(t *testing.T) {
	src := &countingSource{
		PixelSource: NewImageSource(solidImage(12, 8, color.NRGBA{A: 255})),
		reads:       make(map[image.Point]int),
	}

	_, err := Convert(src, Config{Columns: 4, Rows: 4})
	require.NoError(t, err)

	// 3x2 tiles, only tiles 1..2 in each axis are sampled.
	assert.Len(t, src.reads, 2*3*2*2)
	for p, n := range src.reads {
		assert.Equal(t, 1, n)
		assert.True(t, p.X >= 3 && p.X < 9, "x %d", p.X)
		assert.True(t, p.Y >= 2 && p.Y < 6, "y %d", p.Y)
	}
}

func TestConvertFlooredMean(t *testing.T) {
	// Each 2x1 tile holds (0,0,0) and (0,0,2).
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{A: 255}
			if x%2 == 1 {
				c.B = 2
			}
			img.SetNRGBA(x, y, c)
		}
	}
	src := NewImageSource(img)

	grid, err := Convert(src, Config{Columns: 4, Rows: 4, Color: true})
	require.NoError(t, err)
	assert.Equal(t, Cell{Glyph: '.', Color: RGB{B: 1}}, grid.At(0, 0))

	grid, err = Convert(src, Config{Columns: 4, Rows: 4, Color: false})
	require.NoError(t, err)
	// Luminance of (0,0,2) is 64, the floored mean with 0 is 32.
	assert.Equal(t, Cell{Glyph: '.', Color: Grayscale{L: 32}}, grid.At(0, 0))
}

func TestConvertColorModeIsUniform(t *testing.T) {
	img := tileImage(30, 30, 3, 3)

	for _, colorMode := range []bool{true, false} {
		grid, err := Convert(NewImageSource(img), Config{Columns: 10, Rows: 10, Color: colorMode})
		require.NoError(t, err)

		for _, row := range grid {
			for _, cell := range row {
				_, isRGB := cell.Color.(RGB)
				assert.Equal(t, colorMode, isRGB)
			}
		}
	}
}

func TestConvertWorkersMatchSequential(t *testing.T) {
	img := tileImage(200, 120, 7, 5)
	src := NewImageSource(img)

	for _, colorMode := range []bool{true, false} {
		cfg := Config{Columns: 25, Rows: 20, Color: colorMode, Depth: 20}

		want, err := Convert(src, cfg)
		require.NoError(t, err)

		for _, workers := range []int{2, 3, 8, 64} {
			cfg.Workers = workers
			got, err := Convert(src, cfg)
			require.NoError(t, err)
			assert.Equal(t, want, got, "workers %d", workers)
		}
	}
}

func TestConvertContextCancelled(t *testing.T) {
	src := NewImageSource(solidImage(40, 40, color.NRGBA{A: 255}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{0, 4} {
		grid, err := ConvertContext(ctx, src, Config{Columns: 10, Rows: 10, Workers: workers})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, grid)
	}
}

func TestAggregateEmptyTilePanics(t *testing.T) {
	assert.Panics(t, func() {
		aggregate(nil, true)
	})
}

func TestImageSourceOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 24))
	img.Set(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.Set(13, 23, color.RGBA{R: 4, G: 5, B: 6, A: 255})

	src := NewImageSource(img)
	assert.Equal(t, 4, src.Width())
	assert.Equal(t, 4, src.Height())

	r, g, b := src.Pixel(0, 0)
	assert.Equal(t, []uint8{1, 2, 3}, []uint8{r, g, b})
	r, g, b = src.Pixel(3, 3)
	assert.Equal(t, []uint8{4, 5, 6}, []uint8{r, g, b})
}
