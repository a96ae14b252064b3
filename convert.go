package rascii

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Config controls a conversion.
type Config struct {
	// Columns and Rows are the number of tiles the image is split into. The
	// outer ring of tiles is dropped, so the grid has Columns-2 cells per row
	// and Rows-2 rows.
	Columns int
	Rows    int
	// Color keeps the mean RGB color of each tile. Otherwise cells hold the
	// mean brightness as Grayscale.
	Color bool
	// Depth above 10 selects FinePalette, anything else CoarsePalette.
	Depth uint8
	// Workers is the number of goroutines sampling tile rows. Values below 2
	// convert on the calling goroutine.
	Workers int
}

// Convert converts src into a grid of glyphs.
func Convert(src PixelSource, cfg Config) (Grid, error) {
	return ConvertContext(context.Background(), src, cfg)
}

// ConvertContext is like Convert but stops between tile rows once ctx is
// done.
func ConvertContext(ctx context.Context, src PixelSource, cfg Config) (Grid, error) {
	g, err := newTileGrid(src.Width(), src.Height(), cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("rascii: Convert: %w", err)
	}

	grid := make(Grid, g.outputRows())

	if cfg.Workers < 2 {
		var buf []RGB
		for ty := 1; ty < g.rows-1; ty++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			grid[ty-1], buf = convertRow(src, g, cfg, ty, buf)
		}
		return grid, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	inbox := make(chan int, cfg.Workers*2)

	eg.Go(func() error {
		defer close(inbox)
		for ty := 1; ty < g.rows-1; ty++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case inbox <- ty:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < cfg.Workers; i++ {
		eg.Go(func() error {
			var buf []RGB
			for ty := range inbox {
				grid[ty-1], buf = convertRow(src, g, cfg, ty, buf)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}

// convertRow converts tile row ty. buf is scratch space for tile pixels and
// is returned for reuse.
func convertRow(src PixelSource, g tileGrid, cfg Config, ty int, buf []RGB) ([]Cell, []RGB) {
	row := make([]Cell, g.outputCols())

	for tx := 1; tx < g.cols-1; tx++ {
		buf = g.tilePixels(src, tx, ty, buf[:0])
		avg := aggregate(buf, cfg.Color)

		row[tx-1] = Cell{
			Glyph: Glyph(Luminance(avg), cfg.Depth),
			Color: avg,
		}
	}

	return row, buf
}
