package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mattn/go-colorable"

	"github.com/tmpim/rascii"
	"github.com/tmpim/rascii/imageio"
	"github.com/tmpim/rascii/prepare"
	"github.com/tmpim/rascii/termcolor"
)

// ConvertCmd prints images to stdout.
type ConvertCmd struct {
	Target     `embed:""`
	Filter     Filter `embed:"" prefix:"filter."`
	Mode       string `help:"Color mode: none, 16, 256, truecolor." default:"truecolor" short:"m" env:"RASCII_MODE"`
	Background bool   `help:"Also set the background color." short:"b" env:"RASCII_BACKGROUND"`

	Paths []string `arg:"" help:"Images to convert." type:"existingfile"`
}

// Run is called by Kong when the convert command is executed.
func (c *ConvertCmd) Run(logger *slog.Logger) error {
	return c.run(logger, colorable.NewColorableStdout())
}

func (c *ConvertCmd) run(logger *slog.Logger, stdout io.Writer) error {
	mode, err := termcolor.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	failed := 0
	for _, path := range c.Paths {
		if err := c.convert(logger, out, path, mode); err != nil {
			logger.Error("failed to convert image", "path", path, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(c.Paths))
	}
	return nil
}

func (c *ConvertCmd) convert(logger *slog.Logger, out *bufio.Writer, path string, mode termcolor.Mode) error {
	start := time.Now()

	img, err := imageio.LoadImage(path)
	if err != nil {
		return err
	}

	src := rascii.NewImageSource(prepare.Apply(img, c.Filter.options()))
	grid, err := rascii.Convert(src, c.config())
	if err != nil {
		return err
	}

	logger.Debug("converted image", "path", path,
		"width", src.Width(), "height", src.Height(),
		"cols", grid.Cols(), "rows", grid.Rows(), "took", time.Since(start))

	fg, bg := termcolor.Callbacks(out, mode, c.Background)
	if err := rascii.Render(grid, out, fg, bg); err != nil {
		return err
	}
	if fg != nil {
		if err := termcolor.Reset(out); err != nil {
			return err
		}
	}

	return out.Flush()
}
