package main

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/tmpim/rascii"
	"github.com/tmpim/rascii/imageio"
	"github.com/tmpim/rascii/prepare"
	"github.com/tmpim/rascii/screen"
)

// ViewCmd shows one image full screen until a key quits.
type ViewCmd struct {
	Target     `embed:""`
	Filter     Filter `embed:"" prefix:"filter."`
	Background bool   `help:"Also set the background color." short:"b" env:"RASCII_BACKGROUND"`

	Path string `arg:"" help:"Image to show." type:"existingfile"`
}

// Run is called by Kong when the view command is executed.
func (v *ViewCmd) Run(logger *slog.Logger) error {
	img, err := imageio.LoadImage(v.Path)
	if err != nil {
		return err
	}

	grid, err := rascii.Convert(rascii.NewImageSource(prepare.Apply(img, v.Filter.options())), v.config())
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	logger.Debug("showing image", "path", v.Path, "cols", grid.Cols(), "rows", grid.Rows())
	return screen.Run(s, grid, v.Background)
}
