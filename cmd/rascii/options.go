package main

import (
	"runtime"

	"github.com/tmpim/rascii"
	"github.com/tmpim/rascii/prepare"
)

// Target holds the conversion flags shared by every command.
type Target struct {
	Columns int   `help:"Number of tile columns." short:"c" default:"80" env:"RASCII_COLUMNS"`
	Rows    int   `help:"Number of tile rows." short:"r" default:"40" env:"RASCII_ROWS"`
	Color   bool  `help:"Keep tile colors." default:"true" negatable:"" env:"RASCII_COLOR"`
	Depth   uint8 `help:"Palette depth, above 10 selects the fine palette." short:"d" default:"0" env:"RASCII_DEPTH"`
	Workers int   `help:"Conversion workers, 0 uses one per CPU." default:"0" env:"RASCII_WORKERS"`
}

func (t Target) config() rascii.Config {
	workers := t.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return rascii.Config{
		Columns: t.Columns,
		Rows:    t.Rows,
		Color:   t.Color,
		Depth:   t.Depth,
		Workers: workers,
	}
}

// Filter holds the image filter flags.
type Filter struct {
	Width      int     `help:"Resize the image to this width first." default:"0"`
	Height     int     `help:"Resize the image to this height first." default:"0"`
	Contrast   float32 `help:"Contrast adjustment in percent." default:"0"`
	Brightness float32 `help:"Brightness adjustment in percent." default:"0"`
	Gamma      float32 `help:"Gamma correction." default:"1"`
	Blur       float32 `help:"Gaussian blur sigma." default:"0"`
	Invert     bool    `help:"Invert the image."`
}

func (f Filter) options() prepare.Options {
	return prepare.Options{
		Width:      f.Width,
		Height:     f.Height,
		Contrast:   f.Contrast,
		Brightness: f.Brightness,
		Gamma:      f.Gamma,
		Blur:       f.Blur,
		Invert:     f.Invert,
	}
}
