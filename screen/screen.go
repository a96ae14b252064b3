// Package screen shows a converted grid on a full screen terminal.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tmpim/rascii"
)

// Show draws grid in the top left corner of s. RGB cells are drawn in their
// color, and also as background when background is set. Grayscale cells use
// the default style.
func Show(s tcell.Screen, grid rascii.Grid, background bool) {
	s.Clear()

	for y, row := range grid {
		for x, cell := range row {
			s.SetContent(x, y, cell.Glyph, nil, cellStyle(cell, background))
		}
	}

	s.Show()
}

func cellStyle(cell rascii.Cell, background bool) tcell.Style {
	c, ok := cell.Color.(rascii.RGB)
	if !ok {
		return tcell.StyleDefault
	}

	color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	style := tcell.StyleDefault.Foreground(color)
	if background {
		style = style.Background(color)
	}

	return style
}

// Run initializes s, shows grid and blocks until the user quits with Esc,
// q or Ctrl-C. The screen is finalized before returning.
func Run(s tcell.Screen, grid rascii.Grid, background bool) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	Show(s, grid, background)

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
			Show(s, grid, background)
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
