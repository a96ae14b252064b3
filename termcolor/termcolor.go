// Package termcolor provides color callbacks that write ANSI escape
// sequences for the renderer.
package termcolor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tmpim/rascii"
)

// Mode is the color space of the terminal.
type Mode int

// Supported modes.
const (
	None Mode = iota
	ANSI16
	ANSI256
	TrueColor
)

const reset = "\x1b[0m"

var modeNames = map[Mode]string{
	None:      "none",
	ANSI16:    "16",
	ANSI256:   "256",
	TrueColor: "truecolor",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "":
		return None, nil
	case "16", "4bit", "ansi":
		return ANSI16, nil
	case "256", "8bit":
		return ANSI256, nil
	case "truecolor", "24bit", "24", "full":
		return TrueColor, nil
	default:
		return None, fmt.Errorf("termcolor: unknown color mode %q", s)
	}
}

// Callbacks returns the foreground and background callbacks for mode, both
// writing to w. bg is nil unless background is set, and both are nil for
// None. Write errors are ignored; the renderer reports them when it writes
// the glyph that follows.
func Callbacks(w io.Writer, mode Mode, background bool) (fg, bg rascii.ColorFunc) {
	var seq func(r, g, b uint8, background bool) string

	switch mode {
	case TrueColor:
		seq = trueColorSeq
	case ANSI256:
		seq = newPaletteSeq(xterm256, ansi256Seq)
	case ANSI16:
		seq = newPaletteSeq(ansi16, ansi16Seq)
	default:
		return nil, nil
	}

	fg = func(r, g, b uint8) {
		io.WriteString(w, seq(r, g, b, false))
	}

	if background {
		bg = func(r, g, b uint8) {
			io.WriteString(w, seq(r, g, b, true))
		}
	}

	return fg, bg
}

// Reset writes the sequence restoring the default colors.
func Reset(w io.Writer) error {
	_, err := io.WriteString(w, reset)
	return err
}

func trueColorSeq(r, g, b uint8, background bool) string {
	if background {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

func ansi256Seq(index int, background bool) string {
	if background {
		return "\x1b[48;5;" + strconv.Itoa(index) + "m"
	}
	return "\x1b[38;5;" + strconv.Itoa(index) + "m"
}

func ansi16Seq(index int, background bool) string {
	code := 30 + index
	if index >= 8 {
		code = 90 + index - 8
	}
	if background {
		code += 10
	}
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// newPaletteSeq returns a sequence function that maps colors to the nearest
// palette entry. Lookups are cached, the callbacks are never called
// concurrently.
func newPaletteSeq(p palette, format func(index int, background bool) string) func(r, g, b uint8, background bool) string {
	cache := make(map[rascii.RGB]int)

	return func(r, g, b uint8, background bool) string {
		key := rascii.RGB{R: r, G: g, B: b}
		index, ok := cache[key]
		if !ok {
			index = p.nearest(toColorful(r, g, b))
			cache[key] = index
		}
		return format(index, background)
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
