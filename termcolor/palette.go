package termcolor

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type paletteEntry struct {
	index int
	color colorful.Color
}

type palette []paletteEntry

// nearest returns the terminal index of the entry closest to c in CIE Lab.
func (p palette) nearest(c colorful.Color) int {
	best := p[0].index
	bestDist := math.Inf(1)

	for _, e := range p {
		d := c.DistanceLab(e.color)
		if d < bestDist {
			best = e.index
			bestDist = d
		}
	}

	return best
}

// ansi16 holds the xterm defaults of the 16 standard colors.
var ansi16 = func() palette {
	rgb := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}

	p := make(palette, len(rgb))
	for i, c := range rgb {
		p[i] = paletteEntry{index: i, color: toColorful(c[0], c[1], c[2])}
	}
	return p
}()

// xterm256 holds the 6x6x6 color cube and the gray ramp. The first 16
// entries depend on the terminal theme and are left out.
var xterm256 = func() palette {
	levels := [6]uint8{0, 95, 135, 175, 215, 255}

	p := make(palette, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, paletteEntry{
					index: 16 + 36*r + 6*g + b,
					color: toColorful(levels[r], levels[g], levels[b]),
				})
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p = append(p, paletteEntry{index: 232 + i, color: toColorful(v, v, v)})
	}

	return p
}()
