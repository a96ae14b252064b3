package rascii

import "math"

// Gamma is the exponent applied to each raw 0-255 channel value before the
// Rec. 709 weighting. Channels are not normalized to [0, 1] first.
const Gamma = 2.2

// Color is the color of a tile. It is either an RGB or a Grayscale value.
type Color interface {
	// RGB decomposes the color for the color callbacks. Grayscale colors
	// decompose to black.
	RGB() (r, g, b uint8)
	isColor()
}

// RGB is a three channel color.
type RGB struct {
	R, G, B uint8
}

// Grayscale is a single brightness value.
type Grayscale struct {
	L uint8
}

func (RGB) isColor()       {}
func (Grayscale) isColor() {}

// RGB returns the channels of c.
func (c RGB) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// RGB returns black. Callbacks only take three channel colors and gray
// cells are not promoted to a gray triple.
func (c Grayscale) RGB() (r, g, b uint8) {
	return 0, 0, 0
}

// Luminance returns the perceptual brightness of c.
func Luminance(c Color) uint8 {
	switch c := c.(type) {
	case Grayscale:
		return c.L
	case RGB:
		return rgbLuminance(c.R, c.G, c.B)
	default:
		panic("rascii: Luminance: unknown color type")
	}
}

func rgbLuminance(r, g, b uint8) uint8 {
	rlin := math.Pow(float64(r), Gamma)
	glin := math.Pow(float64(g), Gamma)
	blin := math.Pow(float64(b), Gamma)

	y := 0.2126*rlin + 0.7152*glin + 0.0722*blin

	return saturate(116.0*math.Pow(y, 1.0/3.0) - 16.0)
}

// saturate truncates toward zero and clamps to [0, 255]. NaN maps to 0.
func saturate(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
