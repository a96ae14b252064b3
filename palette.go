package rascii

// CoarsePalette holds 10 glyphs ordered from darkest to brightest.
var CoarsePalette = [...]rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// FinePalette is the long glyph ramp, darkest to brightest.
const FinePalette = " .\"`^\",:;Il!i~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

const (
	// FineDepth is the smallest palette depth that selects FinePalette.
	FineDepth = 11

	coarseScale = 9
	// The fine scale is fixed and does not follow len(FinePalette).
	fineScale = 67
)

var fineGlyphs = []rune(FinePalette)

// Glyph maps a brightness to a glyph. A depth above 10 selects the fine
// palette, anything else selects the coarse one.
func Glyph(brightness uint8, depth uint8) rune {
	if depth >= FineDepth {
		return fineGlyphs[paletteIndex(brightness, fineScale, len(fineGlyphs))]
	}

	return CoarsePalette[paletteIndex(brightness, coarseScale, len(CoarsePalette))]
}

func paletteIndex(brightness uint8, scale float64, size int) int {
	index := int(float64(brightness) / 255.0 * scale)
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
