package rascii

import (
	"image"
	"image/color"
)

// PixelSource is a fully decoded image that can be read at random.
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) (r, g, b uint8)
}

// ImageSource adapts an image.Image to a PixelSource. Alpha is dropped
// without premultiplying and coordinates are relative to the image bounds.
type ImageSource struct {
	img    image.Image
	bounds image.Rectangle
	nrgba  *image.NRGBA
}

// NewImageSource returns a PixelSource reading from img.
func NewImageSource(img image.Image) *ImageSource {
	src := &ImageSource{
		img:    img,
		bounds: img.Bounds(),
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		src.nrgba = nrgba
	}

	return src
}

// Image returns the underlying image.
func (s *ImageSource) Image() image.Image {
	return s.img
}

// Width returns the width of the image in pixels.
func (s *ImageSource) Width() int {
	return s.bounds.Dx()
}

// Height returns the height of the image in pixels.
func (s *ImageSource) Height() int {
	return s.bounds.Dy()
}

// Pixel returns the RGB channels of the pixel at (x, y).
func (s *ImageSource) Pixel(x, y int) (r, g, b uint8) {
	x += s.bounds.Min.X
	y += s.bounds.Min.Y

	if s.nrgba != nil {
		c := s.nrgba.NRGBAAt(x, y)
		return c.R, c.G, c.B
	}

	c := color.NRGBAModel.Convert(s.img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}
