// Package imageio decodes image files into pixel sources for conversion.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. JPEG orientation stored
// in EXIF metadata is applied while decoding.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tmpim/rascii"
)

// DefaultMaxPixels is the largest image Load and Decode accept.
const DefaultMaxPixels = 8192 * 8192

// ErrTooLarge is returned for images with more than DefaultMaxPixels pixels.
var ErrTooLarge = errors.New("image too large")

// LoadError is returned when an image cannot be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "imageio: failed to decode image: " + e.Err.Error()
	}
	return fmt.Sprintf("imageio: failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load opens and decodes the image at path.
func Load(path string) (*rascii.ImageSource, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return rascii.NewImageSource(img), nil
}

// Decode decodes an image from r.
func Decode(r io.Reader) (*rascii.ImageSource, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return rascii.NewImageSource(img), nil
}

// DecodeImage decodes an image from r without wrapping it in a pixel
// source, for callers that filter the image before converting it.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return img, nil
}

// LoadImage is the path based counterpart of DecodeImage.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return img, nil
}

// decode checks the dimensions in the image header before any pixel data is
// decoded.
func decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if int64(cfg.Width)*int64(cfg.Height) > DefaultMaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}
