// Package prepare applies optional filters to an image before conversion.
package prepare

import (
	"image"

	"github.com/disintegration/gift"
)

// Options selects the filters to apply. The zero value applies none.
type Options struct {
	// Width and Height resize the image. If one of them is 0 the aspect
	// ratio is kept.
	Width  int
	Height int
	// Contrast and Brightness are percentages in [-100, 100].
	Contrast   float32
	Brightness float32
	// Gamma is ignored when 0 or 1.
	Gamma float32
	// Blur is the sigma of a gaussian blur.
	Blur   float32
	Invert bool
}

func (o Options) filters() []gift.Filter {
	var filters []gift.Filter

	if o.Width > 0 || o.Height > 0 {
		filters = append(filters, gift.Resize(o.Width, o.Height, gift.LanczosResampling))
	}
	if o.Blur > 0 {
		filters = append(filters, gift.GaussianBlur(o.Blur))
	}
	if o.Contrast != 0 {
		filters = append(filters, gift.Contrast(o.Contrast))
	}
	if o.Brightness != 0 {
		filters = append(filters, gift.Brightness(o.Brightness))
	}
	if o.Gamma > 0 && o.Gamma != 1 {
		filters = append(filters, gift.Gamma(o.Gamma))
	}
	if o.Invert {
		filters = append(filters, gift.Invert())
	}

	return filters
}

// Enabled reports whether any filter is selected.
func (o Options) Enabled() bool {
	return len(o.filters()) > 0
}

// Apply returns img with the selected filters applied. img is returned as is
// when no filter is selected.
func Apply(img image.Image, opts Options) image.Image {
	filters := opts.filters()
	if len(filters) == 0 {
		return img
	}

	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst
}
