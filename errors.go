package rascii

import "errors"

// ErrInvalidDimension is returned when the target grid cannot be sampled
// from the image: fewer than 2 columns or rows, or tiles less than a pixel
// wide or tall.
var ErrInvalidDimension = errors.New("rascii: invalid dimension")
