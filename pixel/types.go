package pixel

import "errors"

// ErrUnsupportedType is returned by For when no built-in classification
// exists for the requested pixel value type.
var ErrUnsupportedType = errors.New("pixel: unsupported pixel value type")

// Classifier decides whether a pixel value belongs to the foreground.
// Implementations must be pure: deterministic, no side effects, total
// over the pixel type in use.
type Classifier[T any] func(v T) bool

// Accessor reads the pixel value at (row, col) from an opaque image
// representation. It is always called with coordinates known to be valid
// for the image's declared dimensions and performs no bounds checking.
type Accessor[Img, T any] func(img Img, row, col int) T
