// Package pixel defines the two per-pixel policies of the labeling
// algorithm: how a pixel value is read from an image representation
// (Accessor) and how a value is classified as foreground or background
// (Classifier).
//
// What:
//
//   - Classifier[T] is a pure, total predicate: true = foreground.
//   - Accessor[Img, T] reads the value at (row, col) from an opaque image.
//     It performs no bounds checking; callers pass in-range coordinates only.
//   - Built-in classifiers: Bool (identity), Nonzero (integer/character
//     pixels), Threshold (minimum-value cutoff).
//   - Built-in accessors: Slice2D ([][]T images), Flat (row-major []T
//     images), GrayImage (*image.Gray).
//   - For[T] resolves a classifier at runtime and fails with
//     ErrUnsupportedType for pixel types it cannot classify — unknown
//     types are never silently treated as background.
//
// Why:
//
//   - The labeling algorithm stays polymorphic over image storage layout
//     and pixel value type; both policies are plain function values, so
//     custom layouts and classifications are one closure away.
//
// Errors:
//
//   - ErrUnsupportedType: For[T] has no built-in classification for T.
package pixel
