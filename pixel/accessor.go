package pixel

import "image"

// Slice2D reads pixels from a nested-slice image: img[row][col].
func Slice2D[T any]() Accessor[[][]T, T] {
	return func(img [][]T, row, col int) T {
		return img[row][col]
	}
}

// Flat reads pixels from a flat row-major image of the given width:
// img[row*cols+col].
func Flat[T any](cols int) Accessor[[]T, T] {
	return func(img []T, row, col int) T {
		return img[row*cols+col]
	}
}

// GrayImage reads pixels from a standard-library grayscale image.
// (row, col) are relative to the image bounds, so (0,0) is the top-left
// pixel regardless of the rectangle's origin.
func GrayImage() Accessor[*image.Gray, uint8] {
	return func(img *image.Gray, row, col int) uint8 {
		b := img.Bounds()
		return img.GrayAt(b.Min.X+col, b.Min.Y+row).Y
	}
}
