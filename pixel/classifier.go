package pixel

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Bool classifies boolean pixels: true is foreground.
func Bool() Classifier[bool] {
	return func(v bool) bool { return v }
}

// Nonzero classifies integer and character pixels: any nonzero value is
// foreground. The constraint covers byte and rune, so character grids
// ('.' vs 'X' style) work as long as background cells hold zero.
func Nonzero[T constraints.Integer]() Classifier[T] {
	return func(v T) bool { return v != 0 }
}

// Threshold classifies ordered pixels: values ≥ min are foreground.
// Useful for grayscale intensities or terrain-style value grids.
func Threshold[T constraints.Ordered](min T) Classifier[T] {
	return func(v T) bool { return v >= min }
}

// For resolves a Classifier for T at runtime. Boolean pixels classify as
// themselves; signed and unsigned integer kinds (including named types,
// byte and rune) classify as nonzero. Any other kind fails with
// ErrUnsupportedType — never silently classified as background.
//
// Prefer Bool, Nonzero or Threshold when T is known at compile time;
// For pays a reflection cost per pixel.
func For[T any]() (Classifier[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Bool:
		return func(v T) bool { return reflect.ValueOf(v).Bool() }, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v T) bool { return reflect.ValueOf(v).Int() != 0 }, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v T) bool { return reflect.ValueOf(v).Uint() != 0 }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}
