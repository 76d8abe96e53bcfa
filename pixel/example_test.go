package pixel_test

import (
	"fmt"

	"github.com/pixelgrid/cclabel/pixel"
)

// ExampleFor demonstrates runtime classifier resolution and the fail-fast
// behavior for pixel types without a built-in classification.
func ExampleFor() {
	byteCls, err := pixel.For[byte]()
	fmt.Println(byteCls('X'), byteCls(0), err)

	type rgb struct{ r, g, b uint8 }
	_, err = pixel.For[rgb]()
	fmt.Println(err)

	// Output:
	// true false <nil>
	// pixel: unsupported pixel value type: pixel_test.rgb
}
