package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimension indicates rows or cols below 1.
	ErrInvalidDimension = errors.New("grid: rows and cols must be at least 1")
)

// NoLabel marks a cell not yet visited by the traversal. Real labels are
// non-negative, so NoLabel can never collide with one.
const NoLabel = -1

// Coord identifies a single grid cell by row and column.
// Two Coords are equal iff both components are equal.
type Coord struct {
	Row, Col int
}
