// Package grid provides the coordinate type and the dense label storage
// used by connected-component labeling.
//
// What:
//
//   - Coord identifies one grid cell by (Row, Col); plain struct equality.
//   - LabelGrid holds one integer label per cell in row-major order,
//     initialized to NoLabel; a cell set to a real label is never reset.
//
// Why:
//
//   - Visited tracking: a cell holds NoLabel iff the traversal has not
//     reached it yet.
//   - Component recording: after a full scan, the grid maps every labeled
//     cell to its component index.
//
// Complexity:
//
//   - New:               O(rows×cols) time and memory.
//   - Get/Set/InBounds:  O(1).
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols below 1 at construction.
//
// Out-of-range Get/Set panics: the caller owns bounds checking via
// InBounds, and labeling code only produces in-bounds coordinates.
package grid
