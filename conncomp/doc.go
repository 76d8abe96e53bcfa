// Package conncomp finds connected components of foreground pixels in a
// rectangular grid, using breadth-first flood fill driven by pluggable
// pixel policies.
//
// What:
//
//   - Connectivity selects the neighbor set: Conn4 (orthogonal) or Conn8
//     (orthogonal + diagonal). Neighbors returns raw candidates in a fixed
//     order; bounds filtering is the algorithm's job.
//   - Find scans the grid row-major, flood-fills each unlabeled foreground
//     pixel, and returns one Component (a set of coordinates) per label.
//   - Labels are dense from 0 and assigned in the order component seeds
//     are first encountered by the row-major scan, so results are fully
//     deterministic.
//
// Why:
//
//   - Blob detection: group the "on" pixels of a binarized image.
//   - Region counting: islands in a terrain grid, cells in a scan.
//   - Any downstream per-region analysis — each Component is a plain set
//     of coordinates.
//
// Complexity:
//
//   - Find: O(rows×cols×d) time, d = 4 or 8; O(rows×cols) memory for the
//     label grid and queue.
//
// Options:
//
//   - WithConnectivity: Conn4 (default) or Conn8.
//   - WithOnSeed / WithOnLabel: observe label assignments during traversal.
//
// Errors:
//
//   - grid.ErrInvalidDimension: rows or cols below 1.
//   - ErrNilAccessor, ErrNilClassifier: missing pixel policy.
//   - ErrOptionViolation: invalid option value (e.g. unknown connectivity).
//
// Failures are detected before any labeling work begins; Find never
// returns a partial result.
package conncomp
