package conncomp

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pixelgrid/cclabel/grid"
	"github.com/pixelgrid/cclabel/pixel"
)

// Find partitions the foreground pixels of img into maximal connected
// components. The image is rows×cols; acc reads a pixel value at (row,
// col) and cls decides foreground vs background. The image is never
// mutated.
//
// The returned slice is indexed by label: component k is the set of
// coordinates labeled k, and labels are assigned densely from 0 in the
// order component seeds are first met by the row-major scan. An image
// with no foreground pixels yields an empty slice.
//
// Returns grid.ErrInvalidDimension when rows < 1 or cols < 1,
// ErrNilAccessor / ErrNilClassifier for missing policies, and
// ErrOptionViolation for bad options — all detected before any labeling
// work; no partial result is ever returned.
//
// Complexity: O(rows×cols×d) time (d = 4 or 8), O(rows×cols) memory.
func Find[Img, T any](img Img, rows, cols int, acc pixel.Accessor[Img, T], cls pixel.Classifier[T], opts ...Option) ([]Component, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if acc == nil {
		return nil, ErrNilAccessor
	}
	if cls == nil {
		return nil, ErrNilClassifier
	}

	// Validates dimensions before allocating anything.
	labels, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	nextLabel := 0
	queue := make([]grid.Coord, 0, cols)
	nbrs := make([]grid.Coord, 0, 8)

	// Row-major scan; each unlabeled foreground pixel seeds one flood fill.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if labels.Get(i, j) != grid.NoLabel || !cls(acc(img, i, j)) {
				continue
			}
			seed := grid.Coord{Row: i, Col: j}
			labels.Set(i, j, nextLabel)
			o.OnSeed(seed, nextLabel)

			// BFS flood fill; labels are written at enqueue time, so each
			// coordinate enters the queue at most once.
			queue = append(queue[:0], seed)
			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				nbrs = o.Conn.appendNeighbors(nbrs[:0], cur)
				for _, nb := range nbrs {
					if !labels.InBounds(nb) {
						continue
					}
					if !cls(acc(img, nb.Row, nb.Col)) || labels.Get(nb.Row, nb.Col) != grid.NoLabel {
						continue
					}
					labels.Set(nb.Row, nb.Col, nextLabel)
					o.OnLabel(nb, nextLabel)
					queue = append(queue, nb)
				}
			}
			nextLabel++
		}
	}

	// Second pass: bucket every labeled coordinate into its component set.
	comps := make([]Component, nextLabel)
	for k := range comps {
		comps[k] = mapset.NewSet[grid.Coord]()
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if lbl := labels.Get(i, j); lbl != grid.NoLabel {
				comps[lbl].Add(grid.Coord{Row: i, Col: j})
			}
		}
	}

	return comps, nil
}
