package grid

import "fmt"

// LabelGrid is dense row-major label storage, one slot per pixel.
// Every slot starts at NoLabel; once a slot holds a real label it is
// never reset. No resizing, no deletion.
type LabelGrid struct {
	rows, cols int
	labels     []int
}

// New allocates a rows×cols LabelGrid with every slot set to NoLabel.
// Returns ErrInvalidDimension, before any allocation, when rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*LabelGrid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	labels := make([]int, rows*cols)
	for i := range labels {
		labels[i] = NoLabel
	}

	return &LabelGrid{rows: rows, cols: cols, labels: labels}, nil
}

// Rows reports the number of rows.
func (g *LabelGrid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *LabelGrid) Cols() int { return g.cols }

// InBounds reports whether pos lies within the grid boundaries.
// Complexity: O(1).
func (g *LabelGrid) InBounds(pos Coord) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Get returns the label stored at (row, col).
// Panics if (row, col) is out of range.
func (g *LabelGrid) Get(row, col int) int {
	return g.labels[g.index(row, col)]
}

// Set stores label at (row, col).
// Panics if (row, col) is out of range.
func (g *LabelGrid) Set(row, col, label int) {
	g.labels[g.index(row, col)] = label
}

// index maps (row, col) to a row-major slice index: row*cols + col.
// Complexity: O(1).
func (g *LabelGrid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("grid: position (%d,%d) out of range %d×%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}
