package conncomp

import "github.com/pixelgrid/cclabel/grid"

// Neighbor offsets in enumeration order. Conn4 lists S, E, N, W; Conn8
// scans (Δrow,Δcol) row-major over {-1,0,1}² skipping (0,0).
var (
	conn4Offsets = [...][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	conn8Offsets = [...][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// Neighbors returns the candidate neighbors of pos in a fixed,
// deterministic order: exactly 4 for Conn4, exactly 8 for Conn8.
// Candidates are unfiltered — they may lie outside any grid or have
// negative components; filtering is the caller's responsibility.
// Complexity: O(1).
func (c Connectivity) Neighbors(pos grid.Coord) []grid.Coord {
	return c.appendNeighbors(make([]grid.Coord, 0, 8), pos)
}

// appendNeighbors appends the candidates of pos to dst and returns it.
// Shared by Neighbors and the finder's hot loop, which reuses dst to
// avoid a per-pixel allocation.
func (c Connectivity) appendNeighbors(dst []grid.Coord, pos grid.Coord) []grid.Coord {
	offsets := conn4Offsets[:]
	if c == Conn8 {
		offsets = conn8Offsets[:]
	}
	for _, d := range offsets {
		dst = append(dst, grid.Coord{Row: pos.Row + d[0], Col: pos.Col + d[1]})
	}
	return dst
}
