package region

import "github.com/ashrey-kulkarni/tentsolve/tentboard"

// Region is one connected component of UNKNOWN cells, along with the set
// of rows and columns it touches — the only lines a restricted
// line-enumeration pass over this region needs to consider.
type Region struct {
	Cells []tentboard.Position
	Rows  map[int]bool
	Cols  map[int]bool
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Decompose finds every connected component of UNKNOWN cells in g, using
// 8-neighbour adjacency, in row-major discovery order.
func Decompose(g *tentboard.Grid) []Region {
	size := g.Size()
	visited := make([][]bool, size)
	for i := range visited {
		visited[i] = make([]bool, size)
	}

	var regions []Region

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if visited[r][c] || g.At(r, c) != tentboard.Unknown {
				continue
			}

			queue := []tentboard.Position{{Row: r, Col: c}}
			visited[r][c] = true
			region := Region{Rows: make(map[int]bool), Cols: make(map[int]bool)}

			for qi := 0; qi < len(queue); qi++ {
				pos := queue[qi]
				region.Cells = append(region.Cells, pos)
				region.Rows[pos.Row] = true
				region.Cols[pos.Col] = true

				for _, d := range neighborOffsets {
					nr, nc := pos.Row+d[0], pos.Col+d[1]
					if nr < 0 || nr >= size || nc < 0 || nc >= size {
						continue
					}
					if visited[nr][nc] || g.At(nr, nc) != tentboard.Unknown {
						continue
					}
					visited[nr][nc] = true
					queue = append(queue, tentboard.Position{Row: nr, Col: nc})
				}
			}

			regions = append(regions, region)
		}
	}

	return regions
}
