package game

// IsValidMove reports whether any tile can slide or merge one step in the
// given direction. This is deliberately separate from "grid is full": a
// full grid can still have valid merges.
func (g *Grid) IsValidMove(dir Direction) bool {
	dr, dc := dir.Delta()

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				continue
			}

			nr, nc := r+dr, c+dc
			if !g.inBounds(nr, nc) {
				continue
			}
			if g.cells[nr][nc] == 0 || g.cells[nr][nc] == g.cells[r][c] {
				return true
			}
		}
	}

	return false
}

// PlayMove performs a move in the given direction. It returns whether the
// board changed: on success the shift-and-merge transformation runs and
// exactly one new tile is spawned; on failure the grid is left untouched
// and nothing spawns.
func (g *Grid) PlayMove(dir Direction) bool {
	if !g.IsValidMove(dir) {
		return false
	}

	g.shiftAndMerge(dir)
	g.SpawnTile()

	return true
}

// shiftAndMerge compacts and merges all tiles toward the direction's
// destination edge. Cells are processed starting from that edge, so a
// tile already in its final position is never re-processed before the
// tiles behind it and merges resolve in direction-of-travel order.
//
// The merged table, indexed by destination coordinate, marks cells that
// already absorbed a merge this pass: three equal tiles in a row collapse
// into one merged pair plus one leftover, never into a single tile of
// quadruple value.
func (g *Grid) shiftAndMerge(dir Direction) {
	merged := make([][]bool, g.size)
	for i := range merged {
		merged[i] = make([]bool, g.size)
	}

	dr, dc := dir.Delta()
	order := g.traversal(dir)

	for _, r := range order {
		for _, c := range order {
			if g.cells[r][c] == 0 {
				continue
			}

			tr, tc := g.slideTile(r, c, dr, dc)

			nr, nc := tr+dr, tc+dc
			if g.inBounds(nr, nc) && g.cells[nr][nc] == g.cells[tr][tc] && !merged[nr][nc] {
				g.cells[nr][nc] *= 2
				g.cells[tr][tc] = 0
				merged[nr][nc] = true
			}
		}
	}
}

// slideTile relocates the tile at (r, c) one step at a time while the
// next cell along (dr, dc) is empty, and returns its resting coordinate.
func (g *Grid) slideTile(r, c, dr, dc int) (int, int) {
	for {
		nr, nc := r+dr, c+dc
		if !g.inBounds(nr, nc) || g.cells[nr][nc] != 0 {
			return r, c
		}
		g.cells[nr][nc] = g.cells[r][c]
		g.cells[r][c] = 0
		r, c = nr, nc
	}
}

// traversal returns the index order for a move: from the destination edge
// backwards (high to low for down/right, low to high for up/left).
func (g *Grid) traversal(dir Direction) []int {
	order := make([]int, g.size)
	if dir == Down || dir == Right {
		for i := range order {
			order[i] = g.size - 1 - i
		}
	} else {
		for i := range order {
			order[i] = i
		}
	}
	return order
}
