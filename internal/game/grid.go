// Package game implements the 2048 grid state machine: the tile store,
// move validity detection, the shift-and-merge transformation, and random
// tile spawning. It contains pure logic with no external dependencies;
// input handling and rendering live in the surrounding packages.
package game

import "math/rand"

// DefaultSize is the default board dimension.
const DefaultSize = 4

// DefaultFourProbability is the chance that a spawned tile is a 4
// instead of a 2.
const DefaultFourProbability = 0.10

// Grid owns the square table of cells. A cell holds a tile value
// (a positive power of two) or 0 when empty. The grid is mutated in
// place by moves and spawns; it is private, single-threaded state owned
// by one game at a time.
type Grid struct {
	size     int
	cells    [][]int
	fourProb float64
	rng      *rand.Rand
}

// NewGrid creates a size×size grid and spawns the two initial tiles.
// The random source is injected so tests can supply deterministic
// sequences; fourProb is the probability a spawned tile is a 4.
func NewGrid(size int, fourProb float64, rng *rand.Rand) *Grid {
	cells := make([][]int, size)
	for i := range cells {
		cells[i] = make([]int, size)
	}

	g := &Grid{
		size:     size,
		cells:    cells,
		fourProb: fourProb,
		rng:      rng,
	}

	g.SpawnTile()
	g.SpawnTile()

	return g
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// Cells returns a row-major snapshot of the board for rendering.
// Empty cells are 0. The copy is independent of the live grid.
func (g *Grid) Cells() [][]int {
	snapshot := make([][]int, g.size)
	for r := range g.cells {
		snapshot[r] = make([]int, g.size)
		copy(snapshot[r], g.cells[r])
	}
	return snapshot
}

// SpawnTile places a new tile (2 or 4) in a random empty cell.
// A full grid is a silent no-op, not an error; the caller detects the
// end-of-game condition by polling move validity.
func (g *Grid) SpawnTile() {
	var empty [][2]int
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] == 0 {
				empty = append(empty, [2]int{r, c})
			}
		}
	}
	if len(empty) == 0 {
		return
	}

	pos := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.fourProb {
		value = 4
	}

	g.cells[pos[0]][pos[1]] = value
}

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}
