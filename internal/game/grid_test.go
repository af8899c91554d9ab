package game

import (
	"math/rand"
	"reflect"
	"testing"
)

// testGrid builds a grid with a fixed board layout and a seeded rng,
// bypassing the initial spawns.
func testGrid(t *testing.T, rows ...[]int) *Grid {
	t.Helper()

	size := len(rows)
	cells := make([][]int, size)
	for i, row := range rows {
		if len(row) != size {
			t.Fatalf("test board is not square: row %d has %d cells, want %d", i, len(row), size)
		}
		cells[i] = make([]int, size)
		copy(cells[i], row)
	}

	return &Grid{
		size:     size,
		cells:    cells,
		fourProb: DefaultFourProbability,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func countTiles(g *Grid) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func sumTiles(g *Grid) int {
	sum := 0
	for _, row := range g.cells {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

func TestNewGridInitialTiles(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 8} {
		g := NewGrid(size, DefaultFourProbability, rand.New(rand.NewSource(42)))

		if got := countTiles(g); got != 2 {
			t.Errorf("size %d: initial tile count = %d, want 2", size, got)
		}

		for r, row := range g.cells {
			for c, v := range row {
				if v != 0 && v != 2 && v != 4 {
					t.Errorf("size %d: cell (%d,%d) = %d, want 2 or 4", size, r, c, v)
				}
			}
		}
	}
}

func TestNewGridDeterministic(t *testing.T) {
	g1 := NewGrid(4, DefaultFourProbability, rand.New(rand.NewSource(12345)))
	g2 := NewGrid(4, DefaultFourProbability, rand.New(rand.NewSource(12345)))

	if !reflect.DeepEqual(g1.cells, g2.cells) {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", g1.cells, g2.cells)
	}
}

func TestSpawnTileValues(t *testing.T) {
	// With four-probability 0 every spawn is a 2; with 1 every spawn is a 4.
	for _, tt := range []struct {
		name     string
		fourProb float64
		want     int
	}{
		{name: "always two", fourProb: 0, want: 2},
		{name: "always four", fourProb: 1, want: 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := testGrid(t,
				[]int{0, 0},
				[]int{0, 0},
			)
			g.fourProb = tt.fourProb

			for i := 0; i < 4; i++ {
				g.SpawnTile()
			}

			for r, row := range g.cells {
				for c, v := range row {
					if v != tt.want {
						t.Errorf("cell (%d,%d) = %d, want %d", r, c, v, tt.want)
					}
				}
			}
		})
	}
}

func TestSpawnTileFullGridNoOp(t *testing.T) {
	g := testGrid(t,
		[]int{2, 4},
		[]int{8, 16},
	)
	before := g.Cells()

	g.SpawnTile()

	if !reflect.DeepEqual(g.cells, before) {
		t.Errorf("SpawnTile on full grid changed the board:\n%v\nvs\n%v", g.cells, before)
	}
}

func TestSpawnTileOnlyFillsEmptyCells(t *testing.T) {
	g := testGrid(t,
		[]int{2, 0, 4, 8},
		[]int{16, 32, 0, 64},
		[]int{128, 256, 512, 0},
		[]int{0, 2, 4, 8},
	)
	before := g.Cells()

	g.SpawnTile()

	changed := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != before[r][c] {
				changed++
				if before[r][c] != 0 {
					t.Errorf("spawn overwrote occupied cell (%d,%d)", r, c)
				}
				if v := g.cells[r][c]; v != 2 && v != 4 {
					t.Errorf("spawned value = %d, want 2 or 4", v)
				}
			}
		}
	}
	if changed != 1 {
		t.Errorf("spawn changed %d cells, want 1", changed)
	}
}

func TestCellsSnapshotIsIndependent(t *testing.T) {
	g := testGrid(t,
		[]int{2, 0},
		[]int{0, 4},
	)

	snapshot := g.Cells()
	snapshot[0][0] = 2048

	if g.cells[0][0] != 2 {
		t.Error("mutating the snapshot changed the live grid")
	}
}
