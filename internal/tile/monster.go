package tile

// Pattern is a fixed multi-row pixel shape scanned for during
// scrubbing. Only '#' cells must match; '.' cells are don't-care.
type Pattern struct {
	width, height int
	cells         [][2]int // row, col offsets of the '#' cells
}

// seaMonster is the shape scrubbed from assembled images. Swapping the
// domain means swapping this constant, not the algorithm.
var seaMonster = mustPattern(
	"..................#.",
	"#....##....##....###",
	".#..#..#..#..#..#...",
)

func mustPattern(rows ...string) Pattern {
	p := Pattern{width: len(rows[0]), height: len(rows)}
	for r, row := range rows {
		if len(row) != p.width {
			panic("pattern rows differ in length")
		}
		for c, ch := range row {
			if ch == '#' {
				p.cells = append(p.cells, [2]int{r, c})
			}
		}
	}
	return p
}

// RemoveMonsters searches the tile's 8 orientations for occurrences of
// the sea monster pattern and clears the matched cells in the first
// orientation that contains any. A correctly assembled image contains
// the pattern in exactly one orientation; if no orientation matches,
// the tile is left unchanged. Returns the number of matches.
func (t *Tile) RemoveMonsters() int {
	return t.removePattern(seaMonster)
}

func (t *Tile) removePattern(p Pattern) int {
	for k := 0; k < 8; k++ {
		if matches := t.findPattern(p); len(matches) > 0 {
			t.clearPattern(p, matches)
			return len(matches)
		}
		t.RotateRight()
		if k%4 == 3 {
			t.FlipHorizontal()
		}
	}
	return 0
}

// findPattern scans every pattern-sized window in the current
// orientation and returns the top-left corner of each match.
func (t *Tile) findPattern(p Pattern) [][2]int {
	var matches [][2]int
	for row := 0; row+p.height <= t.size; row++ {
	window:
		for col := 0; col+p.width <= t.size; col++ {
			for _, cell := range p.cells {
				if !t.data[(row+cell[0])*t.size+col+cell[1]] {
					continue window
				}
			}
			matches = append(matches, [2]int{row, col})
		}
	}
	return matches
}

// clearPattern clears the pattern's '#' cells at each match. Matches
// are collected before anything is cleared, so overlapping matches
// cannot mask one another.
func (t *Tile) clearPattern(p Pattern, matches [][2]int) {
	for _, m := range matches {
		for _, cell := range p.cells {
			row, col := m[0]+cell[0], m[1]+cell[1]
			if t.data[row*t.size+col] {
				t.data[row*t.size+col] = false
				t.scrubbed = append(t.scrubbed, [2]int{row, col})
			}
		}
	}
}

// ScrubbedCells returns the cells cleared by RemoveMonsters, in the
// tile's current orientation.
func (t *Tile) ScrubbedCells() [][2]int {
	return t.scrubbed
}

// Roughness returns the number of set cells.
func (t *Tile) Roughness() int {
	count := 0
	for _, b := range t.data {
		if b {
			count++
		}
	}
	return count
}
