// Package tile provides square boolean image tiles with border
// fingerprinting and dihedral-group orientation search.
package tile

import (
	"errors"
	"fmt"
)

// maxSize is the widest tile a border fingerprint can encode.
const maxSize = 32

// Tile is a square grid of boolean cells with an identifier.
// The zero identifier is reserved for synthetic (merged) tiles.
type Tile struct {
	id       uint64
	size     int
	data     []bool // row-major, len == size*size
	scrubbed [][2]int
}

// Parse builds a tile from rows of '.' and '#' characters.
// Every row must be exactly as long as the first, and there must be as
// many rows as columns. Tiles whose eight border fingerprints are not
// all distinct are rejected, since orientation search against them
// would be non-deterministic.
func Parse(id uint64, rows []string) (*Tile, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("missing tile data")
	}
	size := len(rows[0])
	if size > maxSize {
		return nil, fmt.Errorf("tile side %d exceeds %d cells", size, maxSize)
	}
	if len(rows) != size {
		return nil, fmt.Errorf("tile has %d rows, want %d", len(rows), size)
	}

	data := make([]bool, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), size)
		}
		for _, c := range row {
			switch c {
			case '.':
				data = append(data, false)
			case '#':
				data = append(data, true)
			default:
				return nil, fmt.Errorf("unknown character %q in tile data", c)
			}
		}
	}

	t := &Tile{id: id, size: size, data: data}
	edges := t.edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i] == edges[j] {
				return nil, errors.New("ambiguous edge fingerprints")
			}
		}
	}
	return t, nil
}

// New builds a synthetic tile (id 0) around existing cell data.
// The data must hold exactly size*size cells.
func New(size int, data []bool) *Tile {
	if len(data) != size*size {
		panic(fmt.Sprintf("tile: %d cells for side %d", len(data), size))
	}
	return &Tile{size: size, data: data}
}

// ID returns the tile's identifier.
func (t *Tile) ID() uint64 {
	return t.id
}

// Size returns the tile's side length in cells.
func (t *Tile) Size() int {
	return t.size
}

// At reports whether the cell at the given row and column is set.
func (t *Tile) At(row, col int) bool {
	return t.data[row*t.size+col]
}

// Clone returns an independent copy of the tile.
func (t *Tile) Clone() *Tile {
	data := make([]bool, len(t.data))
	copy(data, t.data)
	scrubbed := make([][2]int, len(t.scrubbed))
	copy(scrubbed, t.scrubbed)
	return &Tile{id: t.id, size: t.size, data: data, scrubbed: scrubbed}
}

// rowFwd folds the bits of a row left to right into a fingerprint.
func (t *Tile) rowFwd(row int) uint32 {
	var acc uint32
	for col := 0; col < t.size; col++ {
		acc <<= 1
		if t.data[row*t.size+col] {
			acc |= 1
		}
	}
	return acc
}

// rowRev folds the bits of a row right to left.
func (t *Tile) rowRev(row int) uint32 {
	var acc uint32
	for col := t.size - 1; col >= 0; col-- {
		acc <<= 1
		if t.data[row*t.size+col] {
			acc |= 1
		}
	}
	return acc
}

// colFwd folds the bits of a column top to bottom.
func (t *Tile) colFwd(col int) uint32 {
	var acc uint32
	for row := 0; row < t.size; row++ {
		acc <<= 1
		if t.data[row*t.size+col] {
			acc |= 1
		}
	}
	return acc
}

// colRev folds the bits of a column bottom to top.
func (t *Tile) colRev(col int) uint32 {
	var acc uint32
	for row := t.size - 1; row >= 0; row-- {
		acc <<= 1
		if t.data[row*t.size+col] {
			acc |= 1
		}
	}
	return acc
}

// RightEdge returns the right border fingerprint, read top to bottom.
func (t *Tile) RightEdge() uint32 {
	return t.colFwd(t.size - 1)
}

// BottomEdge returns the bottom border fingerprint, read left to right.
func (t *Tile) BottomEdge() uint32 {
	return t.rowFwd(t.size - 1)
}

// edges returns all 8 border fingerprints: 4 edges in 2 reading
// directions each, since a neighbor may present either direction.
func (t *Tile) edges() [8]uint32 {
	last := t.size - 1
	return [8]uint32{
		t.rowFwd(0), t.rowFwd(last),
		t.rowRev(0), t.rowRev(last),
		t.colFwd(0), t.colFwd(last),
		t.colRev(0), t.colRev(last),
	}
}

// Connect returns the border fingerprints the two tiles have in common.
// A non-empty result means the tiles can be adjacent in some
// orientation; the values identify which border pairs align.
func (t *Tile) Connect(other *Tile) []uint32 {
	theirs := other.edges()
	var matches []uint32
	for _, e := range t.edges() {
		for _, o := range theirs {
			if e == o && !containsFingerprint(matches, e) {
				matches = append(matches, e)
				break
			}
		}
	}
	return matches
}

func containsFingerprint(s []uint32, v uint32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// RotateRight rotates the tile 90 degrees clockwise in place.
func (t *Tile) RotateRight() {
	n := t.size
	rotated := make([]bool, len(t.data))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rotated[col*n+(n-1-row)] = t.data[row*n+col]
		}
	}
	t.data = rotated
	for i, cell := range t.scrubbed {
		t.scrubbed[i] = [2]int{cell[1], n - 1 - cell[0]}
	}
}

// FlipHorizontal mirrors the tile across its vertical axis in place.
func (t *Tile) FlipHorizontal() {
	n := t.size
	for row := 0; row < n; row++ {
		for col := 0; col < n/2; col++ {
			i, j := row*n+col, row*n+(n-1-col)
			t.data[i], t.data[j] = t.data[j], t.data[i]
		}
	}
	for i, cell := range t.scrubbed {
		t.scrubbed[i] = [2]int{cell[0], n - 1 - cell[1]}
	}
}
