// Package grid reconstructs a square image from scrambled tiles by
// matching border fingerprints.
package grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/jigsaw/internal/telemetry"
	"github.com/samdwyer/jigsaw/internal/tile"
)

// Grid is a fully assembled square arrangement of tiles. Adjacent
// tiles' facing borders are equal as a post-condition of Assemble.
type Grid struct {
	size     int // side length in tiles
	tileSize int // side length of each tile in cells
	tiles    []*tile.Tile
}

// Assemble reconstructs the unique layout implied by the tiles' border
// fingerprints. The tile count must be a perfect square and all tiles
// must share one size. Assembly is greedy with no backtracking: if at
// any point no unplaced tile satisfies the constraints of its
// already-placed neighbors, the grid is ambiguous or incomplete and
// assembly fails.
//
// Precondition: the image has no wraparound and tile borders are
// globally unique outside of true adjacency. Under those conditions a
// corner tile is exactly a tile with two adjacency-compatible
// neighbors.
func Assemble(ctx context.Context, tiles []*tile.Tile) (*Grid, error) {
	tracer := telemetry.Tracer("grid")
	ctx, span := tracer.Start(ctx, "grid.assemble")
	defer span.End()

	startTime := time.Now()

	if len(tiles) == 0 {
		return nil, errors.New("no tiles to assemble")
	}
	size, ok := sqrtExact(len(tiles))
	if !ok {
		return nil, fmt.Errorf("tile count %d is not a perfect square", len(tiles))
	}
	tileSize := tiles[0].Size()
	for _, t := range tiles {
		if t.Size() != tileSize {
			return nil, fmt.Errorf("inconsistent tile sizes: %d and %d", tileSize, t.Size())
		}
	}

	pool := make([]*tile.Tile, len(tiles))
	copy(pool, tiles)

	corner, err := placeCorner(pool)
	if err != nil {
		return nil, err
	}

	placed := make([]*tile.Tile, 0, len(tiles))
	placed = append(placed, corner)
	pool = removeTile(pool, corner)

	for idx := 1; idx < len(tiles); idx++ {
		c := cellConstraints(placed, idx, size)
		var found *tile.Tile
		for _, t := range pool {
			if t.Orient(c) {
				found = t
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("no tile fits at cell %d: ambiguous or incomplete grid", idx)
		}
		placed = append(placed, found)
		pool = removeTile(pool, found)
	}

	span.SetAttributes(
		attribute.Int("grid.tile_count", len(tiles)),
		attribute.Int("grid.size", size),
		attribute.Int64("grid.assemble_ms", time.Since(startTime).Milliseconds()),
	)

	return &Grid{size: size, tileSize: tileSize, tiles: placed}, nil
}

// placeCorner finds the first tile with exactly two compatible
// neighbors and orients it as the top-left corner, with one neighbor's
// shared border on its right edge and the other's on its bottom. Both
// neighbor assignments are tried, since either could be the tile to
// the right.
func placeCorner(pool []*tile.Tile) (*tile.Tile, error) {
	for _, candidate := range pool {
		var neighbors []*tile.Tile
		var shared [][]uint32
		for _, other := range pool {
			if other == candidate {
				continue
			}
			if m := candidate.Connect(other); len(m) > 0 {
				neighbors = append(neighbors, other)
				shared = append(shared, m)
			}
		}
		if len(neighbors) != 2 {
			continue
		}
		for _, assign := range [2][2]int{{0, 1}, {1, 0}} {
			for _, right := range shared[assign[0]] {
				for _, bottom := range shared[assign[1]] {
					if candidate.Orient(tile.Right(right).AndBottom(bottom)) {
						return candidate, nil
					}
				}
			}
		}
		return nil, fmt.Errorf("cannot orient corner tile %d against its neighbors", candidate.ID())
	}
	return nil, errors.New("no tile has exactly two neighbors")
}

// cellConstraints builds the border constraints for a cell in the
// row-major fill from its already-placed left and top neighbors.
func cellConstraints(placed []*tile.Tile, idx, size int) tile.Constraints {
	var c tile.Constraints
	if idx%size != 0 {
		c = tile.Left(placed[idx-1].RightEdge())
	}
	if idx >= size {
		c = c.AndTop(placed[idx-size].BottomEdge())
	}
	return c
}

func removeTile(pool []*tile.Tile, t *tile.Tile) []*tile.Tile {
	for i, p := range pool {
		if p == t {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}

// sqrtExact returns the integer square root of n, and whether n is a
// perfect square.
func sqrtExact(n int) (int, bool) {
	for size := 0; size*size <= n; size++ {
		if size*size == n {
			return size, true
		}
	}
	return 0, false
}

// Size returns the grid's side length in tiles.
func (g *Grid) Size() int {
	return g.size
}

// TileSize returns the side length of each tile in cells.
func (g *Grid) TileSize() int {
	return g.tileSize
}

// CornerIDs returns the identifiers of the four corner tiles. Which
// physical corner of the original image ends up top-left depends on
// the reconstruction origin, but the set of four is invariant.
func (g *Grid) CornerIDs() [4]uint64 {
	n := g.size
	return [4]uint64{
		g.tiles[0].ID(),
		g.tiles[n-1].ID(),
		g.tiles[n*(n-1)].ID(),
		g.tiles[n*n-1].ID(),
	}
}

// CornerProduct returns the product of the four corner identifiers.
func (g *Grid) CornerProduct() uint64 {
	product := uint64(1)
	for _, id := range g.CornerIDs() {
		product *= id
	}
	return product
}

// MergeTiles stitches the grid into one composite tile, dropping each
// tile's border cells: borders are scan artifacts and carry no image
// content once adjacency is established. The grid is not modified.
func (g *Grid) MergeTiles() *tile.Tile {
	inner := g.tileSize - 2
	side := g.size * inner
	data := make([]bool, 0, side*side)
	for gridRow := 0; gridRow < g.size; gridRow++ {
		for row := 1; row < g.tileSize-1; row++ {
			for gridCol := 0; gridCol < g.size; gridCol++ {
				t := g.tiles[gridRow*g.size+gridCol]
				for col := 1; col < g.tileSize-1; col++ {
					data = append(data, t.At(row, col))
				}
			}
		}
	}
	return tile.New(side, data)
}
