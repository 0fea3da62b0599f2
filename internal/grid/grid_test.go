package grid

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/jigsaw/internal/scan"
	"github.com/samdwyer/jigsaw/internal/tile"
)

// mergedExample is the reference 3x3 puzzle stitched together, in the
// orientation the assembly's reconstruction origin produces.
var mergedExample = []string{
	".#.#..#.##...#.##..#####",
	"###....#.#....#..#......",
	"##.##.###.#.#..######...",
	"###.#####...#.#####.#..#",
	"##.#....#.##.####...#.##",
	"...########.#....#####.#",
	"....#..#...##..#.#.###..",
	".####...#..#.....#......",
	"#..#.##..#..###.#.##....",
	"#.####..#.####.#.#.###..",
	"###.#.#...#.######.#..##",
	"#.####....##..########.#",
	"##..##.#...#...#.#.#.#..",
	"...#..#..#.#.##..###.###",
	".#.#....#.##.#...###.##.",
	"###.#...#..#.##.######..",
	".#.#.###.##.##.#..#.##..",
	".####.###.#...###.#..#.#",
	"..#.#..#..#.#.#.####.###",
	"#..####...#.#.#.###.###.",
	"#####..#####...###....##",
	"#.##..#..#...#..####...#",
	".#.###..##..##..####.##.",
	"...###...##...#...#..###",
}

func loadExample(t *testing.T) []*tile.Tile {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	defer f.Close()
	tiles, err := scan.Tiles(f)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return tiles
}

func render(tl *tile.Tile) []string {
	rows := make([]string, tl.Size())
	for r := 0; r < tl.Size(); r++ {
		var b strings.Builder
		for c := 0; c < tl.Size(); c++ {
			if tl.At(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

func TestAssembleExample(t *testing.T) {
	tiles := loadExample(t)
	g, err := Assemble(context.Background(), tiles)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if g.Size() != 3 {
		t.Errorf("Size = %d, want 3", g.Size())
	}
	if g.TileSize() != 10 {
		t.Errorf("TileSize = %d, want 10", g.TileSize())
	}

	seen := make(map[uint64]bool)
	for _, tl := range g.tiles {
		if seen[tl.ID()] {
			t.Errorf("tile %d placed twice", tl.ID())
		}
		seen[tl.ID()] = true
	}
	if len(g.tiles) != 9 {
		t.Errorf("placed %d tiles, want 9", len(g.tiles))
	}

	wantCorners := map[uint64]bool{1951: true, 3079: true, 2971: true, 1171: true}
	for _, id := range g.CornerIDs() {
		if !wantCorners[id] {
			t.Errorf("unexpected corner id %d", id)
		}
	}
	if got := g.CornerProduct(); got != 20899048083289 {
		t.Errorf("CornerProduct = %d, want 20899048083289", got)
	}
}

func TestMergeTiles(t *testing.T) {
	tiles := loadExample(t)
	g, err := Assemble(context.Background(), tiles)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	merged := g.MergeTiles()
	if merged.ID() != 0 {
		t.Errorf("merged tile id = %d, want 0", merged.ID())
	}
	if merged.Size() != 24 {
		t.Fatalf("merged size = %d, want 24", merged.Size())
	}
	if diff := cmp.Diff(mergedExample, render(merged)); diff != "" {
		t.Errorf("merged bitmap mismatch (-want +got):\n%s", diff)
	}
}

func TestMonsterRoundTrip(t *testing.T) {
	tiles := loadExample(t)
	g, err := Assemble(context.Background(), tiles)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	merged := g.MergeTiles()
	before := merged.Roughness()

	monsters := merged.RemoveMonsters()
	if monsters != 2 {
		t.Errorf("RemoveMonsters = %d matches, want 2", monsters)
	}
	if got := merged.Roughness(); got != 273 {
		t.Errorf("roughness = %d (was %d before scrub), want 273", got, before)
	}
}

// driftwood shares no border fingerprint with any reference tile, so a
// grid containing it can never complete.
var driftwood = []string{
	"##.#.##.##",
	"###.##...#",
	".#.####.#.",
	".#.###.##.",
	"##..#....#",
	".##.###...",
	".#...#..#.",
	"#....##.##",
	"###.###.##",
	"....###..#",
}

func exampleSubset(t *testing.T, ids ...uint64) []*tile.Tile {
	t.Helper()
	keep := make(map[uint64]bool)
	for _, id := range ids {
		keep[id] = true
	}
	var subset []*tile.Tile
	for _, tl := range loadExample(t) {
		if keep[tl.ID()] {
			subset = append(subset, tl)
		}
	}
	return subset
}

func TestAssembleErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("non-square tile count", func(t *testing.T) {
		tiles := loadExample(t)[:8]
		if _, err := Assemble(ctx, tiles); err == nil {
			t.Error("Assemble succeeded with 8 tiles")
		}
	})

	t.Run("inconsistent tile sizes", func(t *testing.T) {
		tiles := loadExample(t)[:3]
		small, err := tile.Parse(99, []string{".###", ".#.#", "#.#.", "...#"})
		if err != nil {
			t.Fatalf("parsing small tile: %v", err)
		}
		if _, err := Assemble(ctx, append(tiles, small)); err == nil {
			t.Error("Assemble succeeded with mixed tile sizes")
		}
	})

	t.Run("no corner", func(t *testing.T) {
		// Pairwise disconnected except 1951-2311: no tile has two
		// neighbors.
		tiles := exampleSubset(t, 1951, 2311, 2971, 1171)
		if _, err := Assemble(ctx, tiles); err == nil {
			t.Error("Assemble succeeded without a corner tile")
		}
	})

	t.Run("corner orientation", func(t *testing.T) {
		// 2311 has exactly two neighbors here, but they attach to
		// opposite edges, so no orientation puts one on its right and
		// one below.
		tiles := exampleSubset(t, 1951, 2311, 3079, 2971)
		if _, err := Assemble(ctx, tiles); err == nil {
			t.Error("Assemble succeeded with an unorientable corner")
		}
	})

	t.Run("incomplete grid", func(t *testing.T) {
		tiles := exampleSubset(t, 1951, 2311, 3079, 2729, 1427, 2473, 2971, 1489)
		stray, err := tile.Parse(9999, driftwood)
		if err != nil {
			t.Fatalf("parsing driftwood tile: %v", err)
		}
		if _, err := Assemble(ctx, append(tiles, stray)); err == nil {
			t.Error("Assemble succeeded with a disconnected ninth tile")
		}
	})
}

func TestSqrtExact(t *testing.T) {
	for want := 0; want < 40; want++ {
		got, ok := sqrtExact(want * want)
		if !ok || got != want {
			t.Errorf("sqrtExact(%d) = %d, %v; want %d, true", want*want, got, ok, want)
		}
	}
	for _, n := range []int{2, 3, 5, 8, 24, 99} {
		if _, ok := sqrtExact(n); ok {
			t.Errorf("sqrtExact(%d) reported a perfect square", n)
		}
	}
}
