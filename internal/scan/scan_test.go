package scan

import (
	"strings"
	"testing"
)

const twoTiles = `Tile 7:
#.#.
#.##
.#..
###.

Tile 8:
.###
.#.#
#.#.
...#
`

func TestTiles(t *testing.T) {
	tiles, err := Tiles(strings.NewReader(twoTiles))
	if err != nil {
		t.Fatalf("Tiles failed: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("parsed %d tiles, want 2", len(tiles))
	}
	if tiles[0].ID() != 7 || tiles[1].ID() != 8 {
		t.Errorf("ids = %d, %d; want 7, 8", tiles[0].ID(), tiles[1].ID())
	}
	if tiles[0].Size() != 4 {
		t.Errorf("size = %d, want 4", tiles[0].Size())
	}
}

func TestTilesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"blank lines only", "\n\n\n"},
		{"missing prefix", "7:\n#.#.\n#.##\n.#..\n###.\n"},
		{"missing colon", "Tile 7\n#.#.\n#.##\n.#..\n###.\n"},
		{"non-numeric id", "Tile seven:\n#.#.\n#.##\n.#..\n###.\n"},
		{"duplicate id", twoTiles + "\nTile 7:\n#.#.\n#.##\n.#..\n###.\n"},
		{"header without rows", "Tile 7:\n"},
		{"bad tile data", "Tile 7:\n#.#.\n.@##\n.#..\n###.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Tiles(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Tiles(%q) succeeded, want error", tt.input)
			}
		})
	}
}
