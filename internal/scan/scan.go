// Package scan tokenizes plain-text tile input into parsed tiles.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/jigsaw/internal/tile"
)

// Tiles reads blank-line-separated tile blocks, each a "Tile NNNN:"
// header followed by rows of '.' and '#'. It returns the parsed tiles
// in input order.
func Tiles(r io.Reader) ([]*tile.Tile, error) {
	scanner := bufio.NewScanner(r)
	var tiles []*tile.Tile
	seen := make(map[uint64]bool)

	for scanner.Scan() {
		header := strings.TrimSpace(scanner.Text())
		if header == "" {
			continue
		}
		id, err := parseHeader(header)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate tile id %d", id)
		}
		seen[id] = true

		var rows []string
		for scanner.Scan() {
			row := strings.TrimSpace(scanner.Text())
			if row == "" {
				break
			}
			rows = append(rows, row)
		}

		t, err := tile.Parse(id, rows)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", id, err)
		}
		tiles = append(tiles, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tile input: %w", err)
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles in input")
	}
	return tiles, nil
}

// parseHeader extracts the identifier from a "Tile NNNN:" line.
func parseHeader(line string) (uint64, error) {
	rest, ok := strings.CutPrefix(line, "Tile ")
	if !ok {
		return 0, fmt.Errorf("malformed tile header %q", line)
	}
	rest, ok = strings.CutSuffix(rest, ":")
	if !ok {
		return 0, fmt.Errorf("malformed tile header %q", line)
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed tile header %q: %w", line, err)
	}
	return id, nil
}
