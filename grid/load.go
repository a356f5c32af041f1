package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedHeader indicates the map file's header lines do not match the
// expected "type/height/width/map" sequence.
var ErrMalformedHeader = errors.New("grid: malformed map file header")

// Load parses the textual map-file format of spec.md §6:
//
//	line 1: "type <string>"   (ignored)
//	line 2: "height <N>"
//	line 3: "width <M>"
//	line 4: "map"             (marker, content ignored)
//	lines 5..5+N-1: exactly M characters each; '.' = Free, anything else = Wall
//
// Row index 0 in the file is the top row and becomes y=0 directly, with no
// vertical mirroring: South increases y, matching the row-major order the
// file is written in (grounded on original_source/src/load_map.rs's direct
// map[x][y] = lines[x+4][y] assignment, with x/y read as column/row here).
func Load(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line, ok := next(sc)
	if !ok || !strings.HasPrefix(line, "type ") {
		return nil, fmt.Errorf("%w: expected 'type <string>'", ErrMalformedHeader)
	}

	line, ok = next(sc)
	height, err := parseKV(line, ok, "height")
	if err != nil {
		return nil, err
	}

	line, ok = next(sc)
	width, err := parseKV(line, ok, "width")
	if err != nil {
		return nil, err
	}

	line, ok = next(sc)
	if !ok || strings.TrimSpace(line) != "map" {
		return nil, fmt.Errorf("%w: expected 'map' marker", ErrMalformedHeader)
	}

	fileRows := make([]string, height)
	for i := 0; i < height; i++ {
		row, ok := next(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d map rows, got %d", ErrMalformedHeader, height, i)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedHeader, i, len(row), width)
		}
		fileRows[i] = row
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: Load: %w", err)
	}

	tiles := make([][]Tile, height)
	for y, row := range fileRows {
		tiles[y] = make([]Tile, width)
		for x, ch := range row {
			if ch == '.' {
				tiles[y][x] = Free
			} else {
				tiles[y][x] = Wall
			}
		}
	}

	return New(tiles)
}

func next(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func parseKV(line string, ok bool, key string) (int, error) {
	if !ok || !strings.HasPrefix(line, key+" ") {
		return 0, fmt.Errorf("%w: expected '%s <N>'", ErrMalformedHeader, key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, key+" ")))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedHeader, key, err)
	}
	return n, nil
}
