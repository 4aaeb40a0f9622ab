package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// Load parses the canonical level format: comma-separated signed tile ids,
// one row per line, strictly rectangular. -1 marks an empty cell. A row of
// the wrong width or an unparseable id is an authoring error; level load
// failures abort startup, there is no partial-level recovery.
func Load(r io.Reader, tileSize int) (*Grid, error) {
	var rows [][]int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("level line %d, cell %d: parse %q: %w", line, i, f, err)
			}
			row[i] = id
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("level line %d: %d cells, want %d (rows must be rectangular)",
				line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read level: no rows")
	}

	g := NewGrid(len(rows[0]), len(rows), tileSize)
	for y, row := range rows {
		copy(g.Tiles[y*g.Width:], row)
	}
	return g, nil
}

// LoadFile reads a level from fsys so callers can pass embed.FS or
// os.DirFS.
func LoadFile(fsys fs.FS, path string, tileSize int) (*Grid, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return g, nil
}

// Store writes the grid back out in the canonical format. Load(Store(g))
// yields an identical id array and dimensions.
func (g *Grid) Store(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				if err := bw.WriteByte(','); err != nil {
					return fmt.Errorf("store level: %w", err)
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(g.Tiles[x+y*g.Width])); err != nil {
				return fmt.Errorf("store level: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("store level: %w", err)
		}
	}
	return bw.Flush()
}
