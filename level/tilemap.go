// Package level loads tile maps and answers solidity queries for the physics core.
package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Raw tile IDs with reserved meaning. Everything else is solid.
const (
	TileAir    uint8 = 0
	TileStart  uint8 = 78
	TileFinish uint8 = 110
)

// Kind classifies a raw tile ID for gameplay.
type Kind uint8

const (
	KindAir Kind = iota
	KindStart
	KindFinish
	KindSolid
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindStart:
		return "start"
	case KindFinish:
		return "finish"
	default:
		return "solid"
	}
}

// KindOf maps a raw tile ID to its gameplay kind.
func KindOf(id uint8) Kind {
	switch id {
	case TileAir:
		return KindAir
	case TileStart:
		return KindStart
	case TileFinish:
		return KindFinish
	default:
		return KindSolid
	}
}

// TileMap is an immutable grid of tile IDs. World coordinates map to cells
// through TileSize; queries outside the grid clamp to the nearest edge cell,
// so every world point resolves to exactly one tile.
type TileMap struct {
	Width    int
	Height   int
	TileSize float64

	tiles []uint8
	kinds []Kind
}

// Parse reads a map: one row per line, whitespace-separated tile IDs.
// Ragged rows and IDs outside the one-byte range are fatal; no partial map
// is ever returned.
func Parse(r io.Reader, tileSize float64) (*TileMap, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %v", tileSize)
	}

	m := &TileMap{TileSize: tileSize}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if m.Width == 0 {
			m.Width = len(fields)
		} else if len(fields) != m.Width {
			return nil, fmt.Errorf("line %d: row has %d tiles, want %d", lineNo, len(fields), m.Width)
		}

		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad tile %q: %w", lineNo, f, err)
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("line %d: tile value %d outside 0-255", lineNo, v)
			}
			m.tiles = append(m.tiles, uint8(v))
			m.kinds = append(m.kinds, KindOf(uint8(v)))
		}
		m.Height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	if m.Width == 0 || m.Height == 0 {
		return nil, fmt.Errorf("map is empty")
	}

	return m, nil
}

// Load parses a map file from disk.
func Load(path string, tileSize float64) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()

	m, err := Parse(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// clampCell converts a world coordinate to a cell index along one axis.
func clampCell(w float64, size float64, n int) int {
	c := int(w / size)
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// cellIndex returns the flat index for a world point, clamped to the grid.
func (m *TileMap) cellIndex(x, y float64) int {
	cx := clampCell(x, m.TileSize, m.Width)
	cy := clampCell(y, m.TileSize, m.Height)
	return cy*m.Width + cx
}

// SolidAt reports whether the tile under a world point blocks movement.
// Air, start and finish tiles do not.
func (m *TileMap) SolidAt(x, y float64) bool {
	return m.kinds[m.cellIndex(x, y)] == KindSolid
}

// TileAt returns the raw tile ID under a world point.
func (m *TileMap) TileAt(p r2.Vec) uint8 {
	return m.tiles[m.cellIndex(p.X, p.Y)]
}

// KindAt returns the gameplay kind under a world point.
func (m *TileMap) KindAt(p r2.Vec) Kind {
	return m.kinds[m.cellIndex(p.X, p.Y)]
}

// Cell returns the raw tile ID at a cell coordinate. Used by the renderer
// and map tools; out-of-range cells read as air.
func (m *TileMap) Cell(cx, cy int) uint8 {
	if cx < 0 || cx >= m.Width || cy < 0 || cy >= m.Height {
		return TileAir
	}
	return m.tiles[cy*m.Width+cx]
}

// KindCell returns the kind at a cell coordinate.
func (m *TileMap) KindCell(cx, cy int) Kind {
	return KindOf(m.Cell(cx, cy))
}

// WorldWidth returns the map extent in world units.
func (m *TileMap) WorldWidth() float64 { return float64(m.Width) * m.TileSize }

// WorldHeight returns the map extent in world units.
func (m *TileMap) WorldHeight() float64 { return float64(m.Height) * m.TileSize }

// Census counts tiles by kind, for map tooling and load logs.
func (m *TileMap) Census() (air, start, finish, solid int) {
	for _, k := range m.kinds {
		switch k {
		case KindAir:
			air++
		case KindStart:
			start++
		case KindFinish:
			finish++
		default:
			solid++
		}
	}
	return air, start, finish, solid
}
