// Package level holds level layouts and the static collision geometry built
// from them.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/milk9111/treasurehunt/common"
)

var ErrInvalidLayout = errors.New("level: invalid layout")

// Layout is the persisted description of a level: a solid tile grid and the
// archetype placements on it. Either Tiles/Placements or Rows/Legend may be
// given; Rows wins when present.
type Layout struct {
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Tiles is row-major; any non-zero value is solid.
	Tiles      []int       `json:"tiles,omitempty"`
	Placements []Placement `json:"placements,omitempty"`

	// Rows is a character grid: '#' is solid, '.' and ' ' are empty, and
	// any other rune is looked up in Legend as an archetype name.
	Rows   []string          `json:"rows,omitempty"`
	Legend map[string]string `json:"legend,omitempty"`
}

// Placement puts one archetype on the tile at Col, Row. Entities are
// anchored at the bottom-center of their tile.
type Placement struct {
	Archetype string `json:"archetype"`
	Col       int    `json:"col"`
	Row       int    `json:"row"`
	Facing    string `json:"facing,omitempty"`
}

// Anchor returns the world-space bottom-center point of the tile.
func (p Placement) Anchor() (x, y float64) {
	return float64(p.Col*common.TileSize) + common.TileSize/2, float64((p.Row + 1) * common.TileSize)
}

// LoadLayout reads a layout JSON file from disk.
func LoadLayout(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	return ParseLayout(b)
}

// LoadLayoutFS reads a layout JSON file from an fs.FS such as the embedded
// levels.
func LoadLayoutFS(fsys fs.FS, path string) (*Layout, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	return ParseLayout(b)
}

// ParseLayout decodes and validates a layout.
func ParseLayout(b []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if len(l.Rows) > 0 {
		if err := l.expandRows(); err != nil {
			return nil, err
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// FromRows builds a layout from a character grid.
func FromRows(rows []string, legend map[rune]string) (*Layout, error) {
	l := &Layout{Rows: rows, Legend: make(map[string]string, len(legend))}
	for r, name := range legend {
		l.Legend[string(r)] = name
	}
	if err := l.expandRows(); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) expandRows() error {
	l.Height = len(l.Rows)
	l.Width = 0
	for _, row := range l.Rows {
		l.Width = max(l.Width, len([]rune(row)))
	}
	l.Tiles = make([]int, l.Width*l.Height)
	l.Placements = l.Placements[:0]
	for y, row := range l.Rows {
		for x, r := range []rune(row) {
			switch r {
			case '#':
				l.Tiles[y*l.Width+x] = 1
			case '.', ' ':
			default:
				name, ok := l.Legend[string(r)]
				if !ok {
					return fmt.Errorf("%w: unknown rune %q at %d,%d", ErrInvalidLayout, r, x, y)
				}
				facing := ""
				if archetype, dir, found := strings.Cut(name, ":"); found {
					name, facing = archetype, dir
				}
				l.Placements = append(l.Placements, Placement{Archetype: name, Col: x, Row: y, Facing: facing})
			}
		}
	}
	return nil
}

// Validate checks dimensions and placement bounds.
func (l *Layout) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLayout, l.Width, l.Height)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("%w: %d tiles for %dx%d grid", ErrInvalidLayout, len(l.Tiles), l.Width, l.Height)
	}
	for i, p := range l.Placements {
		if p.Archetype == "" {
			return fmt.Errorf("%w: placement %d has no archetype", ErrInvalidLayout, i)
		}
		if p.Col < 0 || p.Col >= l.Width || p.Row < 0 || p.Row >= l.Height {
			return fmt.Errorf("%w: placement %s at %d,%d outside grid", ErrInvalidLayout, p.Archetype, p.Col, p.Row)
		}
	}
	return nil
}

// Solid reports whether the tile at x, y is solid. Out-of-range tiles are
// empty.
func (l *Layout) Solid(x, y int) bool {
	if l == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return false
	}
	return l.Tiles[y*l.Width+x] != 0
}
