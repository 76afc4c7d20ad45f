package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Cell is either empty or occupied by a single colored block.
type Cell struct {
	Color    Color
	Occupied bool
}

// Block returns an occupied cell of the given color.
func Block(c Color) Cell { return Cell{Color: c, Occupied: true} }

// Grid stores cells in row-major order. Row 0 is the top, row H-1 the floor.
// Dimensions are fixed at construction.
type Grid struct {
	w, h int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return Grid{w: w, h: h, data: make([]Cell, w*h)}, nil
}

// MustGrid is NewGrid for fixed dimensions known to be valid.
func MustGrid(w, h int) Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size reports the grid dimensions.
func (g Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// Cells exposes the backing slice in row-major order.
func (g Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.w + col }

// In reports whether (row, col) lies inside the grid.
func (g Grid) In(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// At returns the cell at (row, col). Out-of-range positions read as empty.
func (g Grid) At(row, col int) Cell {
	if !g.In(row, col) {
		return Cell{}
	}
	return g.data[g.Index(row, col)]
}

// Set stores c at (row, col) and reports whether the position was inside
// the grid.
func (g Grid) Set(row, col int, c Cell) bool {
	if !g.In(row, col) {
		return false
	}
	g.data[g.Index(row, col)] = c
	return true
}

// Clear empties the cell at (row, col).
func (g Grid) Clear(row, col int) { g.Set(row, col, Cell{}) }

// IsFalling reports whether at least one empty cell exists strictly below
// (row, col) in the same column. Floor cells and positions outside the grid
// are never falling.
func (g Grid) IsFalling(row, col int) bool {
	if !g.In(row, col) {
		return false
	}
	for r := row + 1; r < g.h; r++ {
		if !g.data[g.Index(r, col)].Occupied {
			return true
		}
	}
	return false
}

// AnyFalling reports whether some occupied cell is falling.
func (g Grid) AnyFalling() bool {
	for row := g.h - 2; row >= 0; row-- {
		for col := 0; col < g.w; col++ {
			if g.data[g.Index(row, col)].Occupied && g.IsFalling(row, col) {
				return true
			}
		}
	}
	return false
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for _, c := range g.data {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with g.
func (g Grid) Clone() Grid {
	out := Grid{w: g.w, h: g.h, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String renders the grid in the layout format accepted by ParseGrid.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := g.data[g.Index(row, col)]
			if c.Occupied {
				b.WriteByte(c.Color.Letter())
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a layout: one line per row, '.' for empty and a color
// letter (c b m y o g r, or X for magenta) for occupied cells. Blank lines
// and lines starting with '#' are skipped; whitespace inside a row is
// ignored.
func ParseGrid(layout string) (Grid, error) {
	var rows [][]Cell
	for n, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var row []Cell
		for i := 0; i < len(line); i++ {
			ch := line[i]
			switch {
			case ch == ' ' || ch == '\t' || ch == ',':
				continue
			case ch == '.':
				row = append(row, Cell{})
			default:
				c, ok := ColorForLetter(ch)
				if !ok {
					return Grid{}, fmt.Errorf("layout line %d: unknown cell %q", n+1, ch)
				}
				row = append(row, Block(c))
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return Grid{}, fmt.Errorf("layout line %d: row has %d cells, want %d", n+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return Grid{}, fmt.Errorf("%w: empty layout", ErrInvalidSize)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		copy(g.data[r*g.w:(r+1)*g.w], row)
	}
	return g, nil
}
