package board

import (
	"fmt"

	"sandtris/internal/core"
	"sandtris/internal/tetromino"
)

// Piece is the player-controlled tetromino. Row and Col anchor the top-left
// corner of its 4x4 shape box; Col may be negative when the shape's leftmost
// occupied column is not the first one.
type Piece struct {
	Kind        tetromino.Kind
	Orientation int
	Row         int
	Col         int
}

func spawnPiece(kind tetromino.Kind, width int) Piece {
	return Piece{Kind: kind, Row: 0, Col: width/2 - tetromino.BoxSize/2}
}

// Color returns the color the piece's blocks carry.
func (p Piece) Color() core.Color { return tetromino.Color(p.Kind) }

// each calls fn with the absolute position of every occupied cell.
func (p Piece) each(fn func(row, col int)) {
	m := tetromino.Cells(p.Kind, p.Orientation)
	for r := range m {
		for c, filled := range m[r] {
			if !filled {
				continue
			}
			col := p.Col + c
			if col < 0 {
				panic(fmt.Sprintf("board: piece %s/%d anchored at col %d puts a block at col %d", p.Kind, p.Orientation, p.Col, col))
			}
			fn(p.Row+r, col)
		}
	}
}

// Positions returns the absolute (row, col) of every occupied cell.
func (p Piece) Positions() [][2]int {
	out := make([][2]int, 0, 4)
	p.each(func(row, col int) { out = append(out, [2]int{row, col}) })
	return out
}

// falling reports whether every block of the piece still has an empty cell
// somewhere below it in the settled grid.
func (p Piece) falling(g core.Grid) bool {
	falling := true
	p.each(func(row, col int) {
		if !g.IsFalling(row, col) {
			falling = false
		}
	})
	return falling
}

// stamp writes the piece's blocks into g. Positions outside the grid are
// dropped.
func (p Piece) stamp(g core.Grid) {
	block := core.Block(p.Color())
	p.each(func(row, col int) {
		g.Set(row, col, block)
	})
}

// moveLeft shifts the piece one column left unless its leftmost block is
// already against the wall. Settled blocks are not consulted.
func (p *Piece) moveLeft() bool {
	e := tetromino.ExtentOf(p.Kind, p.Orientation)
	if p.Col+e.Left-1 < 0 {
		return false
	}
	p.Col--
	return true
}

// moveRight is the mirror of moveLeft.
func (p *Piece) moveRight(width int) bool {
	e := tetromino.ExtentOf(p.Kind, p.Orientation)
	if p.Col+e.Right+1 >= width {
		return false
	}
	p.Col++
	return true
}

// rotate advances the orientation and pulls the anchor back inside the
// walls by exactly the overflow.
func (p *Piece) rotate(width int) {
	p.Orientation = tetromino.Next(p.Orientation)
	e := tetromino.ExtentOf(p.Kind, p.Orientation)
	if left := p.Col + e.Left; left < 0 {
		p.Col -= left
	}
	if right := p.Col + e.Right; right > width-1 {
		p.Col -= right - (width - 1)
	}
}
