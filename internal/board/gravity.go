package board

import "sandtris/internal/core"

// blocksDown moves every settled block with an empty cell directly below it
// down one row. Rows are swept bottom to top so a block never drops into a
// slot vacated during the same sweep.
func blocksDown(g core.Grid) {
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	for row := h - 2; row >= 0; row-- {
		for col := 0; col < w; col++ {
			i := row*w + col
			below := i + w
			if cells[i].Occupied && !cells[below].Occupied {
				cells[below] = cells[i]
				cells[i] = core.Cell{}
			}
		}
	}
}

// blocksLeft shifts falling blocks one column left where the neighbor is
// empty. Increasing index order keeps a run of blocks from moving twice.
func blocksLeft(g core.Grid) {
	w := g.Width()
	cells := g.Cells()
	for i := 1; i < len(cells); i++ {
		col := i % w
		if col == 0 || !cells[i].Occupied || cells[i-1].Occupied {
			continue
		}
		if !g.IsFalling(i/w, col) {
			continue
		}
		cells[i-1] = cells[i]
		cells[i] = core.Cell{}
	}
}

// blocksRight is the mirror of blocksLeft, sweeping in decreasing order.
func blocksRight(g core.Grid) {
	w := g.Width()
	cells := g.Cells()
	for i := len(cells) - 2; i >= 0; i-- {
		col := i % w
		if col == w-1 || !cells[i].Occupied || cells[i+1].Occupied {
			continue
		}
		if !g.IsFalling(i/w, col) {
			continue
		}
		cells[i+1] = cells[i]
		cells[i] = core.Cell{}
	}
}
