package term

import (
	"github.com/gdamore/tcell/v2"

	"sandtris/internal/core"
)

const (
	blockRune = '█'
	emptyRune = '·'
	// CellWidth is the number of terminal columns per board column.
	CellWidth = 2
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Draw renders the board inside a border and the parameter panel beside it.
func (u *UI) Draw() {
	u.screen.Clear()
	g := u.sim.Cells()
	w, h := g.Width(), g.Height()

	for row := 0; row < h; row++ {
		u.screen.SetContent(0, row, '│', nil, borderStyle)
		u.screen.SetContent(1+w*CellWidth, row, '│', nil, borderStyle)
		for col := 0; col < w; col++ {
			x := 1 + col*CellWidth
			c := g.At(row, col)
			if !c.Occupied {
				u.screen.SetContent(x, row, emptyRune, nil, emptyStyle)
				u.screen.SetContent(x+1, row, ' ', nil, emptyStyle)
				continue
			}
			style := u.styles[int(c.Color)%len(u.styles)]
			u.screen.SetContent(x, row, blockRune, nil, style)
			u.screen.SetContent(x+1, row, blockRune, nil, style)
		}
	}
	u.screen.SetContent(0, h, '└', nil, borderStyle)
	for x := 1; x <= w*CellWidth; x++ {
		u.screen.SetContent(x, h, '─', nil, borderStyle)
	}
	u.screen.SetContent(1+w*CellWidth, h, '┘', nil, borderStyle)

	u.drawPanel(w*CellWidth + 4)
	u.screen.Show()
}

func (u *UI) drawPanel(x int) {
	y := 0
	title := u.sim.Name()
	if u.paused {
		title += " (paused)"
	}
	u.drawText(x, y, title, textStyle)
	y += 2
	for _, group := range u.snapshot().Groups {
		u.drawText(x, y, group.Name, dimStyle)
		y++
		for _, param := range group.Params {
			u.drawText(x+1, y, param.Label+": "+param.Value, textStyle)
			y++
		}
		y++
	}
	if u.message != "" {
		u.drawText(x, y, u.message, dimStyle)
		y += 2
	}
	for _, line := range helpLines {
		u.drawText(x, y, line, dimStyle)
		y++
	}
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

var helpLines = []string{
	"arrows/h l k move",
	"space pause  n step",
	"r reset  s reseed",
	"q quit",
}

func (u *UI) snapshot() core.ParameterSnapshot {
	if p, ok := u.sim.(core.ParameterProvider); ok {
		return p.Parameters()
	}
	return core.ParameterSnapshot{}
}
