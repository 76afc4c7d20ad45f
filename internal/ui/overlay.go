//go:build ebiten

package ui

import (
	"image/color"

	"sandtris/internal/board"
	"sandtris/internal/core"
	"sandtris/internal/tetromino"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type settledProvider interface {
	Settled() core.Grid
}

type pieceProvider interface {
	Active() (board.Piece, bool)
}

// Overlay draws optional debugging visuals on top of the board: loose blocks
// that are still falling, and the active piece's shape box.
type Overlay struct {
	sim         core.Sim
	scale       int
	showFalling bool
	showBox     bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers: 1 for falling blocks, 2 for the piece box.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFalling = !o.showFalling
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBox = !o.showBox
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showFalling {
		if provider, ok := o.sim.(settledProvider); ok {
			g := provider.Settled()
			for row := 0; row < g.Height(); row++ {
				for col := 0; col < g.Width(); col++ {
					if g.At(row, col).Occupied && g.IsFalling(row, col) {
						o.fillRect(screen, col*scale, row*scale, scale, scale, fallingTint)
					}
				}
			}
		}
	}
	if o.showBox {
		if provider, ok := o.sim.(pieceProvider); ok {
			if p, active := provider.Active(); active {
				o.drawBox(screen, p, scale)
			}
		}
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, p board.Piece, scale int) {
	x := p.Col * scale
	y := p.Row * scale
	side := tetromino.BoxSize * scale
	o.fillRect(screen, x, y, side, 1, boxColor)
	o.fillRect(screen, x, y+side-1, side, 1, boxColor)
	o.fillRect(screen, x, y, 1, side, boxColor)
	o.fillRect(screen, x+side-1, y, 1, side, boxColor)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}

var (
	fallingTint = color.RGBA{R: 128, G: 128, B: 128, A: 128}
	boxColor    = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)
