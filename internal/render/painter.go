//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandtris/internal/core"
)

// GridPainter updates a single RGBA image from a board snapshot.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	FillRGBA(gp.buf, g.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
