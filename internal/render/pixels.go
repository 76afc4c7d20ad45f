// Package render converts board snapshots into pixels.
package render

import (
	"image/color"

	"sandtris/internal/core"
)

// Palette maps block colors to display colors.
type Palette struct {
	Blocks     [core.ColorCount]color.RGBA
	Background color.RGBA
}

// DefaultPalette returns the standard block colors on a dark background.
func DefaultPalette() Palette {
	return Palette{
		Blocks: [core.ColorCount]color.RGBA{
			core.Cyan:    {R: 84, G: 248, B: 215, A: 255},
			core.Blue:    {R: 84, G: 116, B: 248, A: 255},
			core.Magenta: {R: 215, G: 84, B: 248, A: 255},
			core.Yellow:  {R: 248, G: 215, B: 86, A: 255},
			core.Orange:  {R: 255, G: 153, B: 102, A: 255},
			core.Green:   {R: 171, G: 248, B: 84, A: 255},
			core.Red:     {R: 248, G: 106, B: 84, A: 255},
		},
		Background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
	}
}

// Color returns the display color of a cell.
func (p Palette) Color(c core.Cell) color.RGBA {
	if !c.Occupied {
		return p.Background
	}
	if int(c.Color) >= len(p.Blocks) {
		return p.Blocks[len(p.Blocks)-1]
	}
	return p.Blocks[c.Color]
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold at
// least 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []core.Cell, palette Palette) {
	for i, c := range cells {
		col := palette.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
