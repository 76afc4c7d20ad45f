//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"sandtris/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the board view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the board view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Board"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	title := h.title
	if h.paused {
		title += " (paused)"
	}
	text.Draw(h.panel, title, face, panelPadding, y, headerColor)

	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y+infoSpacing, dimColor)
		return
	}
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, dimColor)
		for _, param := range group.Params {
			y += lineHeight
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			value := param.Value
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
		}
	}
	y += groupSpacing
	for _, line := range helpLines {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
}

var helpLines = []string{
	"arrows  move/rotate",
	"space   pause",
	"n       step",
	"r/s     reset/reseed",
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 24
	headerBaseline = 18
	infoSpacing    = 36
)
