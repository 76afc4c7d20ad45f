//go:build ebiten

package app

import (
	"time"

	"sandtris/internal/core"
	"sandtris/internal/input"
	"sandtris/internal/render"
	"sandtris/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 220

// Game adapts a board to the ebiten.Game interface. Update runs ebiten's
// frame cadence; the board advances on its own fixed step.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, rate int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		clock:   core.NewFixedStep(rate),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.clock.Restart()
}

// arrowKeys is polled in this order every frame.
var arrowKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, "ArrowLeft"},
	{ebiten.KeyArrowRight, "ArrowRight"},
	{ebiten.KeyArrowUp, "ArrowUp"},
}

// Update handles per-frame input and advances the board when the fixed
// step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused {
		for _, k := range arrowKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				input.Apply(g.sim, input.FromKey(k.name))
			}
		}
	}
	g.overlay.Update()

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Advance()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current board and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
