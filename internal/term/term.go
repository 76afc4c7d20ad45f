// Package term runs the board in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandtris/internal/core"
	"sandtris/internal/input"
	"sandtris/internal/render"
	"sandtris/internal/sound"
)

// Options configures a terminal session.
type Options struct {
	// Rate is the number of board ticks per second.
	Rate    int
	Seed    int64
	Palette render.Palette
	Sound   sound.Player
	Logger  *slog.Logger
}

type landingCounter interface {
	Dismantles() uint64
}

// UI owns the board for the lifetime of a session. All board calls happen
// on the goroutine running Run.
type UI struct {
	screen  tcell.Screen
	sim     core.Sim
	rate    int
	seed    int64
	styles  [core.ColorCount]tcell.Style
	player  sound.Player
	log     *slog.Logger
	paused  bool
	landed  uint64
	message string
}

// New wraps an initialised screen.
func New(screen tcell.Screen, sim core.Sim, opts Options) *UI {
	if opts.Rate <= 0 {
		opts.Rate = 1
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	u := &UI{
		screen: screen,
		sim:    sim,
		rate:   opts.Rate,
		seed:   opts.Seed,
		player: opts.Sound,
		log:    opts.Logger,
	}
	for c := range u.styles {
		rgba := opts.Palette.Blocks[c]
		u.styles[c] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
	}
	u.landed = u.dismantles()
	return u
}

// Run processes input and ticks until the user quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(u.rate))
	defer ticker.Stop()

	u.log.Info("session started", "sim", u.sim.Name(), "rate", u.rate, "seed", u.seed)
	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !u.HandleEvent(ev) {
				u.log.Info("session ended", "ticks", u.ticks())
				return nil
			}
			u.Draw()
		case <-ticker.C:
			if !u.paused {
				u.Tick()
			}
			u.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the session
// should continue.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r := rune(0)
		if ev.Key() == tcell.KeyRune {
			r = ev.Rune()
		}
		return u.HandleKey(ev.Key(), r)
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

// HandleKey applies a key press. r is only consulted for tcell.KeyRune.
func (u *UI) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ', 'p':
			u.paused = !u.paused
			return true
		case 'n':
			u.Tick()
			return true
		case 'r':
			u.reset(u.seed)
			return true
		case 's':
			u.reset(time.Now().UnixNano())
			return true
		}
	}
	if u.paused {
		return true
	}
	input.Apply(u.sim, keyCommand(key, r))
	return true
}

// Tick advances the board once and plays the landing sound when a piece
// broke apart.
func (u *UI) Tick() {
	u.sim.Advance()
	if n := u.dismantles(); n > u.landed {
		u.landed = n
		u.player.Land()
		u.log.Debug("piece landed", "total", n)
	}
}

func (u *UI) reset(seed int64) {
	u.seed = seed
	u.sim.Reset(seed)
	u.landed = u.dismantles()
	u.message = fmt.Sprintf("reset seed %d", seed)
	u.log.Info("reset", "seed", seed)
}

func (u *UI) dismantles() uint64 {
	if c, ok := u.sim.(landingCounter); ok {
		return c.Dismantles()
	}
	return 0
}

func (u *UI) ticks() string {
	if v, ok := u.snapshot().Lookup("ticks"); ok {
		return v.Value
	}
	return "?"
}

func keyCommand(key tcell.Key, r rune) input.Command {
	switch key {
	case tcell.KeyLeft:
		return input.FromKey("ArrowLeft")
	case tcell.KeyRight:
		return input.FromKey("ArrowRight")
	case tcell.KeyUp:
		return input.FromKey("ArrowUp")
	case tcell.KeyRune:
		switch r {
		case 'h':
			return input.Left
		case 'l':
			return input.Right
		case 'k':
			return input.Rotate
		}
	}
	return input.None
}
