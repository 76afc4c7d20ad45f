// Package board implements the falling-block simulation: settled blocks
// fall like sand, a single tetromino descends under player control, and a
// landed tetromino breaks apart into loose blocks.
package board

import (
	"errors"
	"fmt"

	"sandtris/internal/core"
	"sandtris/internal/tetromino"
	pcore "sandtris/pkg/core"
)

// ErrGridTooSmall is returned for grids narrower than the 4 column shape box.
var ErrGridTooSmall = errors.New("board: grid narrower than the shape box")

// Randomizer draws the kind of each spawned piece. IntN must return a value
// in [0, n); *rand.Rand and *pkg/core.RNG both qualify.
type Randomizer interface {
	IntN(n int) int
}

// Stats counts board events since construction or the last Reset.
type Stats struct {
	Ticks      uint64
	Spawns     uint64
	Dismantles uint64
}

// Board owns the settled grid, the active piece and the spawn randomizer.
// It is not safe for concurrent use.
type Board struct {
	initial core.Grid
	grid    core.Grid

	piece  Piece
	active bool

	rng Randomizer
	// ownRNG is set when the board built its own PCG source; only then
	// does Reset reseed it.
	ownRNG bool
	seed   int64
	stats  Stats
}

// New builds a board from an initial layout. The layout is copied.
func New(initial core.Grid, rng Randomizer) (*Board, error) {
	size := initial.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("board: %w: %dx%d", core.ErrInvalidSize, size.W, size.H)
	}
	if size.W < tetromino.BoxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, size.W, size.H)
	}
	b := &Board{
		initial: initial.Clone(),
		grid:    initial.Clone(),
		rng:     rng,
	}
	if rng == nil {
		b.rng, b.ownRNG = pcore.NewRNG(0), true
	}
	return b, nil
}

// NewSeeded builds a board whose spawns are driven by a PCG source seeded
// with seed, so a fixed seed and call sequence replays exactly.
func NewSeeded(initial core.Grid, seed int64) (*Board, error) {
	b, err := New(initial, pcore.NewRNG(seed))
	if err != nil {
		return nil, err
	}
	b.ownRNG = true
	b.seed = seed
	return b, nil
}

// NewWithConfig builds an empty board from cfg.
func NewWithConfig(cfg Config) (*Board, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	return NewSeeded(g, cfg.Seed)
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "sandtris" }

// Size reports the grid dimensions.
func (b *Board) Size() core.Size { return b.grid.Size() }

// Seed returns the seed given to NewSeeded or the last Reset.
func (b *Board) Seed() int64 { return b.seed }

// Reset restores the initial layout and drops the active piece. A board that
// owns its PCG source reseeds it with seed. A Randomizer passed to New is
// kept as is and keeps drawing where it left off.
func (b *Board) Reset(seed int64) {
	b.grid = b.initial.Clone()
	b.piece = Piece{}
	b.active = false
	if b.ownRNG {
		b.rng = pcore.NewRNG(seed)
	}
	b.seed = seed
	b.stats = Stats{}
}

// Advance runs one tick. While anything is falling or a piece is active,
// loose blocks drop one row and then the piece drops one row, breaking apart
// if it can fall no further. Otherwise a new piece spawns and nothing moves.
func (b *Board) Advance() {
	b.stats.Ticks++
	if !b.active && !b.grid.AnyFalling() {
		b.spawn()
		return
	}
	blocksDown(b.grid)
	if !b.active {
		return
	}
	b.piece.Row++
	if !b.piece.falling(b.grid) {
		b.dismantle()
	}
}

// Left moves the active piece one column left, then shifts falling loose
// blocks left.
func (b *Board) Left() {
	if b.active {
		b.piece.moveLeft()
	}
	blocksLeft(b.grid)
}

// Right moves the active piece one column right, then shifts falling loose
// blocks right.
func (b *Board) Right() {
	if b.active {
		b.piece.moveRight(b.grid.Width())
	}
	blocksRight(b.grid)
}

// Rotate turns the active piece to its next orientation, nudging it back
// inside the walls if needed. It does nothing without an active piece.
func (b *Board) Rotate() {
	if !b.active {
		return
	}
	b.piece.rotate(b.grid.Width())
}

// Cells returns the settled grid with the active piece drawn on top.
func (b *Board) Cells() core.Grid {
	out := b.grid.Clone()
	if b.active {
		b.piece.stamp(out)
	}
	return out
}

// Settled returns a copy of the settled grid without the active piece.
func (b *Board) Settled() core.Grid { return b.grid.Clone() }

// Active returns the falling piece, if any.
func (b *Board) Active() (Piece, bool) { return b.piece, b.active }

// State reports the current phase of the tick state machine.
func (b *Board) State() State {
	switch {
	case b.active:
		return Descending
	case b.grid.AnyFalling():
		return Resolving
	default:
		return Idle
	}
}

// Stats returns the event counters.
func (b *Board) Stats() Stats { return b.stats }

// Dismantles reports how many pieces have broken apart so far.
func (b *Board) Dismantles() uint64 { return b.stats.Dismantles }

func (b *Board) spawn() {
	n := b.rng.IntN(tetromino.Count)
	if n < 0 || n >= tetromino.Count {
		panic(fmt.Sprintf("board: randomizer returned %d, want [0,%d)", n, tetromino.Count))
	}
	b.piece = spawnPiece(tetromino.Kind(n), b.grid.Width())
	b.active = true
	b.stats.Spawns++
}

func (b *Board) dismantle() {
	b.piece.stamp(b.grid)
	b.piece = Piece{}
	b.active = false
	b.stats.Dismantles++
}
