package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandtris/internal/core"
	"sandtris/internal/tetromino"
	pcore "sandtris/pkg/core"
)

const empty7 = `
	.......
	.......
	.......
	.......
	.......
	.......
	.......`

func TestTetrominoSpawnsWhenAllBlocksHaveFallen(t *testing.T) {
	b := newTestBoard(t, `
		.......
		.......
		.......
		.......
		..X....
		.......
		.......`)
	b.Advance()
	b.Advance()
	_, active := b.Active()
	require.False(t, active, "no spawn while blocks are falling")

	b.Advance()
	assertCells(t, b, `
		...X...
		..XXX..
		.......
		.......
		.......
		.......
		..X....`)
}

func TestSpawnedPieceIsCenteredAtTop(t *testing.T) {
	g := core.MustGrid(10, 20)
	b, err := New(g, &kindSequence{kinds: []tetromino.Kind{tetromino.I}})
	require.NoError(t, err)
	b.Advance()

	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: tetromino.I, Orientation: 0, Row: 0, Col: 3}, p)
	assert.Equal(t, [][2]int{{1, 3}, {1, 4}, {1, 5}, {1, 6}}, p.Positions())
	assert.Equal(t, core.Cyan, b.Cells().At(1, 3).Color)
}

func TestAdvanceMovesTetrominoOneCellDown(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	assertCells(t, b, `
		...X...
		..XXX..
		.......
		.......
		.......
		.......
		.......`)

	b.Advance()
	assertCells(t, b, `
		.......
		...X...
		..XXX..
		.......
		.......
		.......
		.......`)
}

func TestLeftStopsTetrominoAtWalls(t *testing.T) {
	b := newTestBoard(t, empty7)
	for range 4 {
		b.Advance()
	}
	b.Left()
	b.Left()
	want := `
		.......
		.......
		.......
		.X.....
		XXX....
		.......
		.......`
	assertCells(t, b, want)

	b.Left()
	assertCells(t, b, want)
}

func TestRightStopsTetrominoAtWalls(t *testing.T) {
	b := newTestBoard(t, empty7)
	for range 4 {
		b.Advance()
	}
	b.Right()
	b.Right()
	want := `
		.......
		.......
		.......
		.....X.
		....XXX
		.......
		.......`
	assertCells(t, b, want)

	b.Right()
	assertCells(t, b, want)
}

func TestFallingTetrominoDismantlesAtBottom(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	b.Advance()
	b.Rotate()
	b.Advance()
	b.Advance()
	b.Advance()
	assertCells(t, b, `
		.......
		.......
		.......
		.......
		...X...
		...XX..
		...X...`)
	_, active := b.Active()
	require.False(t, active, "piece touching the floor breaks apart")
	assert.Equal(t, Resolving, b.State())

	b.Advance()
	assertCells(t, b, `
		.......
		.......
		.......
		.......
		...X...
		...X...
		...XX..`)
	assert.Equal(t, Idle, b.State())
}

func TestRotatingATCyclesThroughAllOrientations(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	b.Advance()
	assertCells(t, b, `
		.......
		...X...
		..XXX..
		.......
		.......
		.......
		.......`)

	b.Rotate()
	assertCells(t, b, `
		.......
		...X...
		...XX..
		...X...
		.......
		.......
		.......`)

	b.Rotate()
	assertCells(t, b, `
		.......
		.......
		..XXX..
		...X...
		.......
		.......
		.......`)

	b.Rotate()
	assertCells(t, b, `
		.......
		...X...
		..XX...
		...X...
		.......
		.......
		.......`)

	b.Rotate()
	assertCells(t, b, `
		.......
		...X...
		..XXX..
		.......
		.......
		.......
		.......`)
}

func TestRotationNearLeftWallIsPulledBackInside(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	b.Advance()
	b.Rotate()
	b.Left()
	b.Left()
	b.Left()
	assertCells(t, b, `
		.......
		X......
		XX.....
		X......
		.......
		.......
		.......`)
	p, _ := b.Active()
	assert.Equal(t, -2, p.Col, "anchor may sit left of the grid while blocks stay inside")

	b.Rotate()
	assertCells(t, b, `
		.......
		.......
		XXX....
		.X.....
		.......
		.......
		.......`)
}

func TestRotationNearRightWallIsPulledBackInside(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	b.Advance()
	b.Rotate()
	b.Rotate()
	b.Rotate()
	b.Right()
	b.Right()
	b.Right()
	assertCells(t, b, `
		.......
		......X
		.....XX
		......X
		.......
		.......
		.......`)

	b.Rotate()
	assertCells(t, b, `
		.......
		.....X.
		....XXX
		.......
		.......
		.......
		.......`)
}

func TestTetrominoCannotBeRotatedOnTheGround(t *testing.T) {
	b := newTestBoard(t, empty7)
	for range 6 {
		b.Advance()
	}
	want := `
		.......
		.......
		.......
		.......
		.......
		...X...
		..XXX..`
	assertCells(t, b, want)

	b.Rotate()
	assertCells(t, b, want)
}

func TestFourRotationsRestorePiece(t *testing.T) {
	for kind := tetromino.Kind(0); kind < tetromino.Count; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			b, err := New(core.MustGrid(10, 20), &kindSequence{kinds: []tetromino.Kind{kind}})
			require.NoError(t, err)
			b.Advance()
			b.Advance()
			before, _ := b.Active()
			for range 4 {
				b.Rotate()
			}
			after, _ := b.Active()
			assert.Equal(t, before, after)
		})
	}
}

func TestPieceMovesThroughSettledBlocks(t *testing.T) {
	b := newTestBoard(t, `
		.......
		.....X.
		.....X.
		.....X.
		.....X.
		.....X.
		.....X.`)
	b.Advance()
	b.Right()

	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, 2, p.Col, "lateral moves only check the walls")
	assert.Equal(t, 9, b.Cells().Count(), "piece overlaps the top of the tower")

	b.Advance()
	_, ok = b.Active()
	require.False(t, ok, "block resting on the tower stops the piece")
	assert.Equal(t, 9, b.Settled().Count(), "overlapping block is overwritten")
	assert.Equal(t, core.Magenta, b.Settled().At(2, 5).Color)
}

func TestDismantleMatchesSnapshot(t *testing.T) {
	b := newTestBoard(t, `
		..........
		..........
		..........
		..........
		..........
		.......c..
		......rc..
		..g..rrc..`, tetromino.S)
	b.Advance()
	b.Advance()
	b.Rotate()
	b.Left()

	before := b.Cells()
	b.dismantle()

	assert.True(t, before.Equal(b.Cells()), "cells after dismantle:\n%s\nwant:\n%s", b.Cells(), before)
	assert.True(t, before.Equal(b.Settled()))
	assert.Equal(t, uint64(1), b.Stats().Dismantles)
}

func TestVerticalPieceStacksOnBlock(t *testing.T) {
	b := newTestBoard(t, `
		......
		......
		......
		......
		......
		r.....`, tetromino.I)
	b.Advance()
	b.Rotate()
	b.Rotate()
	b.Rotate()
	for range 3 {
		b.Left()
	}
	p, ok := b.Active()
	require.True(t, ok)
	require.Equal(t, 3, p.Orientation)
	require.Equal(t, -1, p.Col)

	b.Advance()
	_, ok = b.Active()
	require.False(t, ok)
	assert.Equal(t, Idle, b.State())
	assertCells(t, b, `
		......
		c.....
		c.....
		c.....
		c.....
		r.....`)
}

func TestStateTransitions(t *testing.T) {
	b := newTestBoard(t, empty7)
	assert.Equal(t, Idle, b.State())
	b.Advance()
	assert.Equal(t, Descending, b.State())
	b.Rotate()
	for b.State() == Descending {
		b.Advance()
	}
	assert.Equal(t, Resolving, b.State())
	b.Advance()
	assert.Equal(t, Idle, b.State())
}

func TestSpawnDrawsOncePerPiece(t *testing.T) {
	seq := &kindSequence{kinds: []tetromino.Kind{tetromino.O, tetromino.Z, tetromino.L}}
	b, err := New(core.MustGrid(8, 12), seq)
	require.NoError(t, err)
	for range 200 {
		b.Advance()
	}
	assert.Positive(t, b.Stats().Spawns)
	assert.Equal(t, int(b.Stats().Spawns), seq.draws)
}

func TestSpawnAndDismantleNeverShareATick(t *testing.T) {
	b := newTestBoard(t, empty7, tetromino.O, tetromino.I)
	for range 100 {
		before := b.Stats()
		b.Advance()
		after := b.Stats()
		spawned := after.Spawns - before.Spawns
		landed := after.Dismantles - before.Dismantles
		require.False(t, spawned > 0 && landed > 0, "tick %d spawned and dismantled", after.Ticks)
	}
}

func TestPieceBlocksStayInsideWalls(t *testing.T) {
	b, err := NewSeeded(core.MustGrid(8, 14), 3)
	require.NoError(t, err)
	rng := pcore.NewRNG(99)
	for step := range 2000 {
		switch rng.IntN(5) {
		case 0:
			b.Left()
		case 1:
			b.Right()
		case 2:
			b.Rotate()
		default:
			b.Advance()
		}
		p, ok := b.Active()
		if !ok {
			continue
		}
		for _, pos := range p.Positions() {
			require.GreaterOrEqual(t, pos[1], 0, "step %d", step)
			require.Less(t, pos[1], 8, "step %d", step)
		}
	}
}

func TestSeededBoardsReplayIdentically(t *testing.T) {
	script := func(b *Board) {
		for i := range 300 {
			switch i % 7 {
			case 1:
				b.Left()
			case 3:
				b.Rotate()
			case 5:
				b.Right()
			default:
				b.Advance()
			}
		}
	}
	g := core.MustGrid(10, 20)
	b1, err := NewSeeded(g, 7)
	require.NoError(t, err)
	b2, err := NewSeeded(g, 7)
	require.NoError(t, err)
	script(b1)
	script(b2)
	require.True(t, b1.Cells().Equal(b2.Cells()))
	first := b1.Cells()

	b1.Reset(7)
	assert.Equal(t, Stats{}, b1.Stats())
	assert.Equal(t, 0, b1.Cells().Count())
	script(b1)
	assert.True(t, first.Equal(b1.Cells()), "reset with the same seed must replay")
}

func TestNewRejectsBadGrids(t *testing.T) {
	_, err := New(core.Grid{}, nil)
	assert.True(t, errors.Is(err, core.ErrInvalidSize))

	_, err = New(core.MustGrid(3, 10), nil)
	assert.True(t, errors.Is(err, ErrGridTooSmall))

	_, err = NewWithConfig(Config{Width: 0, Height: 20})
	assert.True(t, errors.Is(err, core.ErrInvalidSize))
}

func TestShortBoardSpawnsAndDismantles(t *testing.T) {
	_, err := NewSeeded(core.MustGrid(6, 3), 1)
	require.NoError(t, err)

	b := newTestBoard(t, `
		......
		......
		......`)
	b.Advance()
	_, ok := b.Active()
	require.True(t, ok)

	b.Advance()
	_, ok = b.Active()
	assert.False(t, ok)
	assert.Equal(t, uint64(1), b.Stats().Dismantles)
	assertCells(t, b, `
		......
		...X..
		..XXX.`)
}

func TestResetKeepsInjectedRandomizer(t *testing.T) {
	seq := &kindSequence{kinds: []tetromino.Kind{tetromino.O, tetromino.I}}
	b, err := New(core.MustGrid(8, 12), seq)
	require.NoError(t, err)
	b.Advance()
	require.Equal(t, 1, seq.draws)

	b.Reset(5)
	assert.Equal(t, int64(5), b.Seed())
	b.Advance()
	assert.Equal(t, 2, seq.draws)
	p, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, tetromino.I, p.Kind)
}

func TestNewCopiesInitialLayout(t *testing.T) {
	g := core.MustGrid(5, 5)
	b, err := New(g, nil)
	require.NoError(t, err)
	g.Set(0, 0, core.Block(core.Red))
	assert.Equal(t, 0, b.Cells().Count())
}

func TestCorruptAnchorPanics(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	b.piece.Col = -2
	assert.Panics(t, func() { b.Cells() })
}

func TestRandomizerOutOfRangePanics(t *testing.T) {
	b, err := New(core.MustGrid(6, 6), badRandomizer{})
	require.NoError(t, err)
	assert.Panics(t, b.Advance)
}

type badRandomizer struct{}

func (badRandomizer) IntN(n int) int { return n }

func TestParametersReportPiece(t *testing.T) {
	b := newTestBoard(t, empty7)
	b.Advance()
	snap := b.Parameters()

	p, ok := snap.Lookup("kind")
	require.True(t, ok)
	assert.Equal(t, "T", p.Value)
	p, ok = snap.Lookup("state")
	require.True(t, ok)
	assert.Equal(t, "descending", p.Value)
	p, ok = snap.Lookup("col")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
}
