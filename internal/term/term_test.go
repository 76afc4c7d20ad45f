package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandtris/internal/board"
	"sandtris/internal/core"
	"sandtris/internal/input"
	"sandtris/internal/render"
)

type countingPlayer struct{ lands int }

func (p *countingPlayer) Land() { p.lands++ }
func (p *countingPlayer) Close() {}

type fixedKind int

func (k fixedKind) IntN(int) int { return int(k) }

func newTestUI(t *testing.T) (*UI, *board.Board, tcell.SimulationScreen, *countingPlayer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 24)

	b, err := board.New(core.MustGrid(6, 6), fixedKind(2))
	require.NoError(t, err)
	player := &countingPlayer{}
	u := New(screen, b, Options{Rate: 50, Palette: render.DefaultPalette(), Sound: player})
	return u, b, screen, player
}

func TestDrawEmptyBoard(t *testing.T) {
	u, _, screen, _ := newTestUI(t)
	u.Draw()

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '│', r)
	r, _, style, _ := screen.GetContent(1, 0)
	assert.Equal(t, emptyRune, r)
	assert.Equal(t, emptyStyle, style)
	r, _, _, _ = screen.GetContent(13, 3)
	assert.Equal(t, '│', r, "right border after 6 double-width columns")
	r, _, _, _ = screen.GetContent(0, 6)
	assert.Equal(t, '└', r)
}

func TestDrawUsesPaletteColors(t *testing.T) {
	u, _, screen, _ := newTestUI(t)
	u.Tick()
	u.Draw()

	// A T spawned on a 6 wide board has its top block in column 3.
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(215, 84, 248))
	for _, x := range []int{7, 8} {
		r, _, style, _ := screen.GetContent(x, 0)
		assert.Equal(t, blockRune, r)
		assert.Equal(t, want, style)
	}
	r, _, _, _ := screen.GetContent(5, 0)
	assert.Equal(t, emptyRune, r)
}

func TestDrawPanelShowsParameters(t *testing.T) {
	u, _, screen, _ := newTestUI(t)
	u.Draw()

	x := 6*CellWidth + 4
	var title []rune
	for i := 0; i < len("sandtris"); i++ {
		r, _, _, _ := screen.GetContent(x+i, 0)
		title = append(title, r)
	}
	assert.Equal(t, "sandtris", string(title))
	r, _, _, _ := screen.GetContent(x, 2)
	assert.Equal(t, 'B', r, "first group header is Board")
}

func TestTickPlaysLandingSound(t *testing.T) {
	u, b, _, player := newTestUI(t)
	for range 5 {
		u.Tick()
	}
	require.Equal(t, uint64(1), b.Dismantles())
	assert.Equal(t, 1, player.lands)
}

func TestHandleKeyMovesPiece(t *testing.T) {
	u, b, _, _ := newTestUI(t)
	u.Tick()
	p, _ := b.Active()
	require.Equal(t, 1, p.Col)

	assert.True(t, u.HandleKey(tcell.KeyLeft, 0))
	p, _ = b.Active()
	assert.Equal(t, 0, p.Col)

	assert.True(t, u.HandleKey(tcell.KeyRune, 'l'))
	p, _ = b.Active()
	assert.Equal(t, 1, p.Col)

	assert.True(t, u.HandleKey(tcell.KeyUp, 0))
	p, _ = b.Active()
	assert.Equal(t, 1, p.Orientation)
}

func TestPauseIgnoresMovement(t *testing.T) {
	u, b, _, _ := newTestUI(t)
	u.Tick()
	u.HandleKey(tcell.KeyRune, ' ')
	u.HandleKey(tcell.KeyRight, 0)
	p, _ := b.Active()
	assert.Equal(t, 1, p.Col)

	u.HandleKey(tcell.KeyRune, 'n')
	p, _ = b.Active()
	assert.Equal(t, 1, p.Row, "n steps even while paused")
}

func TestResetKey(t *testing.T) {
	u, b, _, _ := newTestUI(t)
	u.Tick()
	u.HandleKey(tcell.KeyRune, 'r')
	_, active := b.Active()
	assert.False(t, active)
	assert.Equal(t, board.Stats{}, b.Stats())
	assert.Contains(t, u.message, "reset")
}

func TestQuitKeys(t *testing.T) {
	u, _, _, _ := newTestUI(t)
	assert.False(t, u.HandleKey(tcell.KeyEscape, 0))
	assert.False(t, u.HandleKey(tcell.KeyCtrlC, 0))
	assert.False(t, u.HandleKey(tcell.KeyRune, 'q'))
	assert.True(t, u.HandleKey(tcell.KeyF1, 0))
}

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want input.Command
	}{
		{tcell.KeyLeft, 0, input.Left},
		{tcell.KeyRight, 0, input.Right},
		{tcell.KeyUp, 0, input.Rotate},
		{tcell.KeyDown, 0, input.None},
		{tcell.KeyRune, 'j', input.None},
		{tcell.KeyRune, 'h', input.Left},
		{tcell.KeyRune, 'k', input.Rotate},
		{tcell.KeyRune, 'x', input.None},
		{tcell.KeyEnter, 0, input.None},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, keyCommand(tc.key, tc.r), "key %v rune %q", tc.key, tc.r)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	u, b, _, _ := newTestUI(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := u.Run(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Positive(t, b.Stats().Ticks, "ticker should advance the board")
}
