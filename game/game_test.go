package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
)

func mv(r, c int) kinarow.Move {
	return kinarow.Move{Row: r, Col: c}
}

func playAll(t *testing.T, g *Game, ms ...kinarow.Move) {
	t.Helper()
	for i, m := range ms {
		require.NoError(t, g.Play(m), "move %d (%s)", i, m)
	}
}

func TestNewGame(t *testing.T) {
	g, err := New(kinarow.Config{Size: 5}, PvAI)
	require.NoError(t, err)
	assert.Equal(t, kinarow.X, g.ToMove)
	assert.Equal(t, 4, g.Board.Win())
	assert.False(t, g.Over)

	_, err = New(kinarow.Config{Size: 3, Win: 4}, PvP)
	assert.Error(t, err)
}

func TestPlayAlternatesAndWins(t *testing.T) {
	g, err := New(kinarow.Config{Size: 3}, PvP)
	require.NoError(t, err)
	playAll(t, g, mv(0, 0), mv(1, 0), mv(0, 1), mv(1, 1))
	assert.Equal(t, kinarow.X, g.ToMove)
	playAll(t, g, mv(0, 2))
	assert.True(t, g.Over)
	assert.Equal(t, kinarow.X, g.Winner)
	assert.Equal(t, 1, g.XWins)
	assert.Equal(t, 0, g.OWins)
	assert.Equal(t, ErrGameOver, g.Play(mv(2, 2)))
}

func TestPlayRejectsBadMoves(t *testing.T) {
	g, err := New(kinarow.Config{Size: 3}, PvP)
	require.NoError(t, err)
	playAll(t, g, mv(1, 1))
	assert.True(t, errors.Is(g.Play(mv(1, 1)), kinarow.ErrOccupied))
	assert.True(t, errors.Is(g.Play(mv(3, 0)), kinarow.ErrOutOfBounds))
	assert.Equal(t, kinarow.O, g.ToMove, "a rejected move must not pass the turn")
	assert.Len(t, g.Moves, 1)
}

func TestDraw(t *testing.T) {
	g, err := New(kinarow.Config{Size: 3}, PvP)
	require.NoError(t, err)
	// x o x / x o o / o x x
	playAll(t, g,
		mv(0, 0), mv(0, 1), mv(0, 2),
		mv(1, 1), mv(1, 0), mv(1, 2),
		mv(2, 1), mv(2, 0), mv(2, 2),
	)
	assert.True(t, g.Over)
	assert.True(t, g.Draw())
	assert.Equal(t, 0, g.XWins+g.OWins)
}

func TestRestartKeepsCounters(t *testing.T) {
	g, err := New(kinarow.Config{Size: 3}, PvP)
	require.NoError(t, err)
	playAll(t, g, mv(0, 0), mv(1, 0), mv(0, 1), mv(1, 1), mv(2, 2), mv(1, 2))
	require.Equal(t, kinarow.O, g.Winner)
	g.Restart()
	assert.False(t, g.Over)
	assert.Equal(t, kinarow.X, g.ToMove)
	assert.Empty(t, g.Moves)
	assert.Equal(t, 9, len(g.Board.EmptyCells()))
	assert.Equal(t, 1, g.OWins)
}

func TestPlayAI(t *testing.T) {
	g, err := New(kinarow.Config{Size: 3}, PvAI)
	require.NoError(t, err)
	sel := ai.NewSelector(ai.SelectorConfig{Seed: 1})
	ctx := context.Background()

	playAll(t, g, mv(0, 0))
	require.True(t, g.AITurn())
	m, err := g.PlayAI(ctx, sel)
	require.NoError(t, err)
	assert.Equal(t, kinarow.O, g.Board.At(m.Row, m.Col))
	assert.False(t, g.AITurn())

	for !g.Over {
		if g.AITurn() {
			_, err = g.PlayAI(ctx, sel)
		} else {
			_, err = g.PlayAI(ctx, ai.NewRandom(int64(len(g.Moves))))
		}
		require.NoError(t, err)
	}
	assert.NotEqual(t, kinarow.X, g.Winner, "exact search lost as O")
	_, err = g.PlayAI(ctx, sel)
	assert.Equal(t, ErrGameOver, err)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{PvP, PvAI} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("nope")
	assert.Error(t, err)
}
