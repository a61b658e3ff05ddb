package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newGame(t *testing.T, cfg kinarow.Config, mode game.Mode, ms ...kinarow.Move) *game.Game {
	t.Helper()
	g, err := game.New(cfg, mode)
	require.NoError(t, err)
	for _, m := range ms {
		require.NoError(t, g.Play(m))
	}
	return g
}

func TestSaveLoad(t *testing.T) {
	s := openStore(t)
	g := newGame(t, kinarow.Config{Size: 5}, game.PvAI,
		kinarow.Move{Row: 2, Col: 2}, kinarow.Move{Row: 0, Col: 4}, kinarow.Move{Row: 1, Col: 1})
	g.XWins, g.OWins = 3, 2

	require.NoError(t, s.Save("alice", g))
	got, err := s.Load("alice")
	require.NoError(t, err)

	assert.True(t, g.Board.Equal(got.Board))
	assert.Equal(t, g.ToMove, got.ToMove)
	assert.Equal(t, g.Over, got.Over)
	assert.Equal(t, g.Mode, got.Mode)
	assert.Equal(t, g.Moves, got.Moves)
	assert.Equal(t, 3, got.XWins)
	assert.Equal(t, 2, got.OWins)
	assert.Equal(t, 4, got.Board.Win())
}

func TestSaveReplaces(t *testing.T) {
	s := openStore(t)
	g := newGame(t, kinarow.Config{Size: 3}, game.PvP)
	require.NoError(t, s.Save("g", g))
	require.NoError(t, g.Play(kinarow.Move{Row: 0, Col: 0}))
	require.NoError(t, s.Save("g", g))

	got, err := s.Load("g")
	require.NoError(t, err)
	assert.Equal(t, kinarow.X, got.Board.At(0, 0))
	assert.Equal(t, kinarow.O, got.ToMove)

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, names)
}

func TestLoadFinished(t *testing.T) {
	s := openStore(t)
	g := newGame(t, kinarow.Config{Size: 3}, game.PvP,
		kinarow.Move{Row: 0, Col: 0}, kinarow.Move{Row: 1, Col: 0},
		kinarow.Move{Row: 0, Col: 1}, kinarow.Move{Row: 1, Col: 1},
		kinarow.Move{Row: 0, Col: 2})
	require.True(t, g.Over)
	require.NoError(t, s.Save("done", g))

	got, err := s.Load("done")
	require.NoError(t, err)
	assert.True(t, got.Over)
	assert.Equal(t, kinarow.X, got.Winner)
	assert.Equal(t, 1, got.XWins)
}

func TestNotFound(t *testing.T) {
	s := openStore(t)
	_, err := s.Load("nobody")
	assert.Equal(t, ErrNotFound, err)
	assert.Equal(t, ErrNotFound, s.Delete("nobody"))

	require.NoError(t, s.Save("x", newGame(t, kinarow.Config{Size: 3}, game.PvP)))
	require.NoError(t, s.Delete("x"))
	_, err = s.Load("x")
	assert.Equal(t, ErrNotFound, err)
}

func TestTally(t *testing.T) {
	s := openStore(t)
	xWin := newGame(t, kinarow.Config{Size: 3}, game.PvP,
		kinarow.Move{Row: 0, Col: 0}, kinarow.Move{Row: 1, Col: 0},
		kinarow.Move{Row: 0, Col: 1}, kinarow.Move{Row: 1, Col: 1},
		kinarow.Move{Row: 0, Col: 2})
	draw := newGame(t, kinarow.Config{Size: 3}, game.PvP,
		kinarow.Move{Row: 0, Col: 0}, kinarow.Move{Row: 0, Col: 1}, kinarow.Move{Row: 0, Col: 2},
		kinarow.Move{Row: 1, Col: 1}, kinarow.Move{Row: 1, Col: 0}, kinarow.Move{Row: 1, Col: 2},
		kinarow.Move{Row: 2, Col: 1}, kinarow.Move{Row: 2, Col: 0}, kinarow.Move{Row: 2, Col: 2})
	require.True(t, draw.Draw())

	require.NoError(t, s.RecordResult("a", xWin))
	require.NoError(t, s.RecordResults("b", []*game.Game{xWin, draw}))
	assert.Error(t, s.RecordResult("c", newGame(t, kinarow.Config{Size: 3}, game.PvP)))

	tally, err := s.Tally()
	require.NoError(t, err)
	assert.Equal(t, Tally{X: 2, O: 0, Draws: 1}, tally)
	assert.Equal(t, 3, tally.Games())
}
