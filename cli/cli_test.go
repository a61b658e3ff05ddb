package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
)

func scripted(in string) Player {
	return NewCLIPlayer(&bytes.Buffer{}, bufio.NewReader(strings.NewReader(in)))
}

func TestPlayXWins(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: kinarow.Config{Size: 3},
		Out:    &out,
		X:      scripted("a1\nb1\nc1\n"),
		O:      scripted("a2\nb2\n"),
	}
	g, err := c.Play()
	require.NoError(t, err)
	assert.True(t, g.Over)
	assert.Equal(t, kinarow.X, g.Winner)
	assert.Equal(t, 1, g.XWins)
	assert.Contains(t, out.String(), "X wins.")
	assert.Contains(t, out.String(), "5. X c1")
}

func TestPlayIllegalMove(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: kinarow.Config{Size: 3},
		Out:    &out,
		X:      scripted("a1\nb1\nc1\n"),
		O:      scripted("a1\na2\nb2\n"),
	}
	g, err := c.Play()
	require.NoError(t, err)
	assert.Equal(t, kinarow.X, g.Winner)
	assert.Contains(t, out.String(), "illegal move:")
}

func TestPlayQuit(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Config: kinarow.Config{Size: 3},
		Out:    &out,
		X:      scripted("b2\nquit\n"),
		O:      scripted("a1\n"),
	}
	g, err := c.Play()
	require.NoError(t, err)
	assert.False(t, g.Over)
	assert.Len(t, g.Moves, 2)
}

func TestPlayAgainstEngine(t *testing.T) {
	var out bytes.Buffer
	sel := ai.NewSelector(ai.SelectorConfig{Seed: 1})
	c := &CLI{
		Config: kinarow.Config{Size: 3},
		Mode:   game.PvAI,
		Out:    &out,
		X:      FromAI(ai.NewRandom(7)),
		O:      FromAI(sel),
	}
	g, err := c.Play()
	require.NoError(t, err)
	require.True(t, g.Over)
	assert.NotEqual(t, kinarow.X, g.Winner)
}

func TestBadConfig(t *testing.T) {
	c := &CLI{Config: kinarow.Config{Size: 2}, Out: &bytes.Buffer{}}
	_, err := c.Play()
	assert.Error(t, err)
}

func TestCLIPlayer(t *testing.T) {
	var out bytes.Buffer
	b := kinarow.New(kinarow.Config{Size: 3})
	p := NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("zz\nd1\nc2")))
	assert.Equal(t, kinarow.Move{Row: 1, Col: 2}, p.GetMove(b, kinarow.X))
	assert.Contains(t, out.String(), "parse error: zz")
	assert.Contains(t, out.String(), "off the board: d1")
	assert.Equal(t, kinarow.NoMove, p.GetMove(b, kinarow.X))
}

func TestRenderBoard(t *testing.T) {
	g, err := game.New(kinarow.Config{Size: 3}, game.PvP)
	require.NoError(t, err)
	require.NoError(t, g.Play(kinarow.Move{Row: 0, Col: 2}))
	var out bytes.Buffer
	RenderBoard(nil, &out, g)
	s := out.String()
	assert.Contains(t, s, "[O to play]")
	assert.Contains(t, s, "[X]")
	assert.Contains(t, s, "a.")
	assert.Contains(t, s, "3.")
}
