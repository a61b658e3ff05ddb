package tei

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
)

func run(t *testing.T, script ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	e.SelectorConfig = ai.SelectorConfig{Seed: 1}
	err := e.Run(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestHandshake(t *testing.T) {
	out, err := run(t, "tei", "isready", "quit", "tei")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"id name kinarow",
		"id author tictacgo",
		"teiok",
		"readyok",
	}, lines(out))
}

func TestGoExact(t *testing.T) {
	out, err := run(t,
		"teinewgame 3",
		"position startpos moves a1 a2 b1 b2",
		"go",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"info strategy exact",
		"bestmove c1",
	}, lines(out))
}

func TestGoBoard(t *testing.T) {
	out, err := run(t,
		"teinewgame 5 4",
		"position board xxx../ooo../...../...../.....",
		"go x",
		"go o",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"info strategy heuristic",
		"bestmove d1",
		"info strategy heuristic",
		"bestmove d2",
	}, lines(out))
}

func TestGoFinished(t *testing.T) {
	out, err := run(t,
		"teinewgame",
		"position board xxx/oo./...",
		"go",
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"info strategy exact",
		"bestmove -",
	}, lines(out))
}

func TestGoWithoutPosition(t *testing.T) {
	out, err := run(t, "teinewgame 3", "go", "isready")
	require.NoError(t, err)
	assert.Equal(t, []string{"readyok"}, lines(out))
}

func TestBadCommands(t *testing.T) {
	for _, script := range [][]string{
		{"teinewgame 2"},
		{"teinewgame 3 5"},
		{"teinewgame x"},
		{"position"},
		{"position fen abc"},
		{"teinewgame 3", "position board xx/oo"},
		{"position startpos a1"},
		{"position startpos moves a1 a1"},
		{"position startpos moves a1 a2 b1 b2 c1 c2"},
		{"frobnicate"},
	} {
		_, err := run(t, script...)
		assert.Error(t, err, "script %q", script)
	}
}

func TestClient(t *testing.T) {
	toEngine, fromClient := io.Pipe()
	fromEngine, toClient := io.Pipe()
	e := NewEngine(toEngine, toClient)
	e.SelectorConfig = ai.SelectorConfig{Seed: 1}
	done := make(chan error, 1)
	go func() {
		done <- e.Run(context.Background())
		toClient.Close()
	}()

	cl, err := NewClientIO(fromEngine, fromClient)
	require.NoError(t, err)
	p, err := cl.NewGame(3, 0)
	require.NoError(t, err)
	require.NoError(t, cl.Ready())

	b := kinarow.New(kinarow.Config{Size: 3})
	require.NoError(t, b.Place(kinarow.Move{Row: 0, Col: 0}, kinarow.X))
	require.NoError(t, b.Place(kinarow.Move{Row: 0, Col: 1}, kinarow.O))
	require.NoError(t, b.Place(kinarow.Move{Row: 1, Col: 1}, kinarow.X))
	m := p.GetMove(context.Background(), b, kinarow.O)
	assert.Equal(t, kinarow.Move{Row: 2, Col: 2}, m)

	cl.Close()
	fromClient.Close()
	assert.NoError(t, <-done)
}
