package ai

import (
	"math/rand"
	"time"

	"github.com/tictacgo/tictac/kinarow"
)

// HeuristicAI plays the immediate win, then the immediate block, then
// the centre, then a random empty cell. It never searches deeper than
// one ply.
type HeuristicAI struct {
	base
	rand *rand.Rand
}

var _ Strategy = &HeuristicAI{}

// NewHeuristic builds a heuristic strategy drawing its random
// fallback from r; a nil r is seeded from the clock.
func NewHeuristic(b *kinarow.Board, self, opponent kinarow.Cell, r *rand.Rand) *HeuristicAI {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HeuristicAI{
		base: newBase("NewHeuristic", b, self, opponent, kinarow.CheckRuns),
		rand: r,
	}
}

func (ai *HeuristicAI) BestMove() kinarow.Move {
	if m, ok := ai.immediate(); ok {
		return m
	}
	if c := ai.Center(); ai.b.At(c.Row, c.Col) == kinarow.Empty {
		return c
	}
	return ai.FallbackMove()
}

func (ai *HeuristicAI) Center() kinarow.Move {
	n := ai.b.Size() / 2
	return kinarow.Move{Row: n, Col: n}
}

// FallbackMove picks uniformly among the empty cells.
func (ai *HeuristicAI) FallbackMove() kinarow.Move {
	ms := ai.b.EmptyCells()
	if len(ms) == 0 {
		return kinarow.NoMove
	}
	return ms[ai.rand.Intn(len(ms))]
}
