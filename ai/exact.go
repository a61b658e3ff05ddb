package ai

import (
	"math"

	"github.com/tictacgo/tictac/kinarow"
)

const (
	WinScore  = 10
	LossScore = -WinScore
	DrawScore = 0
)

type ExactStats struct {
	Visited  uint64
	Terminal uint64
}

// ExactAI searches the whole game tree with plain minimax. Scores are
// not discounted by depth and nothing is pruned, so it is only usable
// on small boards.
type ExactAI struct {
	base
	st ExactStats
}

var _ Strategy = &ExactAI{}

func NewExact(b *kinarow.Board, self, opponent kinarow.Cell) *ExactAI {
	return &ExactAI{
		base: newBase("NewExact", b, self, opponent, kinarow.CheckWin),
	}
}

func (ai *ExactAI) BestMove() kinarow.Move {
	if ai.b.Full() {
		return kinarow.NoMove
	}
	if m, ok := ai.immediate(); ok {
		return m
	}

	best := kinarow.NoMove
	bestScore := math.MinInt32
	n := ai.b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if ai.b.At(r, c) != kinarow.Empty {
				continue
			}
			m := kinarow.Move{Row: r, Col: c}
			p := ai.b.Try(m, ai.self)
			v := ai.Minimax(false)
			p.Undo()
			// strict comparison keeps the first of equal moves
			if v > bestScore {
				bestScore = v
				best = m
			}
		}
	}
	return best
}

// Minimax scores the current position from self's point of view,
// with self to move when maximizing.
func (ai *ExactAI) Minimax(maximizing bool) int {
	if ai.IsWinningFor(ai.self) {
		ai.st.Terminal++
		return WinScore
	}
	if ai.IsWinningFor(ai.opponent) {
		ai.st.Terminal++
		return LossScore
	}
	if ai.b.Full() {
		ai.st.Terminal++
		return DrawScore
	}
	ai.st.Visited++

	mark := ai.opponent
	best := math.MaxInt32
	if maximizing {
		mark = ai.self
		best = math.MinInt32
	}
	n := ai.b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if ai.b.At(r, c) != kinarow.Empty {
				continue
			}
			p := ai.b.Try(kinarow.Move{Row: r, Col: c}, mark)
			v := ai.Minimax(!maximizing)
			p.Undo()
			if maximizing && v > best || !maximizing && v < best {
				best = v
			}
		}
	}
	return best
}

// FallbackMove returns the first empty cell in row-major order.
func (ai *ExactAI) FallbackMove() kinarow.Move {
	ms := ai.b.EmptyCells()
	if len(ms) == 0 {
		return kinarow.NoMove
	}
	return ms[0]
}

func (ai *ExactAI) Stats() ExactStats {
	return ai.st
}

type MoveScore struct {
	Move  kinarow.Move
	Score int
}

// Scores returns the minimax score of every empty cell for self, in
// row-major order.
func (ai *ExactAI) Scores() []MoveScore {
	var out []MoveScore
	for _, m := range ai.b.EmptyCells() {
		p := ai.b.Try(m, ai.self)
		out = append(out, MoveScore{m, ai.Minimax(false)})
		p.Undo()
	}
	return out
}
