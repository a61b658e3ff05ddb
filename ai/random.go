package ai

import (
	"math/rand"

	"github.com/tictacgo/tictac/kinarow"
	"golang.org/x/net/context"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *kinarow.Board, self kinarow.Cell) kinarow.Move {
	moves := b.EmptyCells()
	if len(moves) == 0 {
		return kinarow.NoMove
	}
	return moves[r.r.Intn(len(moves))]
}

func NewRandom(seed int64) Player {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
