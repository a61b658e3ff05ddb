package ai

import (
	"github.com/tictacgo/tictac/kinarow"
	"golang.org/x/net/context"
)

// Player picks a move for self on b. Implementations may mutate b
// while thinking but must leave it as they found it.
type Player interface {
	GetMove(ctx context.Context, b *kinarow.Board, self kinarow.Cell) kinarow.Move
}

// Strategy is a move search bound to one board and one (self,
// opponent) pair. A Strategy is built per request and discarded.
type Strategy interface {
	BestMove() kinarow.Move
	FindWinningMove(player kinarow.Cell) kinarow.Move
	IsWinningFor(player kinarow.Cell) bool
	FallbackMove() kinarow.Move
}
