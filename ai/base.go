package ai

import (
	"fmt"

	"github.com/tictacgo/tictac/kinarow"
)

type winCheck func(b *kinarow.Board, player kinarow.Cell, k int) bool

// base holds what both strategies share: the borrowed board, the two
// marks and the win check.
type base struct {
	b        *kinarow.Board
	self     kinarow.Cell
	opponent kinarow.Cell
	check    winCheck
}

func newBase(who string, b *kinarow.Board, self, opponent kinarow.Cell, check winCheck) base {
	if b == nil {
		panic(fmt.Sprintf("%s: nil board", who))
	}
	if !self.IsPlayer() || !opponent.IsPlayer() || self == opponent {
		panic(fmt.Sprintf("%s: bad marks self=%v opponent=%v", who, self, opponent))
	}
	return base{b: b, self: self, opponent: opponent, check: check}
}

func (s *base) IsWinningFor(player kinarow.Cell) bool {
	return s.check(s.b, player, s.b.Win())
}

// FindWinningMove returns the first empty cell, in row-major order,
// that completes a run for player, or NoMove.
func (s *base) FindWinningMove(player kinarow.Cell) kinarow.Move {
	n := s.b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if s.b.At(r, c) != kinarow.Empty {
				continue
			}
			m := kinarow.Move{Row: r, Col: c}
			p := s.b.Try(m, player)
			won := s.IsWinningFor(player)
			p.Undo()
			if won {
				return m
			}
		}
	}
	return kinarow.NoMove
}

// immediate returns a move that wins now, or failing that one that
// stops the opponent from winning on their next move.
func (s *base) immediate() (kinarow.Move, bool) {
	if m := s.FindWinningMove(s.self); !m.IsNone() {
		return m, true
	}
	if m := s.FindWinningMove(s.opponent); !m.IsNone() {
		return m, true
	}
	return kinarow.NoMove, false
}
