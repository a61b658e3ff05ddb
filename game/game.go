package game

import (
	"errors"
	"fmt"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
	"golang.org/x/net/context"
)

type Mode int

const (
	PvP Mode = iota
	PvAI
)

func (m Mode) String() string {
	switch m {
	case PvP:
		return "pvp"
	case PvAI:
		return "pvai"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "pvp":
		return PvP, nil
	case "pvai", "ai":
		return PvAI, nil
	}
	return PvP, fmt.Errorf("bad mode: %q", s)
}

// AIMark is the side the computer plays in PvAI games.
const AIMark = kinarow.O

var (
	ErrGameOver = errors.New("game is over")
	ErrNoMove   = errors.New("player returned no move")
)

// Game is one playing session: the board, whose turn it is, and the
// win counters carried across restarts.
type Game struct {
	Board  *kinarow.Board
	ToMove kinarow.Cell
	Over   bool
	Winner kinarow.Cell
	Mode   Mode
	Moves  []kinarow.Move

	XWins int
	OWins int
}

func New(cfg kinarow.Config, mode Mode) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		Board:  kinarow.New(cfg),
		ToMove: kinarow.X,
		Mode:   mode,
	}, nil
}

// Play places the mark of the side to move on m, then settles the
// result or passes the turn.
func (g *Game) Play(m kinarow.Move) error {
	if g.Over {
		return ErrGameOver
	}
	if err := g.Board.Place(m, g.ToMove); err != nil {
		return fmt.Errorf("%s: %w", m, err)
	}
	g.Moves = append(g.Moves, m)
	if kinarow.CheckWin(g.Board, g.ToMove, g.Board.Win()) {
		g.Over = true
		g.Winner = g.ToMove
		if g.Winner == kinarow.X {
			g.XWins++
		} else {
			g.OWins++
		}
		return nil
	}
	if g.Board.Full() {
		g.Over = true
		return nil
	}
	g.ToMove = g.ToMove.Opponent()
	return nil
}

func (g *Game) Draw() bool {
	return g.Over && g.Winner == kinarow.Empty
}

// AITurn reports whether the computer should move next.
func (g *Game) AITurn() bool {
	return g.Mode == PvAI && !g.Over && g.ToMove == AIMark
}

// PlayAI asks p for the side to move's reply and applies it.
func (g *Game) PlayAI(ctx context.Context, p ai.Player) (kinarow.Move, error) {
	if g.Over {
		return kinarow.NoMove, ErrGameOver
	}
	m := p.GetMove(ctx, g.Board, g.ToMove)
	if m.IsNone() {
		return m, ErrNoMove
	}
	return m, g.Play(m)
}

// Restart clears the board for a new game, keeping the win counters.
func (g *Game) Restart() {
	g.Board.Clear()
	g.ToMove = kinarow.X
	g.Over = false
	g.Winner = kinarow.Empty
	g.Moves = nil
}
