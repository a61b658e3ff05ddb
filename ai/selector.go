package ai

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/tictacgo/tictac/kinarow"
	"golang.org/x/net/context"
)

// DefaultExactLimit admits the 3x3 board, and nothing larger, to
// exhaustive search.
const DefaultExactLimit = 9

type Kind int

const (
	Exact Kind = iota
	Heuristic
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Heuristic:
		return "heuristic"
	default:
		panic(fmt.Sprintf("bad kind: %d", int(k)))
	}
}

type SelectorConfig struct {
	// ExactLimit is the largest board, counted in cells, that is
	// searched exhaustively. Zero selects DefaultExactLimit; a
	// negative limit disables exact search.
	ExactLimit int
	Seed       int64
	Debug      int
}

// Selector picks a strategy by board size and asks it for a move. A
// Selector is not safe for concurrent use; its random source is
// shared by every heuristic strategy it builds.
type Selector struct {
	cfg  SelectorConfig
	rand *rand.Rand
}

var _ Player = &Selector{}

func NewSelector(cfg SelectorConfig) *Selector {
	if cfg.ExactLimit == 0 {
		cfg.ExactLimit = DefaultExactLimit
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Debug > 0 {
		log.Printf("[selector] seed=%d exact-limit=%d", seed, cfg.ExactLimit)
	}
	return &Selector{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (s *Selector) Choose(cfg kinarow.Config) Kind {
	if cfg.Size*cfg.Size <= s.cfg.ExactLimit {
		return Exact
	}
	return Heuristic
}

// Strategy builds the strategy Choose selects for b.
func (s *Selector) Strategy(b *kinarow.Board, self kinarow.Cell) (Strategy, Kind) {
	k := s.Choose(b.Config())
	if k == Exact {
		return NewExact(b, self, self.Opponent()), k
	}
	return NewHeuristic(b, self, self.Opponent(), s.rand), k
}

// BestMove returns the move for self on b, or NoMove when the board
// is full, along with the kind of strategy that chose it.
func (s *Selector) BestMove(b *kinarow.Board, self kinarow.Cell) (kinarow.Move, Kind) {
	start := time.Now()
	st, k := s.Strategy(b, self)
	m := st.BestMove()
	if s.cfg.Debug > 0 {
		log.Printf("[selector] strategy=%s self=%s move=%s time=%s",
			k, self, m, time.Since(start))
	}
	if s.cfg.Debug > 1 {
		if ex, ok := st.(*ExactAI); ok {
			log.Printf("[selector]  stats: visited=%d terminal=%d",
				ex.Stats().Visited, ex.Stats().Terminal)
		}
	}
	return m, k
}

func (s *Selector) GetMove(ctx context.Context, b *kinarow.Board, self kinarow.Cell) kinarow.Move {
	m, _ := s.BestMove(b, self)
	return m
}
