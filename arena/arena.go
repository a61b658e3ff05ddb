package arena

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"sync/atomic"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
)

// PlayerFactory builds a fresh player from a seed. Each worker calls
// it once, so players need not be safe for concurrent use. Players
// that implement io.Closer are closed when their worker exits.
type PlayerFactory func(seed int64) (ai.Player, error)

// Engine adapts a constructor that cannot fail.
func Engine(f func(seed int64) ai.Player) PlayerFactory {
	return func(seed int64) (ai.Player, error) {
		return f(seed), nil
	}
}

type Config struct {
	Board   kinarow.Config
	Games   int
	Threads int
	Seed    int64
	// Swap gives P1 the X mark in even-numbered games and O in odd
	// ones; otherwise P1 always plays X.
	Swap  bool
	Debug int

	P1, P2 PlayerFactory
}

type Result struct {
	ID     int
	P1     kinarow.Cell
	Winner kinarow.Cell
	Game   *game.Game
}

// P1Won reports whether the first player won this game.
func (r *Result) P1Won() bool {
	return r.Winner != kinarow.Empty && r.Winner == r.P1
}

type Stats struct {
	Games int
	X, O  int
	Draws int
	Moves int

	P1Wins, P2Wins int

	Results []Result
}

func (s *Stats) add(r Result) {
	s.Games++
	s.Moves += len(r.Game.Moves)
	switch {
	case r.Winner == kinarow.Empty:
		s.Draws++
	case r.P1Won():
		s.P1Wins++
	default:
		s.P2Wins++
	}
	switch r.Winner {
	case kinarow.X:
		s.X++
	case kinarow.O:
		s.O++
	}
	s.Results = append(s.Results, r)
}

// Finished returns the finished games in ID order.
func (s *Stats) Finished() []*game.Game {
	out := make([]*game.Game, len(s.Results))
	for i := range s.Results {
		out[i] = s.Results[i].Game
	}
	return out
}

var ErrStuck = errors.New("player returned no move on a live board")

const prime = 1099511628211

// Run plays cfg.Games games across cfg.Threads workers and totals the
// results. The first failing game cancels the rest.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}
	if cfg.P1 == nil || cfg.P2 == nil {
		return nil, errors.New("arena: both players are required")
	}
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}

	results := make(chan Result)
	todo := int64(cfg.Games)
	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		id := i
		grp.Go(func() error {
			return worker(ctx, cfg, &todo, id, results)
		})
	}
	go func() {
		grp.Wait()
		close(results)
	}()

	st := &Stats{}
	for r := range results {
		st.add(r)
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(st.Results, func(i, j int) bool {
		return st.Results[i].ID < st.Results[j].ID
	})
	return st, nil
}

func worker(ctx context.Context, cfg *Config, todo *int64, id int, out chan<- Result) error {
	rng := rand.New(rand.NewSource(prime*cfg.Seed + int64(id)))
	p1, err := cfg.P1(rng.Int63())
	if err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	defer closePlayer(p1)
	p2, err := cfg.P2(rng.Int63())
	if err != nil {
		return fmt.Errorf("player 2: %w", err)
	}
	defer closePlayer(p2)
	for {
		gid := atomic.AddInt64(todo, -1)
		if gid < 0 {
			return nil
		}
		gi := cfg.Games - 1 - int(gid)
		r, err := play(ctx, cfg, gi, p1, p2)
		if err != nil {
			return fmt.Errorf("game %d: %w", gi, err)
		}
		if cfg.Debug > 0 {
			log.Printf("[arena] worker=%d game=%d p1=%s winner=%v moves=%d",
				id, gi, r.P1, r.Winner, len(r.Game.Moves))
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func closePlayer(p ai.Player) {
	if c, ok := p.(io.Closer); ok {
		c.Close()
	}
}

func play(ctx context.Context, cfg *Config, gi int, p1, p2 ai.Player) (Result, error) {
	g, err := game.New(cfg.Board, game.PvP)
	if err != nil {
		return Result{}, err
	}
	r := Result{ID: gi, P1: kinarow.X, Game: g}
	if cfg.Swap && gi%2 == 1 {
		r.P1 = kinarow.O
	}
	for !g.Over {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		p := p2
		if g.ToMove == r.P1 {
			p = p1
		}
		if _, err := g.PlayAI(ctx, p); err != nil {
			if errors.Is(err, game.ErrNoMove) {
				return r, ErrStuck
			}
			return r, err
		}
	}
	r.Winner = g.Winner
	return r, nil
}

// Print writes a summary table, numbers grouped for English.
func (s *Stats) Print(w io.Writer) {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	p.Fprintf(tw, "games\t%d\n", s.Games)
	p.Fprintf(tw, "moves\t%d\n", s.Moves)
	p.Fprintf(tw, "\tx\to\tdraw\n")
	p.Fprintf(tw, "wins\t%d\t%d\t%d\n", s.X, s.O, s.Draws)
	p.Fprintf(tw, "\tp1\tp2\n")
	p.Fprintf(tw, "wins\t%d\t%d\n", s.P1Wins, s.P2Wins)
	tw.Flush()
}
