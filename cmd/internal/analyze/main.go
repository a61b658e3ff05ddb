package analyze

import (
	"flag"
	"fmt"
	"log"
	"os"

	"context"

	"github.com/google/subcommands"
	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/cli"
	"github.com/tictacgo/tictac/cmd/internal/opt"
	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
	"github.com/tictacgo/tictac/symmetry"
)

type Command struct {
	eng opt.Selector

	win     int
	self    string
	quiet   bool
	explain bool
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Find the best move for a board" }
func (*Command) Usage() string {
	return `analyze [options] BOARD

Evaluate a board given as rows joined by '/', top row first, e.g.
"xo./.x./...". The side to move is inferred from the mark counts
unless -self is given.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.eng.AddFlags(flags)
	flags.IntVar(&c.win, "win", 0, "marks in a row needed to win (0 = default for the size)")
	flags.StringVar(&c.self, "self", "", "side to analyze for, x or o")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.explain, "explain", false, "print the minimax score of every move (exact boards only)")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	b, err := notation.ParseBoard(flag.Arg(0), c.win)
	if err != nil {
		log.Printf("parse board: %v", err)
		return subcommands.ExitUsageError
	}
	self := kinarow.X
	if b.Count(kinarow.X) > b.Count(kinarow.O) {
		self = kinarow.O
	}
	if c.self != "" {
		if self, err = notation.ParseMark(c.self); err != nil {
			log.Println(err)
			return subcommands.ExitUsageError
		}
	}

	over, winner := b.GameOver()
	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, &game.Game{
			Board:  b,
			ToMove: self,
			Over:   over,
			Winner: winner,
		})
	}
	canon, _ := symmetry.Canonical(b)
	fmt.Printf("canonical: %s\n", notation.FormatBoard(canon))
	if over {
		if winner == kinarow.Empty {
			fmt.Println("result: draw")
		} else {
			fmt.Printf("result: %s wins\n", winner)
		}
		return subcommands.ExitSuccess
	}

	sel := ai.NewSelector(c.eng.BuildConfig())
	st, kind := sel.Strategy(b, self)
	if m := st.FindWinningMove(self); !m.IsNone() {
		fmt.Printf("win: %s\n", notation.FormatMove(m))
	}
	if m := st.FindWinningMove(self.Opponent()); !m.IsNone() {
		fmt.Printf("threat: %s\n", notation.FormatMove(m))
	}
	m := st.BestMove()
	fmt.Printf("strategy: %s\n", kind)
	fmt.Printf("bestmove: %s\n", notation.FormatMove(m))
	if ex, ok := st.(*ai.ExactAI); ok {
		fmt.Printf("visited: %d terminal: %d\n", ex.Stats().Visited, ex.Stats().Terminal)
		if c.explain {
			for _, s := range ex.Scores() {
				fmt.Printf(" %s\t%+d\n", notation.FormatMove(s.Move), s.Score)
			}
		}
	}
	return subcommands.ExitSuccess
}
