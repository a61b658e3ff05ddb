package play

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"context"

	"github.com/google/subcommands"
	"github.com/tictacgo/tictac/cli"
	"github.com/tictacgo/tictac/cmd/internal/opt"
	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/session"
)

type Command struct {
	board opt.Board
	eng   opt.Selector

	mode   string
	x      string
	o      string
	rounds int

	db      string
	session string

	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play on the command-line, against a human or the engine. In pvai mode
the engine plays O. Type moves as a column letter and a row number,
"b2"; "quit" ends the session.

With -db and -session the session is resumed if it exists and saved
after every game.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	c.eng.AddFlags(flags)
	flags.StringVar(&c.mode, "mode", "pvai", "pvp or pvai")
	flags.StringVar(&c.x, "x", "human", "X player: human, ai[:seed] or rand[:seed]")
	flags.StringVar(&c.o, "o", "", "O player (default: ai in pvai mode, human otherwise)")
	flags.IntVar(&c.rounds, "rounds", 1, "games to play, 0 for no limit")
	flags.StringVar(&c.db, "db", "", "sqlite database for saved sessions")
	flags.StringVar(&c.session, "session", "default", "session name")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := game.ParseMode(c.mode)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	cfg, err := c.board.Config()
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	if c.o == "" {
		c.o = "human"
		if mode == game.PvAI {
			c.o = "ai"
		}
	}

	in := bufio.NewReader(os.Stdin)
	x, err := c.parsePlayer(in, c.x)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	o, err := c.parsePlayer(in, c.o)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	var store *session.Store
	var g *game.Game
	if c.db != "" {
		if store, err = session.Open(c.db); err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer store.Close()
		g, err = store.Load(c.session)
		switch {
		case errors.Is(err, session.ErrNotFound):
			g = nil
		case err != nil:
			log.Println(err)
			return subcommands.ExitFailure
		default:
			if g.Over {
				g.Restart()
			}
			log.Printf("resuming session=%s size=%d win=%d", c.session, g.Board.Size(), g.Board.Win())
		}
	}
	if g == nil {
		if g, err = game.New(cfg, mode); err != nil {
			log.Println(err)
			return subcommands.ExitUsageError
		}
	}

	st := &cli.CLI{
		Game:   g,
		Out:    os.Stdout,
		X:      x,
		O:      o,
		Glyphs: glyphs(c.unicode),
	}
	for round := 1; c.rounds == 0 || round <= c.rounds; round++ {
		if round > 1 {
			g.Restart()
		}
		if _, err := st.Play(); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		if store != nil {
			if g.Over {
				if err := store.RecordResult(c.session, g); err != nil {
					log.Printf("record result: %v", err)
				}
			}
			if err := store.Save(c.session, g); err != nil {
				log.Printf("save: %v", err)
				return subcommands.ExitFailure
			}
		}
		if !g.Over {
			break
		}
	}
	fmt.Printf("score: X=%d O=%d\n", g.XWins, g.OWins)
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) (cli.Player, error) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), nil
	}
	p, err := c.eng.ParsePlayer(s, c.eng.Seed)
	if err != nil {
		return nil, err
	}
	return cli.FromAI(p), nil
}
