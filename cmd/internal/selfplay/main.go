package selfplay

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/arena"
	"github.com/tictacgo/tictac/cmd/internal/opt"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/session"
	"github.com/tictacgo/tictac/tei"
)

type Command struct {
	board opt.Board
	eng   opt.Selector

	p1 string
	p2 string

	games   int
	threads int
	swap    bool

	db      string
	session string
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are "ai[:seed]", "rand[:seed]", or "tei:COMMAND LINE" to drive
an external engine over TEI.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.board.AddFlags(flags)
	c.eng.AddFlags(flags)
	flags.StringVar(&c.p1, "p1", "ai", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")
	flags.IntVar(&c.games, "games", 100, "number of games to play")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.BoolVar(&c.swap, "swap", true, "swap marks each game")
	flags.StringVar(&c.db, "db", "", "sqlite database to record results in")
	flags.StringVar(&c.session, "session", "selfplay", "session name for recorded results")
}

func (c *Command) factory(s string, cfg kinarow.Config) arena.PlayerFactory {
	if strings.HasPrefix(s, "tei:") {
		cmdline := strings.Fields(s[len("tei:"):])
		return func(int64) (ai.Player, error) {
			cl, err := tei.NewClient(cmdline)
			if err != nil {
				return nil, err
			}
			return cl.NewGame(cfg.Size, cfg.Win)
		}
	}
	return func(seed int64) (ai.Player, error) {
		return c.eng.ParsePlayer(s, seed)
	}
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.board.Config()
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	for _, p := range []string{c.p1, c.p2} {
		if strings.HasPrefix(p, "tei:") {
			continue
		}
		if _, err := c.eng.ParsePlayer(p, 1); err != nil {
			log.Println(err)
			return subcommands.ExitUsageError
		}
	}
	if c.eng.Seed == 0 {
		c.eng.Seed = time.Now().Unix()
	}

	start := time.Now()
	st, err := arena.Run(ctx, &arena.Config{
		Board:   cfg,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.eng.Seed,
		Swap:    c.swap,
		Debug:   c.eng.Debug,
		P1:      c.factory(c.p1, cfg),
		P2:      c.factory(c.p2, cfg),
	})
	if err != nil {
		log.Printf("selfplay: %v", err)
		return subcommands.ExitFailure
	}
	log.Printf("done games=%d seed=%d size=%d win=%d time=%s",
		st.Games, c.eng.Seed, cfg.Size, cfg.Win, time.Since(start))
	st.Print(os.Stderr)

	if c.db != "" {
		store, err := session.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer store.Close()
		if err := store.RecordResults(c.session, st.Finished()); err != nil {
			log.Printf("record results: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
