package stats

import (
	"context"
	"flag"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictacgo/tictac/session"
)

type Command struct {
	db string
}

func (*Command) Name() string     { return "stats" }
func (*Command) Synopsis() string { return "Report the win tally from a results database" }
func (*Command) Usage() string {
	return `stats -db GAMES.db

Print wins per mark and draws over every recorded game, and the saved
sessions.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply a game database")
		return subcommands.ExitUsageError
	}
	store, err := session.Open(c.db)
	if err != nil {
		log.Printf("open %s: %v", c.db, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	t, err := store.Tally()
	if err != nil {
		log.Printf("tally: %v", err)
		return subcommands.ExitFailure
	}
	names, err := store.List()
	if err != nil {
		log.Printf("list: %v", err)
		return subcommands.ExitFailure
	}

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	p.Fprintf(tw, "games\t%d\n", t.Games())
	p.Fprintf(tw, "x\t%d\n", t.X)
	p.Fprintf(tw, "o\t%d\n", t.O)
	p.Fprintf(tw, "draws\t%d\n", t.Draws)
	tw.Flush()
	for _, n := range names {
		g, err := store.Load(n)
		if err != nil {
			log.Printf("load %s: %v", n, err)
			continue
		}
		p.Printf("session %s: %s %dx%d/%d X=%d O=%d\n",
			n, g.Mode, g.Board.Size(), g.Board.Size(), g.Board.Win(), g.XWins, g.OWins)
	}
	return subcommands.ExitSuccess
}
