package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/tictacgo/tictac/cmd/internal/analyze"
	"github.com/tictacgo/tictac/cmd/internal/play"
	"github.com/tictacgo/tictac/cmd/internal/selfplay"
	"github.com/tictacgo/tictac/cmd/internal/serve"
	"github.com/tictacgo/tictac/cmd/internal/stats"
	"github.com/tictacgo/tictac/cmd/internal/tei"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&tei.Command{}, "engine")
	subcommands.Register(&serve.Command{}, "engine")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&stats.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
