package opt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
)

// Board holds the flags that describe the board.
type Board struct {
	Size int
	Win  int
}

func (o *Board) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Size, "size", 3, "board size")
	flags.IntVar(&o.Win, "win", 0, "marks in a row needed to win (0 = 3 on 3x3, else 4)")
}

func (o *Board) Config() (kinarow.Config, error) {
	cfg := kinarow.Config{Size: o.Size, Win: o.Win}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Selector holds the engine flags.
type Selector struct {
	Seed       int64
	Debug      int
	ExactLimit int
}

func (o *Selector) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.Int64Var(&o.Seed, "seed", 0, "specify a seed")
	flags.IntVar(&o.ExactLimit, "exact-limit", 0, "largest board, in cells, searched exhaustively (0 = default, <0 = never)")
}

func (o *Selector) BuildConfig() ai.SelectorConfig {
	return ai.SelectorConfig{
		ExactLimit: o.ExactLimit,
		Seed:       o.Seed,
		Debug:      o.Debug,
	}
}

// ParsePlayer parses an engine description: "ai" or "ai:SEED" for the
// move selector, "rand" or "rand:SEED" for a uniform random player.
// Without an explicit seed the player is seeded from seed.
func (o *Selector) ParsePlayer(s string, seed int64) (ai.Player, error) {
	name, arg := s, ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name, arg = s[:i], s[i+1:]
	}
	if arg != "" {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("player %q: bad seed: %w", s, err)
		}
		seed = n
	}
	switch name {
	case "ai":
		cfg := o.BuildConfig()
		cfg.Seed = seed
		return ai.NewSelector(cfg), nil
	case "rand":
		return ai.NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unparseable player: %s", s)
}
