package tei

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
)

type Engine struct {
	SelectorConfig ai.SelectorConfig

	in  *bufio.Reader
	out io.Writer

	sel *ai.Selector
	cfg kinarow.Config
	pos *kinarow.Board
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
		cfg: kinarow.Config{Size: 3, Win: 3},
	}
}

// Run serves commands until quit or end of input.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "tei":
			fmt.Fprintln(e.out, "id name kinarow")
			fmt.Fprintln(e.out, "id author tictacgo")
			fmt.Fprintln(e.out, "teiok")
		case "quit":
			return nil
		case "teinewgame":
			cfg, err := parseNewGame(words[1:])
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.pos = nil
		case "position":
			e.pos, err = parsePosition(e.cfg, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
		case "go":
			if err := e.analyze(words); err != nil {
				log.Printf("error in go: %v", err)
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parseNewGame(args []string) (kinarow.Config, error) {
	cfg := kinarow.Config{Size: 3}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, fmt.Errorf("bad size: %s", args[0])
		}
		cfg.Size = n
	}
	if len(args) > 1 {
		k, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("bad win length: %s", args[1])
		}
		cfg.Win = k
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// toMove infers the side to move from the mark counts; X moves first.
func toMove(b *kinarow.Board) kinarow.Cell {
	if b.Count(kinarow.X) > b.Count(kinarow.O) {
		return kinarow.O
	}
	return kinarow.X
}

func parsePosition(cfg kinarow.Config, words []string) (*kinarow.Board, error) {
	var pos *kinarow.Board
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		pos = kinarow.New(cfg)
	case "board":
		if len(words) < 2 {
			return nil, errors.New("position board: not enough arguments")
		}
		var err error
		pos, err = notation.ParseBoard(words[1], cfg.Win)
		if err != nil {
			return nil, fmt.Errorf("parse board: %w", err)
		}
		if pos.Size() != cfg.Size {
			return nil, fmt.Errorf("board has wrong size: got %d, configured for %d", pos.Size(), cfg.Size)
		}
		words = words[2:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return pos, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		m, err := notation.ParseMove(w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		if over, _ := pos.GameOver(); over {
			return nil, fmt.Errorf("move %q: game is over", w)
		}
		if err := pos.Place(m, toMove(pos)); err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return pos, nil
}

func (e *Engine) analyze(words []string) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if e.sel == nil {
		e.sel = ai.NewSelector(e.SelectorConfig)
	}
	self := toMove(e.pos)
	if len(words) > 1 {
		var err error
		if self, err = notation.ParseMark(words[1]); err != nil {
			return err
		}
	}
	var (
		m    = kinarow.NoMove
		kind = e.sel.Choose(e.cfg)
	)
	if over, _ := e.pos.GameOver(); !over {
		m, kind = e.sel.BestMove(e.pos.Clone(), self)
	}
	fmt.Fprintf(e.out, "info strategy %s\n", kind)
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(m))
	return nil
}
