package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
	"golang.org/x/net/context"
)

// Player supplies the next move for self. Returning kinarow.NoMove
// abandons the game.
type Player interface {
	GetMove(b *kinarow.Board, self kinarow.Cell) kinarow.Move
}

type Glyphs struct {
	X, O, Empty string
}

type CLI struct {
	Game *game.Game

	Config kinarow.Config
	Mode   game.Mode
	Glyphs *Glyphs
	Out    io.Writer
	X      Player
	O      Player
}

var DefaultGlyphs = Glyphs{
	X:     "X",
	O:     "O",
	Empty: " ",
}

var UnicodeGlyphs = Glyphs{
	X:     "✕",
	O:     "◯",
	Empty: "·",
}

// Play runs the current game until it ends or a player quits, and
// returns it. A nil Game starts a fresh one from Config and Mode.
func (c *CLI) Play() (*game.Game, error) {
	if c.Game == nil {
		g, err := game.New(c.Config, c.Mode)
		if err != nil {
			return nil, err
		}
		c.Game = g
	}
	g := c.Game
	for {
		c.render()
		if g.Over {
			fmt.Fprintf(c.Out, "Game Over! ")
			if g.Draw() {
				fmt.Fprintf(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.", g.Winner)
			}
			fmt.Fprintf(c.Out, "\nwins: X=%d O=%d\n", g.XWins, g.OWins)
			return g, nil
		}
		var m kinarow.Move
		if g.ToMove == kinarow.X {
			m = c.X.GetMove(g.Board, kinarow.X)
		} else {
			m = c.O.GetMove(g.Board, kinarow.O)
		}
		if m.IsNone() {
			return g, nil
		}
		who := g.ToMove
		if err := g.Play(m); err != nil {
			fmt.Fprintln(c.Out, "illegal move:", err)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", len(g.Moves), who, notation.FormatMove(m))
	}
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.Game)
}

func RenderBoard(gl *Glyphs, out io.Writer, g *game.Game) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	b := g.Board
	fmt.Fprintln(out)
	if !g.Over {
		fmt.Fprintf(out, "[%s to play]\n", g.ToMove)
	}
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for r := 0; r < b.Size(); r++ {
		fmt.Fprintf(w, "%d.\t", r+1)
		for col := 0; col < b.Size(); col++ {
			var s string
			switch b.At(r, col) {
			case kinarow.X:
				s = gl.X
			case kinarow.O:
				s = gl.O
			default:
				s = gl.Empty
			}
			fmt.Fprintf(w, "[%s]\t", s)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(w, "%c.\t", 'a'+col)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}

// FromAI adapts an engine player to the game loop.
func FromAI(p ai.Player) Player {
	return &aiPlayer{p}
}

type aiPlayer struct {
	p ai.Player
}

func (a *aiPlayer) GetMove(b *kinarow.Board, self kinarow.Cell) kinarow.Move {
	return a.p.GetMove(context.Background(), b, self)
}
