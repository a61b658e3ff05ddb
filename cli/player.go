package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
)

// NewCLIPlayer reads moves such as "b2" from in, one per line. End of
// input or "quit" yields kinarow.NoMove.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b *kinarow.Board, self kinarow.Cell) kinarow.Move {
	for {
		fmt.Fprintf(c.out, "%s> ", self)
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return kinarow.NoMove
		}
		line = strings.TrimSpace(line)
		if line == "quit" {
			return kinarow.NoMove
		}
		m, perr := notation.ParseMove(line)
		if perr != nil || m.IsNone() {
			fmt.Fprintln(c.out, "parse error:", line)
			if err != nil {
				return kinarow.NoMove
			}
			continue
		}
		if !b.InBounds(m.Row, m.Col) {
			fmt.Fprintln(c.out, "off the board:", line)
			if err != nil {
				return kinarow.NoMove
			}
			continue
		}
		return m
	}
}
