package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tictacgo/tictac/kinarow"
)

// ParseBoard parses the row-by-row text form of a board, top row
// first, rows separated by '/', e.g. "xo./ox./...". A win of 0
// selects the default for the board size.
func ParseBoard(s string, win int) (*kinarow.Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty board")
	}
	rows := strings.Split(s, "/")
	cells := make([][]kinarow.Cell, len(rows))
	for i, r := range rows {
		for _, ch := range r {
			c, err := parseCell(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			cells[i] = append(cells[i], c)
		}
	}
	return kinarow.FromCells(kinarow.Config{Size: len(rows), Win: win}, cells)
}

func FormatBoard(b *kinarow.Board) string {
	rows := make([]string, b.Size())
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < b.Size(); c++ {
			sb.WriteString(FormatMark(b.At(r, c)))
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}

func parseCell(ch rune) (kinarow.Cell, error) {
	switch ch {
	case 'x', 'X':
		return kinarow.X, nil
	case 'o', 'O':
		return kinarow.O, nil
	case '.', '_':
		return kinarow.Empty, nil
	}
	return kinarow.Empty, fmt.Errorf("bad cell: %q", ch)
}

// ParseMark parses a player mark, "x" or "o".
func ParseMark(s string) (kinarow.Cell, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return kinarow.Empty, fmt.Errorf("bad mark: %q", s)
	}
	c, err := parseCell(rune(s[0]))
	if err != nil || c == kinarow.Empty {
		return kinarow.Empty, fmt.Errorf("bad mark: %q", s)
	}
	return c, nil
}

func FormatMark(c kinarow.Cell) string {
	switch c {
	case kinarow.X:
		return "x"
	case kinarow.O:
		return "o"
	default:
		return "."
	}
}
