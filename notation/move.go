package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tictacgo/tictac/kinarow"
)

// ParseMove parses a square name: a column letter followed by a
// 1-based row number counted from the top, so "a1" is (0,0) and
// "c2" is (1,2). "-" is the no-move sentinel.
func ParseMove(s string) (kinarow.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "-" {
		return kinarow.NoMove, nil
	}
	if len(s) < 2 {
		return kinarow.NoMove, fmt.Errorf("move too short: %q", s)
	}
	if s[0] < 'a' || s[0] > 'z' {
		return kinarow.NoMove, fmt.Errorf("bad column: %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return kinarow.NoMove, fmt.Errorf("bad row: %q", s)
	}
	return kinarow.Move{Row: row - 1, Col: int(s[0] - 'a')}, nil
}

func FormatMove(m kinarow.Move) string {
	if m.IsNone() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// ParseMoves parses a space-separated move list.
func ParseMoves(s string) ([]kinarow.Move, error) {
	var out []kinarow.Move
	for _, w := range strings.Fields(s) {
		m, err := ParseMove(w)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func FormatMoves(ms []kinarow.Move) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = FormatMove(m)
	}
	return strings.Join(bits, " ")
}
