package kinarow

import "fmt"

type Cell byte

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	case Empty:
		return "empty"
	default:
		panic(fmt.Sprintf("bad cell: %x", int(c)))
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	case Empty:
		return Empty
	default:
		panic(fmt.Sprintf("bad cell: %x", int(c)))
	}
}

func (c Cell) IsPlayer() bool {
	return c == X || c == O
}

type Move struct {
	Row, Col int
}

// NoMove is returned by the strategies when no empty cell remains.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
