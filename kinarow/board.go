package kinarow

import (
	"errors"
	"fmt"
)

type Config struct {
	Size int
	Win  int
}

var (
	ErrOutOfBounds = errors.New("move out of bounds")
	ErrOccupied    = errors.New("cell already occupied")
)

// Validate fills in the default win length and checks that the
// configuration describes a playable board.
func (c *Config) Validate() error {
	if c.Size < 3 {
		return fmt.Errorf("bad size: %d", c.Size)
	}
	if c.Win == 0 {
		c.Win = defaultWin(c.Size)
	}
	if c.Win < 1 || c.Win > c.Size {
		return fmt.Errorf("bad win length %d for size %d", c.Win, c.Size)
	}
	return nil
}

func defaultWin(size int) int {
	if size == 3 {
		return 3
	}
	return 4
}

type Board struct {
	cfg   Config
	cells []Cell
}

// New returns an empty board. It panics if cfg is not valid; use
// Config.Validate first when the configuration comes from a user.
func New(cfg Config) *Board {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("kinarow.New: %v", err))
	}
	return &Board{
		cfg:   cfg,
		cells: make([]Cell, cfg.Size*cfg.Size),
	}
}

// FromCells builds a board from a slice of rows, top row first.
func FromCells(cfg Config, rows [][]Cell) (*Board, error) {
	if cfg.Size == 0 {
		cfg.Size = len(rows)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(rows) != cfg.Size {
		return nil, fmt.Errorf("got %d rows, want %d", len(rows), cfg.Size)
	}
	b := New(cfg)
	for r, row := range rows {
		if len(row) != cfg.Size {
			return nil, fmt.Errorf("row %d bad length: %d", r, len(row))
		}
		for c, cell := range row {
			if cell != Empty && !cell.IsPlayer() {
				return nil, fmt.Errorf("bad cell at %d,%d: %x", r, c, int(cell))
			}
			b.cells[r*cfg.Size+c] = cell
		}
	}
	return b, nil
}

func (b *Board) Config() Config {
	return b.cfg
}

func (b *Board) Size() int {
	return b.cfg.Size
}

func (b *Board) Win() int {
	return b.cfg.Win
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.cfg.Size && col >= 0 && col < b.cfg.Size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.cfg.Size+col]
}

func (b *Board) Set(row, col int, c Cell) {
	b.cells[row*b.cfg.Size+col] = c
}

// Place puts c on the empty cell m, reporting moves that are off the
// board or onto an occupied cell.
func (b *Board) Place(m Move, c Cell) error {
	if !b.InBounds(m.Row, m.Col) {
		return ErrOutOfBounds
	}
	if b.At(m.Row, m.Col) != Empty {
		return ErrOccupied
	}
	b.Set(m.Row, m.Col, c)
	return nil
}

// Placement is a speculative mark placed by Try. Undo restores the
// cell to empty.
type Placement struct {
	b *Board
	i int
}

func (p Placement) Undo() {
	p.b.cells[p.i] = Empty
}

// Try places c on the empty cell m and returns the placement to undo.
// Callers must Undo on every exit path before the board is handed
// back.
func (b *Board) Try(m Move, c Cell) Placement {
	i := m.Row*b.cfg.Size + m.Col
	if b.cells[i] != Empty {
		panic(fmt.Sprintf("Try: cell %s is not empty", m))
	}
	b.cells[i] = c
	return Placement{b, i}
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	var out []Move
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, Move{Row: i / b.cfg.Size, Col: i % b.cfg.Size})
		}
	}
	return out
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	out := &Board{cfg: b.cfg, cells: make([]Cell, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

func (b *Board) Equal(o *Board) bool {
	if b.cfg != o.cfg {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Winner returns the mark holding a winning run, or Empty.
func (b *Board) Winner() Cell {
	if CheckWin(b, X, b.cfg.Win) {
		return X
	}
	if CheckWin(b, O, b.cfg.Win) {
		return O
	}
	return Empty
}

// GameOver reports whether the game has ended, and who won. A full
// board without a winner is a draw and reports Empty.
func (b *Board) GameOver() (over bool, winner Cell) {
	if w := b.Winner(); w != Empty {
		return true, w
	}
	return b.Full(), Empty
}
