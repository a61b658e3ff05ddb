package symmetry

import "github.com/tictacgo/tictac/kinarow"

// A Symmetry maps a (row, col) square onto its image.
type Symmetry func(row, col int) (int, int)

// Symmetries returns the eight symmetries of a size×size board; the
// identity is first.
func Symmetries(size int) []Symmetry {
	flip := func(i int) int {
		return size - 1 - i
	}

	identity := func(r, c int) (int, int) {
		return r, c
	}
	mirror := func(r, c int) (int, int) {
		return r, flip(c)
	}
	flipRows := func(r, c int) (int, int) {
		return flip(r), c
	}
	transpose := func(r, c int) (int, int) {
		return c, r
	}
	antiTranspose := func(r, c int) (int, int) {
		return flip(c), flip(r)
	}
	rotate2 := func(r, c int) (int, int) {
		return flip(r), flip(c)
	}
	rotCW := func(r, c int) (int, int) {
		return c, flip(r)
	}
	rotCCW := func(r, c int) (int, int) {
		return flip(c), r
	}

	return []Symmetry{
		identity,
		mirror,
		flipRows,
		transpose,
		antiTranspose,
		rotate2,
		rotCW,
		rotCCW,
	}
}

func TransformMove(s Symmetry, m kinarow.Move) kinarow.Move {
	if m.IsNone() {
		return m
	}
	var out kinarow.Move
	out.Row, out.Col = s(m.Row, m.Col)
	return out
}

// Transform returns a new board holding the image of b under s.
func Transform(s Symmetry, b *kinarow.Board) *kinarow.Board {
	out := kinarow.New(b.Config())
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			rr, rc := s(r, c)
			out.Set(rr, rc, b.At(r, c))
		}
	}
	return out
}

// All returns b under every symmetry, in Symmetries order.
func All(b *kinarow.Board) []*kinarow.Board {
	syms := Symmetries(b.Size())
	out := make([]*kinarow.Board, len(syms))
	for i, s := range syms {
		out[i] = Transform(s, b)
	}
	return out
}

// Canonical returns the least image of b, comparing cells in
// row-major order, and the symmetry that produces it. Boards equal up
// to symmetry share a canonical form.
func Canonical(b *kinarow.Board) (*kinarow.Board, Symmetry) {
	syms := Symmetries(b.Size())
	best, bestSym := b.Clone(), syms[0]
	for _, s := range syms[1:] {
		if t := Transform(s, b); less(t, best) {
			best, bestSym = t, s
		}
	}
	return best, bestSym
}

func less(a, b *kinarow.Board) bool {
	for r := 0; r < a.Size(); r++ {
		for c := 0; c < a.Size(); c++ {
			if a.At(r, c) != b.At(r, c) {
				return a.At(r, c) < b.At(r, c)
			}
		}
	}
	return false
}
