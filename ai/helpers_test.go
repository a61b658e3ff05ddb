package ai

import (
	"strings"
	"testing"

	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
)

func board(t *testing.T, win int, rows ...string) *kinarow.Board {
	t.Helper()
	b, err := notation.ParseBoard(strings.Join(rows, "/"), win)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

// unchanged fails the test if f modifies b.
func unchanged(t *testing.T, b *kinarow.Board, f func()) {
	t.Helper()
	before := b.Clone()
	f()
	if !b.Equal(before) {
		t.Fatalf("board modified: before=%s after=%s",
			notation.FormatBoard(before), notation.FormatBoard(b))
	}
}
