package ai

import (
	"context"
	"testing"

	"github.com/tictacgo/tictac/kinarow"
)

func TestSelectorChoose(t *testing.T) {
	s := NewSelector(SelectorConfig{Seed: 1})
	cases := []struct {
		cfg  kinarow.Config
		want Kind
	}{
		{kinarow.Config{Size: 3, Win: 3}, Exact},
		{kinarow.Config{Size: 4, Win: 3}, Heuristic},
		{kinarow.Config{Size: 5, Win: 4}, Heuristic},
	}
	for _, tc := range cases {
		if got := s.Choose(tc.cfg); got != tc.want {
			t.Errorf("Choose(%+v)=%s want %s", tc.cfg, got, tc.want)
		}
	}

	wide := NewSelector(SelectorConfig{ExactLimit: 16, Seed: 1})
	if got := wide.Choose(kinarow.Config{Size: 4, Win: 3}); got != Exact {
		t.Errorf("ExactLimit=16: Choose(4x4)=%s", got)
	}
	off := NewSelector(SelectorConfig{ExactLimit: -1, Seed: 1})
	if got := off.Choose(kinarow.Config{Size: 3, Win: 3}); got != Heuristic {
		t.Errorf("ExactLimit=-1: Choose(3x3)=%s", got)
	}
}

func TestSelectorDispatch(t *testing.T) {
	s := NewSelector(SelectorConfig{Seed: 1})

	small := board(t, 0, "xo.", "ox.", "...")
	m, k := s.BestMove(small, kinarow.O)
	if k != Exact || m != (kinarow.Move{Row: 2, Col: 2}) {
		t.Errorf("3x3: BestMove=%s,%s", m, k)
	}

	large := board(t, 4, ".....", ".....", ".....", ".....", ".....")
	m, k = s.BestMove(large, kinarow.O)
	if k != Heuristic || m != (kinarow.Move{Row: 2, Col: 2}) {
		t.Errorf("5x5: BestMove=%s,%s", m, k)
	}
}

func TestSelectorSentinel(t *testing.T) {
	s := NewSelector(SelectorConfig{Seed: 1})
	for _, b := range []*kinarow.Board{
		board(t, 0, "xox", "xoo", "oxx"),
		board(t, 4, "xxoox", "ooxxo", "xxoox", "ooxxo", "xxoox"),
	} {
		if m := s.GetMove(context.Background(), b, kinarow.O); m != kinarow.NoMove {
			t.Errorf("GetMove on full board = %s", m)
		}
	}
}

func TestSelectorPlaysX(t *testing.T) {
	s := NewSelector(SelectorConfig{Seed: 1})
	b := board(t, 0, ".oo", "xx.", "...")
	// the win on row 1 comes before blocking at a1
	if m := s.GetMove(context.Background(), b, kinarow.X); m != (kinarow.Move{Row: 1, Col: 2}) {
		t.Errorf("GetMove(X)=%s", m)
	}
}

func TestSelectorSeedRepeatable(t *testing.T) {
	rows := []string{"x....", ".....", "..o..", ".....", "....."}
	a := NewSelector(SelectorConfig{Seed: 99})
	b := NewSelector(SelectorConfig{Seed: 99})
	for i := 0; i < 5; i++ {
		ma, _ := a.BestMove(board(t, 4, rows...), kinarow.O)
		mb, _ := b.BestMove(board(t, 4, rows...), kinarow.O)
		if ma != mb {
			t.Fatalf("call %d: %s != %s with equal seeds", i, ma, mb)
		}
	}
}
