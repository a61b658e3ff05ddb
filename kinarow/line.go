package kinarow

// LineHasRun reports whether the k cells starting at (row, col) and
// stepping by (dr, dc) all hold player. The window must lie entirely
// on the board.
func LineHasRun(b *Board, player Cell, row, col, dr, dc, k int) bool {
	for i := 0; i < k; i++ {
		if b.At(row+i*dr, col+i*dc) != player {
			return false
		}
	}
	return true
}

// RunAlong walks from (row, col) in direction (dr, dc) until it
// leaves the board, and reports whether it passes k consecutive
// cells holding player.
func RunAlong(b *Board, player Cell, row, col, dr, dc, k int) bool {
	count := 0
	for i := 0; i < b.Size(); i++ {
		r, c := row+i*dr, col+i*dc
		if !b.InBounds(r, c) {
			break
		}
		if b.At(r, c) != player {
			count = 0
			continue
		}
		count++
		if count == k {
			return true
		}
	}
	return false
}

// CheckWin reports whether player holds k in a row anywhere on the
// board. When the board is exactly k wide every line has a single
// window and the fixed-window check is used.
func CheckWin(b *Board, player Cell, k int) bool {
	n := b.Size()
	if n != k {
		return CheckRuns(b, player, k)
	}
	for i := 0; i < n; i++ {
		if LineHasRun(b, player, i, 0, 0, 1, k) || LineHasRun(b, player, 0, i, 1, 0, k) {
			return true
		}
	}
	return LineHasRun(b, player, 0, 0, 1, 1, k) || LineHasRun(b, player, 0, n-1, 1, -1, k)
}

// CheckRuns is CheckWin using the full-length scan on every line,
// including every diagonal long enough to hold a run of k.
func CheckRuns(b *Board, player Cell, k int) bool {
	n := b.Size()
	for i := 0; i < n; i++ {
		if RunAlong(b, player, i, 0, 0, 1, k) || RunAlong(b, player, 0, i, 1, 0, k) {
			return true
		}
	}
	for s := 0; s <= n-k; s++ {
		// ↘ from the left edge and from the top edge
		if RunAlong(b, player, s, 0, 1, 1, k) || RunAlong(b, player, 0, s, 1, 1, k) {
			return true
		}
		// ↙ from the right edge and from the top edge
		if RunAlong(b, player, s, n-1, 1, -1, k) || RunAlong(b, player, 0, n-1-s, 1, -1, k) {
			return true
		}
	}
	return false
}
