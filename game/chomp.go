package game

import "fmt"

// Chomp removes p together with every alive square in the columns at or to
// the right of p whose row lies between p.Row and the highest row alive
// anywhere on the board. The input board is left untouched.
//
// Taking the poison square empties a staircase board; interpreting that as
// the end of the game is up to the caller.
func Chomp(b *Board, p Position) (*Board, error) {
	if !b.Contains(p) {
		return nil, fmt.Errorf("square %s is not on the board: %w", b.Label(p), ErrInvalidMove)
	}

	// The bound is the board-wide maximum row, not the maximum of p's column.
	// On staircase boards the two agree.
	maxRow, err := b.MaxRow()
	if err != nil {
		return nil, err
	}
	columns := make(map[int]bool)
	for q := range b.alive {
		if q.Column >= p.Column {
			columns[q.Column] = true
		}
	}

	return b.without(func(q Position) bool {
		return columns[q.Column] && q.Row >= p.Row && q.Row <= maxRow
	}), nil
}
