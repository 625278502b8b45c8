// Package searcher decides Chomp positions by exhaustive backward induction.
//
// The search visits every position reachable from the root, without pruning,
// so its cost grows exponentially with the number of alive squares. Callers
// must cap the board size before searching; see meta.SquareLimit.
package searcher

import "chomp/game"

// Advisor answers whether the player to move on a board can force a win.
type Advisor interface {
	WinningMove(board *game.Board) (game.Position, bool)
}

// verdict is the cached outcome of a position.
type verdict struct {
	move game.Position
	win  bool
}
