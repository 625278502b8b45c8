// Package game holds the Chomp board, the chomp move and the game state
// built on top of them.
package game

type StateHash uint64

// Status describes where a game stands after the last move.
type Status int

const (
	InProgress Status = iota
	// MoverLosesOnPoison: the last mover took the poison square.
	MoverLosesOnPoison
	// OpponentHasNoWinningMove: the player to move cannot force a win.
	// Advisory only, the game goes on.
	OpponentHasNoWinningMove
)

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s == MoverLosesOnPoison
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case MoverLosesOnPoison:
		return "mover loses on poison"
	case OpponentHasNoWinningMove:
		return "opponent has no winning move"
	default:
		return "unknown"
	}
}
