package game

import "fmt"

// GameState represents the game at any point: the board plus whose turn it is.
// GameState is immutable - Play always returns a new copy.
type GameState struct {
	Board         *Board
	Players       [2]string // Player names, Players[0] moves first
	CurrentPlayer int       // Index into Players of the player to move
	LastMove      *Position // nil before the first move
	Status        Status
	Won           string // The winner of the game, "" if no winner yet
}

// NewGameState initializes a game on the full rectangle of size.
func NewGameState(size BoardSize, first, second string) *GameState {
	return &GameState{
		Board:   NewBoard(size),
		Players: [2]string{first, second},
		Status:  InProgress,
	}
}

// copy of the GameState. The board is shared since boards never change.
func (gs GameState) Copy() *GameState {
	var lastMove *Position
	if gs.LastMove != nil {
		move := *gs.LastMove
		lastMove = &move
	}
	return &GameState{
		Board:         gs.Board,
		Players:       gs.Players,
		CurrentPlayer: gs.CurrentPlayer,
		LastMove:      lastMove,
		Status:        gs.Status,
		Won:           gs.Won,
	}
}

// Player returns the name of the player to move.
func (gs GameState) Player() string {
	return gs.Players[gs.CurrentPlayer]
}

// Opponent returns the name of the player waiting.
func (gs GameState) Opponent() string {
	return gs.Players[gs.NextPlayer()]
}

func (gs GameState) NextPlayer() int {
	return 1 - gs.CurrentPlayer
}

// LegalMoves lists every alive square in canonical order. The poison square
// is legal, it just loses.
func (gs GameState) LegalMoves() []Position {
	if gs.Status.IsTerminal() {
		return nil
	}
	return gs.Board.Positions()
}

// Play applies a move for the current player. Emptying the board ends the
// game with the mover losing.
func (gs GameState) Play(move Position) (*GameState, error) {
	if gs.Status.IsTerminal() {
		return nil, fmt.Errorf("game is over: %w", ErrInvalidMove)
	}
	board, err := Chomp(gs.Board, move)
	if err != nil {
		return nil, err
	}

	newGs := gs.Copy()
	newGs.Board = board
	newGs.LastMove = &move
	newGs.Status = InProgress
	if board.IsEmpty() {
		newGs.Status = MoverLosesOnPoison
		newGs.Won = gs.Opponent()
	}
	newGs.CurrentPlayer = gs.NextPlayer()
	return newGs, nil
}

// gets the winner of the game
func (gs GameState) Winner() string {
	return gs.Won
}

func (gs GameState) Hash() StateHash {
	return gs.Board.Hash() ^ StateHash(gs.CurrentPlayer)
}
