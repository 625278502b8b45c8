package gamemaster

import (
	"errors"
	"fmt"

	"chomp/game"
	"chomp/searcher"

	"github.com/rs/zerolog/log"
)

// ErrGameOver is returned by Play once the poison square has been taken.
var ErrGameOver = errors.New("game is over - no moves allowed")

// UpdateGetter returns the last played move and the resulting state, or
// (nil, nil) when nothing new happened or the game is over.
type UpdateGetter func() (*game.Position, *game.GameState)

type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(move game.Position) error
}

type Option func(e *localEngine)

// WithAdvisor marks non-terminal states whose player to move cannot force a
// win with game.OpponentHasNoWinningMove.
func WithAdvisor(advisor searcher.Advisor) Option {
	return func(e *localEngine) {
		e.advisor = advisor
	}
}

type update struct {
	move  game.Position
	state *game.GameState
}

type localEngine struct {
	size     game.BoardSize
	players  [2]string
	advisor  searcher.Advisor
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

// NewLocalEngine holds the single authoritative state of one game. players[0]
// moves first.
func NewLocalEngine(size game.BoardSize, players [2]string, options ...Option) *localEngine {
	e := &localEngine{
		size:    size,
		players: players,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	e.state = game.NewGameState(e.size, e.players[0], e.players[1])
	e.gameOver = false
	e.updateCh = make(chan update, 1)

	return e.state.Copy(), func() (*game.Position, *game.GameState) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return nil, nil
			}
			// return copies
			move := u.move
			return &move, u.state.Copy()
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

// Play applies a move for the player to move. Moves on squares that are not
// alive fail with game.ErrInvalidMove and leave the state unchanged.
func (e *localEngine) Play(move game.Position) error {
	if e.state == nil {
		return fmt.Errorf("game has not been initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}

	newState, err := e.state.Play(move)
	if err != nil {
		return fmt.Errorf("%s cannot play %s: %w", e.state.Player(), e.state.Board.Label(move), err)
	}

	if !newState.Status.IsTerminal() && e.advisor != nil {
		if _, ok := e.advisor.WinningMove(newState.Board); !ok {
			newState.Status = game.OpponentHasNoWinningMove
			log.Debug().Msgf("%s has no forced win", newState.Player())
		}
	}
	e.state = newState

	// Drop an update nobody collected so Play never blocks
	select {
	case <-e.updateCh:
	default:
	}

	e.updateCh <- update{move: move, state: e.state}
	if e.state.Status.IsTerminal() {
		e.gameOver = true
		close(e.updateCh)
	}

	return nil
}

// State returns a copy of the authoritative state.
func (e *localEngine) State() *game.GameState {
	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}
