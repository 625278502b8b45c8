package engine

import (
	"errors"
	"fmt"
	"time"

	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/gamemaster"
	"chomp/meta"
	"chomp/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	master gamemaster.Engine
	agents [2]player.Agent
}

// LocalEngine drives two agents against a game master. agents[0] plays the
// first move.
func LocalEngine(master gamemaster.Engine, agents [2]player.Agent) Engine {
	for _, a := range agents {
		if a == nil {
			panic("need two agents")
		}
	}
	return &localEngine{
		master: master,
		agents: agents,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, getUpdate := e.master.Init()
	size := state.Board.Size()
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		Rows:           size.Rows,
		Columns:        size.Columns,
		StartingPlayer: state.Player(),
		StartTime:      time.Now(),
	}
	logger := log.With().Str("game", gameMetric.ID).Logger()
	logger.Info().Msgf("%s is starting on a %v board", state.Player(), size)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !state.Status.IsTerminal() {
		agent := e.agents[state.CurrentPlayer]

		move, searchMetric, err := e.play(agent, state)
		if err != nil {
			return "", gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       state.Player(),
			Move:         state.Board.Label(move),
			SearchMetric: searchMetric,
		})
		logger.Debug().Int("step", step).Str("player", state.Player()).Msgf("played %s", state.Board.Label(move))

		_, newState := getUpdate()
		if newState == nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("no update after move %d", step)
		}
		if newState.Status == game.OpponentHasNoWinningMove {
			logger.Debug().Msgf("%s cannot force a win", newState.Player())
		}
		state = newState
		step++
	}

	gameMetric.Winner = state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	logger.Info().Msgf("game over after %d moves! Winner: %s", gameMetric.TotalMoves, gameMetric.Winner)

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

// play asks the agent for a move until the game master accepts one.
func (e *localEngine) play(agent player.Agent, state *game.GameState) (game.Position, metrics.SearchMetric, error) {
	for attempt := 1; ; attempt++ {
		move, searchMetric, err := agent.FindMove(state)
		if err != nil {
			return game.Position{}, searchMetric, fmt.Errorf("%s failed to find a move: %w", state.Player(), err)
		}
		err = e.master.Play(move)
		if err == nil {
			return move, searchMetric, nil
		}
		if !errors.Is(err, game.ErrInvalidMove) || attempt >= meta.MaxRetries {
			return game.Position{}, searchMetric, err
		}
		log.Warn().Err(err).Msgf("rejected move %s, asking %s again", state.Board.Label(move), state.Player())
	}
}
