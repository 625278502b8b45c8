package player

import (
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/searcher"

	"golang.org/x/exp/rand"
)

// Machine plays the solver's winning move. Without one it plays a random
// square other than the poison square, and takes the poison square only
// when nothing else is left.
type Machine struct {
	solver *searcher.Solver
	rng    *rand.Rand
}

func NewMachine(solver *searcher.Solver, seed uint64) *Machine {
	return &Machine{
		solver: solver,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (m *Machine) FindMove(state *game.GameState) (game.Position, metrics.SearchMetric, error) {
	move, ok, metric := m.solver.Search(state.Board)
	if ok {
		return move, metric, nil
	}

	moves := make([]game.Position, 0, state.Board.Len())
	for _, p := range state.LegalMoves() {
		if !p.IsPoison() {
			moves = append(moves, p)
		}
	}
	if len(moves) == 0 {
		return game.Poison, metric, nil
	}
	return moves[m.rng.Intn(len(moves))], metric, nil
}
