package searcher

import (
	"chomp/experiments/metrics"
	"chomp/game"
)

type Option func(s *Solver)

// WithCache remembers the verdict of every position searched. Answers do not
// change, only the work needed to reach them.
func WithCache() Option {
	return func(s *Solver) {
		s.cache = make(map[string]verdict)
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = metrics.NewCollector()
	}
}

// Solver finds forcing moves. A Solver holding a cache is not safe for
// concurrent use.
type Solver struct {
	cache   map[string]verdict
	metrics metrics.Collector
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// WinningMove returns a move that leaves the opponent without a forced win,
// or false when every move hands the opponent one. Moves are tried in
// canonical order (ascending column, then row) and the first forcing move
// wins the tie-break. A board holding only the poison square, or nothing,
// has no winning move.
func (s *Solver) WinningMove(board *game.Board) (game.Position, bool) {
	move, ok, _ := s.Search(board)
	return move, ok
}

// Search is WinningMove plus the metrics collected along the way.
func (s *Solver) Search(board *game.Board) (game.Position, bool, metrics.SearchMetric) {
	s.metrics.Start(board.Len(), s.cache != nil)
	move, ok := s.winningMove(board)
	return move, ok, s.metrics.Complete(ok)
}

func (s *Solver) winningMove(board *game.Board) (game.Position, bool) {
	s.metrics.AddNode()

	var key string
	if s.cache != nil {
		key = board.Key()
		if v, ok := s.cache[key]; ok {
			s.metrics.AddCacheHit()
			return v.move, v.win
		}
	}

	move, win := s.decide(board)

	if s.cache != nil {
		s.cache[key] = verdict{move: move, win: win}
	}
	return move, win
}

func (s *Solver) decide(board *game.Board) (game.Position, bool) {
	// Only the poison square left (or nothing): the mover loses
	if board.Len() == 0 || (board.Len() == 1 && board.Contains(game.Poison)) {
		return game.Position{}, false
	}

	for _, move := range board.Positions() {
		if move.IsPoison() {
			continue
		}
		next, err := game.Chomp(board, move)
		if err != nil {
			panic(err) // move comes from the board itself
		}
		if _, win := s.winningMove(next); !win {
			return move, true
		}
	}
	return game.Position{}, false
}

// CacheSize returns the number of positions remembered, 0 without a cache.
func (s *Solver) CacheSize() int {
	return len(s.cache)
}
