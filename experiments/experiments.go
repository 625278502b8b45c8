package experiments

import (
	"fmt"

	"chomp/engine"
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/gamemaster"
	"chomp/meta"
	"chomp/player"
	"chomp/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// RunSolveSweep solves the full rectangle of every size, smallest first,
// with the plain and the caching solver. Sizes over a solver's square limit
// are skipped for that solver. Records are written when writer is not nil.
func RunSolveSweep(sizes []game.BoardSize, writer *metrics.Writer) ([]metrics.SolveRecord, error) {
	sorted := slices.Clone(sizes)
	slices.SortStableFunc(sorted, func(a, b game.BoardSize) int {
		return a.Squares() - b.Squares()
	})

	log.Info().Msgf("starting solve sweep over %d sizes...", len(sorted))

	records := []metrics.SolveRecord{}
	for _, size := range sorted {
		for _, cached := range []bool{false, true} {
			if size.Squares() > meta.SquareLimit(cached) {
				log.Warn().Msgf("skipping %v board (cached=%t): more than %d squares", size, cached, meta.SquareLimit(cached))
				continue
			}
			options := []searcher.Option{searcher.WithMetrics()}
			if cached {
				options = append(options, searcher.WithCache())
			}
			board := game.NewBoard(size)
			move, ok, metric := searcher.NewSolver(options...).Search(board)

			record := metrics.SolveRecord{
				Rows:         size.Rows,
				Columns:      size.Columns,
				SearchMetric: metric,
			}
			if ok {
				record.Move = board.Label(move)
			}
			records = append(records, record)
			log.Info().Msgf("solved %v board (cached=%t): move=%q nodes=%d in %v", size, cached, record.Move, metric.Nodes, metric.Duration)
		}
	}

	log.Info().Msg("completed solve sweep")

	if writer == nil {
		return records, nil
	}
	if err := writer.WriteSolveRecords(records); err != nil {
		return records, fmt.Errorf("failed to store solve records: %w", err)
	}
	log.Info().Msgf("stored solve records in %s", writer.Dir())
	return records, nil
}

// RunSelfPlay plays games between two caching machine agents on size.
func RunSelfPlay(size game.BoardSize, games int, seed uint64, writer *metrics.Writer) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	if size.Squares() > meta.SquareLimit(true) {
		return nil, nil, fmt.Errorf("%v board has more than %d squares: %w", size, meta.SquareLimit(true), game.ErrOutOfRange)
	}

	rng := rand.New(rand.NewSource(seed))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting self-play experiment on %v board...", size)

	for i := 0; i < games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		winner, gameMetric, moveMetrics, err := runGame(size, rng.Uint64(), rng.Uint64())
		if err != nil {
			return gameRecords, moveRecords, fmt.Errorf("game %d: %w", i+1, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with winner: %s", i+1, winner)
	}

	log.Info().Msg("completed self-play experiment")

	if writer == nil {
		return gameRecords, moveRecords, nil
	}
	err := writer.WriteGameRecords(gameRecords)
	if err != nil {
		return gameRecords, moveRecords, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return gameRecords, moveRecords, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return gameRecords, moveRecords, nil
}

// runGame executes a single game between two machine agents and returns the winner
func runGame(size game.BoardSize, seed1, seed2 uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]player.Agent{
		player.NewMachine(searcher.NewSolver(searcher.WithCache(), searcher.WithMetrics()), seed1),
		player.NewMachine(searcher.NewSolver(searcher.WithCache(), searcher.WithMetrics()), seed2),
	}
	master := gamemaster.NewLocalEngine(size, [2]string{meta.FIRST_PLAYER, meta.SECOND_PLAYER})
	e := engine.LocalEngine(master, agents)

	return e.Run()
}
