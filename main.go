package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"chomp/display"
	"chomp/engine"
	"chomp/experiments"
	"chomp/experiments/metrics"
	"chomp/game"
	"chomp/gamemaster"
	"chomp/meta"
	"chomp/player"
	"chomp/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	size    game.BoardSize
	mode    string
	first   string
	cache   bool
	seed    uint64
	games   int
	out     string
	clear   bool
	sweepTo int
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch cfg.mode {
	case "play":
		err = runPlay(cfg)
	case "watch":
		err = runWatch(cfg)
	case "sweep":
		err = runSweep(cfg)
	case "selfplay":
		err = runSelfPlay(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("chomp", flag.ContinueOnError)
	rows := fs.Int("rows", meta.DEFAULT_ROWS, "Number of board rows")
	columns := fs.Int("columns", meta.DEFAULT_COLUMNS, "Number of board columns")
	letters := fs.String("letters", game.DefaultLetters, "Column letters, one per supported column")
	mode := fs.String("mode", "play", "play (human vs machine), watch (machine vs machine), sweep or selfplay")
	first := fs.String("first", "human", "Who moves first in play mode: human or machine")
	cache := fs.Bool("cache", false, "Cache solved positions")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the machine's fallback moves")
	games := fs.Int("games", 10, "Number of games in selfplay mode")
	out := fs.String("out", "experiments", "Directory for experiment results")
	clearScreen := fs.Bool("clear", true, "Clear the screen before drawing the board")
	sweepTo := fs.Int("sweep-to", 5, "Largest rows and columns in sweep mode")
	level := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(*level))
	if err != nil {
		return config{}, fmt.Errorf("invalid log level %q: %w", *level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Configuration errors abort before any game state exists
	alphabet, err := game.NewAlphabet(*letters)
	if err != nil {
		return config{}, err
	}
	size, err := game.NewBoardSize(*rows, *columns, alphabet)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		size:    size,
		mode:    *mode,
		first:   *first,
		cache:   *cache,
		seed:    *seed,
		games:   *games,
		out:     *out,
		clear:   *clearScreen,
		sweepTo: *sweepTo,
	}

	switch cfg.mode {
	case "play", "watch":
		if limit := meta.SquareLimit(cfg.cache); size.Squares() > limit {
			return config{}, fmt.Errorf("a %v board has more than %d squares, use a smaller board or -cache: %w", size, limit, game.ErrOutOfRange)
		}
	case "sweep", "selfplay":
	default:
		return config{}, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if cfg.first != "human" && cfg.first != "machine" {
		return config{}, fmt.Errorf("unknown first player %q", cfg.first)
	}
	if cfg.sweepTo < 1 || cfg.sweepTo > alphabet.Len() {
		return config{}, fmt.Errorf("sweep-to must be between 1 and %d: %w", alphabet.Len(), game.ErrOutOfRange)
	}
	return cfg, nil
}

func newSolver(cfg config) *searcher.Solver {
	options := []searcher.Option{searcher.WithMetrics()}
	if cfg.cache {
		options = append(options, searcher.WithCache())
	}
	return searcher.NewSolver(options...)
}

// newMaster builds the game master for one game. Non-terminal states whose
// mover cannot force a win are flagged using a solver of their own.
func newMaster(cfg config, names [2]string) gamemaster.Engine {
	return gamemaster.NewLocalEngine(cfg.size, names, gamemaster.WithAdvisor(newSolver(cfg)))
}

// runPlay pits a person on stdin against the machine.
func runPlay(cfg config) error {
	if cfg.clear {
		if err := display.Clear(os.Stdout); err != nil {
			return err
		}
	}
	fmt.Print(display.Title + "\n")
	fmt.Printf("Rows: %d x Columns: %d\n", cfg.size.Rows, cfg.size.Columns)

	humanOptions := []player.HumanOption{}
	if cfg.clear {
		humanOptions = append(humanOptions, player.WithClearScreen())
	}
	human := player.NewHuman(os.Stdin, os.Stdout, humanOptions...)
	machine := player.NewMachine(newSolver(cfg), cfg.seed)

	agents := [2]player.Agent{human, machine}
	names := [2]string{"You", "Machine"}
	if cfg.first == "machine" {
		agents = [2]player.Agent{machine, human}
		names = [2]string{"Machine", "You"}
	}

	master := newMaster(cfg, names)
	winner, _, _, err := engine.LocalEngine(master, agents).Run()
	if errors.Is(err, game.ErrInvalidMove) {
		return fmt.Errorf("too many rejected moves: %w", err)
	}
	if err != nil {
		return err
	}

	if winner == "You" {
		fmt.Println("You win! The machine took the poison square.")
	} else {
		fmt.Println("You took the poison square. The machine wins.")
	}
	return nil
}

// runWatch plays the machine against itself and prints every move.
func runWatch(cfg config) error {
	agents := [2]player.Agent{
		player.NewMachine(newSolver(cfg), cfg.seed),
		player.NewMachine(newSolver(cfg), cfg.seed+1),
	}
	master := newMaster(cfg, [2]string{meta.FIRST_PLAYER, meta.SECOND_PLAYER})
	winner, _, moveMetrics, err := engine.LocalEngine(master, agents).Run()
	if err != nil {
		return err
	}

	for _, m := range moveMetrics {
		forced := ""
		if m.Found {
			forced = " (forcing)"
		}
		fmt.Printf("%3d. %s plays %s%s\n", m.Step, m.Player, m.Move, forced)
	}
	fmt.Printf("Winner: %s\n", winner)
	return nil
}

func runSweep(cfg config) error {
	sizes := []game.BoardSize{}
	for rows := 1; rows <= cfg.sweepTo; rows++ {
		for columns := 1; columns <= cfg.sweepTo; columns++ {
			size, err := game.NewBoardSize(rows, columns, cfg.size.Alphabet)
			if err != nil {
				return err
			}
			sizes = append(sizes, size)
		}
	}

	writer, err := metrics.NewWriter(cfg.out, "sweep")
	if err != nil {
		return err
	}
	records, err := experiments.RunSolveSweep(sizes, writer)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%dx%d cached=%-5t move=%-4s nodes=%d\n", r.Rows, r.Columns, r.Cached, r.Move, r.Nodes)
	}
	return nil
}

func runSelfPlay(cfg config) error {
	writer, err := metrics.NewWriter(cfg.out, "selfplay")
	if err != nil {
		return err
	}
	_, _, err = experiments.RunSelfPlay(cfg.size, cfg.games, cfg.seed, writer)
	return err
}
