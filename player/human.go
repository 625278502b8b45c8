package player

import (
	"bufio"
	"fmt"
	"io"

	"chomp/display"
	"chomp/experiments/metrics"
	"chomp/game"
)

type HumanOption func(h *Human)

// WithClearScreen clears the terminal before drawing the board.
func WithClearScreen() HumanOption {
	return func(h *Human) {
		h.clear = true
	}
}

// Human asks a person for moves over a text stream.
type Human struct {
	in    *bufio.Scanner
	out   io.Writer
	clear bool
}

func NewHuman(in io.Reader, out io.Writer, options ...HumanOption) *Human {
	h := &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// FindMove draws the board and reads lines until one parses. It returns
// io.EOF when the input ends.
func (h *Human) FindMove(state *game.GameState) (game.Position, metrics.SearchMetric, error) {
	board := state.Board
	if h.clear {
		if err := display.Clear(h.out); err != nil {
			return game.Position{}, metrics.SearchMetric{}, err
		}
	}
	if state.LastMove != nil {
		fmt.Fprintf(h.out, "%s played %s\n", state.Opponent(), board.Label(*state.LastMove))
	}
	if err := display.Render(h.out, board); err != nil {
		return game.Position{}, metrics.SearchMetric{}, err
	}
	if state.Status == game.OpponentHasNoWinningMove {
		fmt.Fprintf(h.out, "%s has no forced win from here\n", state.Player())
	}
	fmt.Fprintf(h.out, "%s to move. Enter as `chomp <alpha-col> <num-row>`\n", state.Player())

	alphabet := board.Size().Alphabet
	for {
		fmt.Fprint(h.out, "> ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Position{}, metrics.SearchMetric{}, err
			}
			return game.Position{}, metrics.SearchMetric{}, io.EOF
		}
		move, err := ParseMove(h.in.Text(), alphabet)
		if err != nil {
			fmt.Fprintf(h.out, "%v, try again\n", err)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
