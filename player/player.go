package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"chomp/experiments/metrics"
	"chomp/game"
)

// ErrBadInput is returned when a typed move cannot be parsed.
var ErrBadInput = errors.New("bad input")

// Agent chooses moves for one side of a game.
type Agent interface {
	// FindMove returns the move to play for state.Player() and the search
	// metrics, if any were collected.
	FindMove(state *game.GameState) (game.Position, metrics.SearchMetric, error)
}

// ParseMove reads a move typed as `chomp <alpha-col> <num-row>`. The keyword
// and all spaces are optional and letters are case-insensitive, so "chomp b 3",
// "b3" and "B 3" are the same move. Whether the square is still alive is not
// checked here.
func ParseMove(input string, alphabet game.Alphabet) (game.Position, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	text = strings.TrimPrefix(text, "chomp")
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if text == "" {
		return game.Position{}, fmt.Errorf("empty move: %w", ErrBadInput)
	}

	letter, width := utf8.DecodeRuneInString(text)
	column := alphabet.Index(letter)
	if column < 0 {
		return game.Position{}, fmt.Errorf("unknown column %q: %w", letter, ErrBadInput)
	}
	row, err := strconv.Atoi(text[width:])
	if err != nil || row < 1 {
		return game.Position{}, fmt.Errorf("row must be a positive number, got %q: %w", text[width:], ErrBadInput)
	}
	return game.Position{Column: column, Row: row}, nil
}
