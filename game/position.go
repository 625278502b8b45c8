package game

import (
	"fmt"
	"unicode"

	"chomp/utils"
)

// DefaultLetters labels the columns of a board in the default configuration.
const DefaultLetters = "abcdefghij"

// Position is a square on the board. Column is a 0-based index into the
// board's Alphabet, Row is 1-based.
type Position struct {
	Column int
	Row    int
}

// Poison is the square whose capture ends (and loses) the game.
var Poison = Position{Column: 0, Row: 1}

// Compare orders positions by column, then by row.
func (p Position) Compare(q Position) int {
	switch {
	case p.Column != q.Column:
		return p.Column - q.Column
	default:
		return p.Row - q.Row
	}
}

func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

func (p Position) IsPoison() bool {
	return p == Poison
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Column, p.Row)
}

// Alphabet is the ordered table of column letters. Its length bounds the
// number of columns a board may have.
type Alphabet struct {
	letters []rune
}

// NewAlphabet builds an alphabet from distinct letters.
func NewAlphabet(letters string) (Alphabet, error) {
	runes := []rune(letters)
	if len(runes) == 0 {
		return Alphabet{}, fmt.Errorf("alphabet must have at least one letter: %w", ErrOutOfRange)
	}
	for i, r := range runes {
		r = unicode.ToLower(r)
		if !unicode.IsLetter(r) {
			return Alphabet{}, fmt.Errorf("alphabet symbol %q is not a letter: %w", r, ErrOutOfRange)
		}
		if utils.FindIndex(runes[:i], r) >= 0 {
			return Alphabet{}, fmt.Errorf("alphabet letter %q is repeated: %w", r, ErrOutOfRange)
		}
		runes[i] = r
	}
	return Alphabet{letters: runes}, nil
}

// DefaultAlphabet returns the alphabet built from DefaultLetters.
func DefaultAlphabet() Alphabet {
	a, err := NewAlphabet(DefaultLetters)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Alphabet) Len() int {
	return len(a.letters)
}

// Letter returns the label of a column index.
func (a Alphabet) Letter(column int) (rune, error) {
	if column < 0 || column >= len(a.letters) {
		return 0, fmt.Errorf("column %d outside alphabet of %d letters: %w", column, len(a.letters), ErrOutOfRange)
	}
	return a.letters[column], nil
}

// Index returns the column index of a letter, or -1 if the alphabet does not
// contain it. Matching is case-insensitive.
func (a Alphabet) Index(letter rune) int {
	return utils.FindIndex(a.letters, unicode.ToLower(letter))
}

// Label formats a position as letter and row, e.g. "b3".
func (a Alphabet) Label(p Position) string {
	letter, err := a.Letter(p.Column)
	if err != nil {
		return p.String()
	}
	return fmt.Sprintf("%c%d", letter, p.Row)
}
