package game

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// BoardSize is the configuration of the initial rectangle. It is validated
// once by NewBoardSize and never changes during a game.
type BoardSize struct {
	Rows     int
	Columns  int
	Alphabet Alphabet
}

// NewBoardSize validates the dimensions against the alphabet.
func NewBoardSize(rows, columns int, alphabet Alphabet) (BoardSize, error) {
	if rows < 1 {
		return BoardSize{}, fmt.Errorf("rows must be positive, got %d: %w", rows, ErrOutOfRange)
	}
	if columns < 1 {
		return BoardSize{}, fmt.Errorf("columns must be positive, got %d: %w", columns, ErrOutOfRange)
	}
	if columns > alphabet.Len() {
		return BoardSize{}, fmt.Errorf("columns %d exceed the %d supported letters: %w", columns, alphabet.Len(), ErrOutOfRange)
	}
	return BoardSize{Rows: rows, Columns: columns, Alphabet: alphabet}, nil
}

// Squares is the number of squares in the full rectangle.
func (s BoardSize) Squares() int {
	return s.Rows * s.Columns
}

// Contains reports whether p lies inside the initial rectangle.
func (s BoardSize) Contains(p Position) bool {
	return p.Column >= 0 && p.Column < s.Columns && p.Row >= 1 && p.Row <= s.Rows
}

func (s BoardSize) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Columns)
}

// Board is the set of squares still alive. A Board is never modified after
// construction: Chomp and the other operations return new boards, so a board
// can be shared between any number of search branches.
type Board struct {
	size  BoardSize
	alive map[Position]struct{}
}

// NewBoard returns the full rectangle for size.
func NewBoard(size BoardSize) *Board {
	b := &Board{
		size:  size,
		alive: make(map[Position]struct{}, size.Squares()),
	}
	for c := 0; c < size.Columns; c++ {
		for r := 1; r <= size.Rows; r++ {
			b.alive[Position{Column: c, Row: r}] = struct{}{}
		}
	}
	return b
}

// New validates the dimensions and returns the full rectangle.
func New(rows, columns int, alphabet Alphabet) (*Board, error) {
	size, err := NewBoardSize(rows, columns, alphabet)
	if err != nil {
		return nil, err
	}
	return NewBoard(size), nil
}

// FromPositions builds a board holding exactly the given squares.
func FromPositions(size BoardSize, positions ...Position) (*Board, error) {
	b := &Board{
		size:  size,
		alive: make(map[Position]struct{}, len(positions)),
	}
	for _, p := range positions {
		if !size.Contains(p) {
			return nil, fmt.Errorf("position %v outside %v board: %w", p, size, ErrOutOfRange)
		}
		b.alive[p] = struct{}{}
	}
	return b, nil
}

func (b *Board) Size() BoardSize {
	return b.size
}

func (b *Board) Contains(p Position) bool {
	_, ok := b.alive[p]
	return ok
}

func (b *Board) Len() int {
	return len(b.alive)
}

func (b *Board) IsEmpty() bool {
	return len(b.alive) == 0
}

// Positions returns the alive squares in canonical order.
func (b *Board) Positions() []Position {
	positions := make([]Position, 0, len(b.alive))
	for p := range b.alive {
		positions = append(positions, p)
	}
	slices.SortFunc(positions, Position.Compare)
	return positions
}

func (b *Board) MinRow() (int, error) {
	return b.extreme(func(p Position) int { return p.Row }, false)
}

func (b *Board) MaxRow() (int, error) {
	return b.extreme(func(p Position) int { return p.Row }, true)
}

func (b *Board) MinColumn() (int, error) {
	return b.extreme(func(p Position) int { return p.Column }, false)
}

func (b *Board) MaxColumn() (int, error) {
	return b.extreme(func(p Position) int { return p.Column }, true)
}

func (b *Board) extreme(coord func(Position) int, largest bool) (int, error) {
	if b.IsEmpty() {
		return 0, ErrEmptyBoard
	}
	first := true
	result := 0
	for p := range b.alive {
		v := coord(p)
		if first || (largest && v > result) || (!largest && v < result) {
			result = v
			first = false
		}
	}
	return result, nil
}

// Equal reports whether both boards have the same size and alive squares.
func (b *Board) Equal(other *Board) bool {
	if b.size.Rows != other.size.Rows || b.size.Columns != other.size.Columns {
		return false
	}
	if len(b.alive) != len(other.alive) {
		return false
	}
	for p := range b.alive {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Key is an exact encoding of the board: its dimensions followed by one bit
// per square of the initial rectangle, column-major. Boards of different
// sizes never share a key.
func (b *Board) Key() string {
	bits := make([]byte, (b.size.Squares()+7)/8)
	for p := range b.alive {
		i := p.Column*b.size.Rows + (p.Row - 1)
		bits[i/8] |= 1 << (i % 8)
	}
	return b.size.String() + ":" + string(bits)
}

// Hash summarises the alive set. Unlike Key it may collide.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(b.Key()))
	return StateHash(hasher.Sum64())
}

// IsStaircase reports whether the alive set is closed downward and leftward
// inside the initial rectangle, the shape every reachable position has.
func (b *Board) IsStaircase() bool {
	for p := range b.alive {
		for c := 0; c <= p.Column; c++ {
			for r := 1; r <= p.Row; r++ {
				if !b.Contains(Position{Column: c, Row: r}) {
					return false
				}
			}
		}
	}
	return true
}

// Label formats p with the board's column letters.
func (b *Board) Label(p Position) string {
	return b.size.Alphabet.Label(p)
}

func (b *Board) String() string {
	labels := make([]string, 0, len(b.alive))
	for _, p := range b.Positions() {
		labels = append(labels, b.Label(p))
	}
	return fmt.Sprintf("%v%v", b.size, labels)
}

func (b *Board) without(removed func(Position) bool) *Board {
	next := &Board{
		size:  b.size,
		alive: make(map[Position]struct{}, len(b.alive)),
	}
	for p := range b.alive {
		if !removed(p) {
			next.alive[p] = struct{}{}
		}
	}
	return next
}
