// meta/meta.go
package meta

// DEFAULT_ROWS and DEFAULT_COLUMNS size the board when no flags are given.
const DEFAULT_ROWS = 4
const DEFAULT_COLUMNS = 5

// MAX_SQUARES caps the board for the plain solver, whose running time grows
// exponentially with the number of squares.
const MAX_SQUARES = 20

// MAX_CACHED_SQUARES caps the board when the solver caches positions.
const MAX_CACHED_SQUARES = 100

// MaxRetries bounds how often an agent may propose a rejected move in a row.
const MaxRetries = 5

// FIRST_PLAYER moves first, SECOND_PLAYER replies.
const FIRST_PLAYER = "Player1"
const SECOND_PLAYER = "Player2"

// SquareLimit returns the largest board the solver may be given.
func SquareLimit(cached bool) int {
	if cached {
		return MAX_CACHED_SQUARES
	}
	return MAX_SQUARES
}
