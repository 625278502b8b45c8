package searcher

import (
	"testing"

	"chomp/game"

	"github.com/stretchr/testify/require"
)

func mustSize(t *testing.T, rows, columns int) game.BoardSize {
	t.Helper()
	size, err := game.NewBoardSize(rows, columns, game.DefaultAlphabet())
	require.NoError(t, err)
	return size
}

func mustBoard(t *testing.T, size game.BoardSize, positions ...game.Position) *game.Board {
	t.Helper()
	b, err := game.FromPositions(size, positions...)
	require.NoError(t, err)
	return b
}

func pos(column, row int) game.Position {
	return game.Position{Column: column, Row: row}
}

// reachable lists every board reachable from the full rectangle of size.
func reachable(t *testing.T, size game.BoardSize) []*game.Board {
	t.Helper()
	seen := map[string]bool{}
	boards := []*game.Board{}
	frontier := []*game.Board{game.NewBoard(size)}
	for len(frontier) > 0 {
		b := frontier[0]
		frontier = frontier[1:]
		if seen[b.Key()] {
			continue
		}
		seen[b.Key()] = true
		boards = append(boards, b)
		for _, p := range b.Positions() {
			next, err := game.Chomp(b, p)
			require.NoError(t, err)
			frontier = append(frontier, next)
		}
	}
	return boards
}

func TestWinningMoveBaseCases(t *testing.T) {
	size := mustSize(t, 3, 3)

	t.Run("poison square alone has no winning move", func(t *testing.T) {
		_, ok := NewSolver().WinningMove(mustBoard(t, size, game.Poison))
		require.False(t, ok)
	})

	t.Run("empty board has no winning move", func(t *testing.T) {
		_, ok := NewSolver().WinningMove(mustBoard(t, size))
		require.False(t, ok)
	})

	t.Run("poison plus its right neighbour", func(t *testing.T) {
		move, ok := NewSolver().WinningMove(mustBoard(t, size, game.Poison, pos(1, 1)))
		require.True(t, ok)
		require.Equal(t, pos(1, 1), move, "Taking the neighbour leaves only the poison square")
	})

	t.Run("poison plus the square above it", func(t *testing.T) {
		move, ok := NewSolver().WinningMove(mustBoard(t, size, game.Poison, pos(0, 2)))
		require.True(t, ok)
		require.Equal(t, pos(0, 2), move)
	})

	t.Run("symmetric L shape is lost for the mover", func(t *testing.T) {
		b := mustBoard(t, size, game.Poison, pos(0, 2), pos(0, 3), pos(1, 1), pos(2, 1))
		_, ok := NewSolver().WinningMove(b)
		require.False(t, ok)
	})
}

func TestWinningMoveRectangles(t *testing.T) {
	t.Run("2x2 board is won by taking the top right square", func(t *testing.T) {
		move, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, 2, 2)))
		require.True(t, ok)
		require.Equal(t, pos(1, 2), move)
	})

	t.Run("two rows are won by leaving the bottom row one longer", func(t *testing.T) {
		for columns := 2; columns <= 5; columns++ {
			move, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, 2, columns)))
			require.True(t, ok)
			require.Equal(t, pos(columns-1, 2), move, "2x%d", columns)
		}
	})

	t.Run("single row or column is won by leaving only the poison square", func(t *testing.T) {
		for n := 2; n <= 6; n++ {
			move, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, 1, n)))
			require.True(t, ok)
			require.Equal(t, pos(1, 1), move, "1x%d", n)

			move, ok = NewSolver().WinningMove(game.NewBoard(mustSize(t, n, 1)))
			require.True(t, ok)
			require.Equal(t, pos(0, 2), move, "%dx1", n)
		}
	})

	t.Run("3x3 board is won by the square diagonal to the poison", func(t *testing.T) {
		move, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, 3, 3)))
		require.True(t, ok)
		require.Equal(t, pos(1, 2), move)
	})

	t.Run("every rectangle larger than one square is a first player win", func(t *testing.T) {
		for rows := 1; rows <= 3; rows++ {
			for columns := 1; columns <= 4; columns++ {
				if rows*columns == 1 {
					continue
				}
				_, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, rows, columns)))
				require.True(t, ok, "%dx%d", rows, columns)
			}
		}
	})

	t.Run("1x1 board is lost", func(t *testing.T) {
		_, ok := NewSolver().WinningMove(game.NewBoard(mustSize(t, 1, 1)))
		require.False(t, ok)
	})
}

func TestWinningMoveDoesNotModifyBoard(t *testing.T) {
	b := game.NewBoard(mustSize(t, 3, 3))
	before := b.Key()

	NewSolver().WinningMove(b)

	require.Equal(t, before, b.Key())
	require.Equal(t, 9, b.Len())
}

func TestWinningMoveLeavesLosingPosition(t *testing.T) {
	solver := NewSolver(WithCache())
	for _, b := range reachable(t, mustSize(t, 3, 4)) {
		move, ok := solver.WinningMove(b)
		if !ok {
			continue
		}
		require.False(t, move.IsPoison(), "Winning move should never be the poison square")
		next, err := game.Chomp(b, move)
		require.NoError(t, err)
		_, reply := solver.WinningMove(next)
		require.False(t, reply, "After %v on %v the opponent should have no winning move", move, b)
	}
}

func TestCacheKeepsAnswers(t *testing.T) {
	plain := NewSolver()
	cached := NewSolver(WithCache())

	for _, b := range reachable(t, mustSize(t, 3, 4)) {
		wantMove, wantOK := plain.WinningMove(b)
		gotMove, gotOK := cached.WinningMove(b)
		require.Equal(t, wantOK, gotOK, "%v", b)
		require.Equal(t, wantMove, gotMove, "%v", b)
	}
	require.Equal(t, 35, cached.CacheSize(), "Every staircase of a 3x4 board should be cached once")
	require.Zero(t, plain.CacheSize())
}

func TestCacheSharedAcrossBoardSizes(t *testing.T) {
	t.Run("single row and single column do not share an entry", func(t *testing.T) {
		cached := NewSolver(WithCache())

		row := game.NewBoard(mustSize(t, 1, 2))
		move, ok := cached.WinningMove(row)
		require.True(t, ok)
		require.Equal(t, pos(1, 1), move)

		column := game.NewBoard(mustSize(t, 2, 1))
		move, ok = cached.WinningMove(column)
		require.True(t, ok)
		require.Equal(t, pos(0, 2), move)
		require.True(t, column.Contains(move))
	})

	t.Run("one solver answers every size like a fresh one", func(t *testing.T) {
		cached := NewSolver(WithCache())
		for _, dims := range [][2]int{{1, 2}, {2, 1}, {2, 2}, {1, 4}, {4, 1}, {2, 3}, {3, 2}, {3, 3}} {
			for _, b := range reachable(t, mustSize(t, dims[0], dims[1])) {
				wantMove, wantOK := NewSolver().WinningMove(b)
				gotMove, gotOK := cached.WinningMove(b)
				require.Equal(t, wantOK, gotOK, "%v", b)
				require.Equal(t, wantMove, gotMove, "%v", b)
				if gotOK {
					require.True(t, b.Contains(gotMove), "%v is not on %v", gotMove, b)
				}
			}
		}
	})
}

func TestSearchMetrics(t *testing.T) {
	t.Run("counts evaluated positions", func(t *testing.T) {
		solver := NewSolver(WithMetrics())
		b := mustBoard(t, mustSize(t, 1, 2), game.Poison, pos(1, 1))

		move, ok, metric := solver.Search(b)

		require.True(t, ok)
		require.Equal(t, pos(1, 1), move)
		require.Equal(t, 2, metric.Squares)
		require.Equal(t, 2, metric.Nodes, "Root plus the poison-only position")
		require.Zero(t, metric.CacheHits)
		require.False(t, metric.Cached)
		require.True(t, metric.Found)
	})

	t.Run("repeated search hits the cache at the root", func(t *testing.T) {
		solver := NewSolver(WithCache(), WithMetrics())
		b := game.NewBoard(mustSize(t, 2, 3))

		_, _, first := solver.Search(b)
		_, _, second := solver.Search(b)

		require.Greater(t, first.Nodes, 1)
		require.Equal(t, 1, second.Nodes)
		require.Equal(t, 1, second.CacheHits)
		require.True(t, second.Cached)
	})

	t.Run("cache reduces work", func(t *testing.T) {
		b := game.NewBoard(mustSize(t, 3, 4))
		_, _, plain := NewSolver(WithMetrics()).Search(b)
		_, _, cached := NewSolver(WithCache(), WithMetrics()).Search(b)

		require.Less(t, cached.Nodes, plain.Nodes)
		require.Greater(t, cached.CacheHits, 0)
	})
}

func TestSolverPlaysOutFirstPlayerWin(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {2, 3}, {3, 3}, {3, 4}} {
		size := mustSize(t, dims[0], dims[1])
		solver := NewSolver(WithCache())
		board := game.NewBoard(size)
		mover := 0

		for !board.IsEmpty() {
			move, ok := solver.WinningMove(board)
			if mover == 0 {
				require.True(t, ok, "First player should always have a winning move on %v", board)
			} else {
				require.False(t, ok, "Second player should never have a winning move on %v", board)
			}
			if !ok {
				move = board.Positions()[0]
				if board.Len() > 1 {
					move = board.Positions()[1]
				}
			}
			next, err := game.Chomp(board, move)
			require.NoError(t, err)
			require.Less(t, next.Len(), board.Len())
			board = next
			mover = 1 - mover
		}

		require.Equal(t, 0, mover, "%v: second player should take the poison square", size)
	}
}
