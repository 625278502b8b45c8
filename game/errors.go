package game

import "errors"

var (
	// ErrInvalidMove is returned when a move targets a square that is not alive.
	ErrInvalidMove = errors.New("invalid move")
	// ErrOutOfRange is returned when board dimensions or positions fall outside the configured bounds.
	ErrOutOfRange = errors.New("out of range")
	// ErrEmptyBoard is returned by queries that need at least one alive square.
	ErrEmptyBoard = errors.New("empty board")
)
