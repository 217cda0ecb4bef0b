package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoPiece     = errors.New("no piece at start square")
	ErrWrongTurn   = errors.New("not that team's turn")
	ErrIllegalMove = errors.New("move is not legal")
)

// MoveError is returned by Game.MakeMove when a move is rejected. The game
// is left untouched. Reason is one of ErrNoPiece, ErrWrongTurn or
// ErrIllegalMove and can be matched with errors.Is.
type MoveError struct {
	Move   Move
	Reason error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %v", e.Move, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Reason
}
