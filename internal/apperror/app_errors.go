package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrColumnFull    = errors.New("column is full")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrGameNotFound  = errors.New("game not found")
)
