package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "x"
	PlayerO   = "o"
	PlayerTie = "-"
)

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrInvalidPlayer = errors.New("invalid player")
)

// Game is a stored match: an identifier and the position it has reached.
type Game struct {
	ID    string
	State *connectfour.State
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		State: connectfour.NewState(),
	}
}

func (that *Game) Status() string {
	if that.State.IsTerminal() {
		return StatusFinished
	}

	return StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status() == StatusFinished
}

// Winner - returns the winning mark, PlayerTie for a full board, or "" while the game goes on.
func (that *Game) Winner() string {
	switch {
	case that.State.HasLine(0):
		return PlayerX
	case that.State.HasLine(1):
		return PlayerO
	case that.State.IsFull():
		return PlayerTie
	default:
		return ""
	}
}

// Turn returns the player to move or connectfour.TerminalPlayer.
func (that *Game) Turn() int {
	return that.State.CurrentPlayer()
}

// MakeTurn checks the move and applies it. Nothing changes when an error is returned.
func (that *Game) MakeTurn(player, column int) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if column < 0 || column >= connectfour.Cols {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, column)
	}

	if that.State.CurrentPlayer() != player {
		return apperror.ErrNotYourTurn
	}

	board := that.State.Board()
	if board.CellAt(connectfour.Rows-1, column) != connectfour.Empty {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	that.State.ApplyAction(column)

	return nil
}

// UndoTurn takes back player's mark from the top of column. Only the most
// recent drop can be taken back.
func (that *Game) UndoTurn(player, column int) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	if column < 0 || column >= connectfour.Cols {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, column)
	}

	moves := that.State.MoveNumber()
	if moves == 0 {
		return apperror.ErrNothingToUndo
	}

	// x moves on odd move numbers
	if lastMover := (moves + 1) % 2; player != lastMover {
		return apperror.ErrNotYourTurn
	}

	// games loaded from text carry no history
	if history := that.State.History(); len(history) > 0 && history[len(history)-1] != column {
		return fmt.Errorf("%w: last drop was in column %d", apperror.ErrNothingToUndo, history[len(history)-1])
	}

	board := that.State.Board()

	row := connectfour.Rows - 1
	for row >= 0 && board.CellAt(row, column) == connectfour.Empty {
		row--
	}

	if row < 0 || board.CellAt(row, column) != connectfour.PlayerToState(player) {
		return fmt.Errorf("%w: column %d", apperror.ErrNothingToUndo, column)
	}

	that.State.UndoAction(player, column)

	return nil
}

func validatePlayer(player int) error {
	if player < 0 || player >= connectfour.NumPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	return nil
}
