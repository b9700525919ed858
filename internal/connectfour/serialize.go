package connectfour

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDocument = errors.New("invalid state document")

	ErrMarkCount     = fmt.Errorf("%w: mark counts do not match any turn", ErrInvalidDocument)
	ErrIncorrectRows = fmt.Errorf("%w: incorrect rows", ErrInvalidDocument)
	ErrIncompleteRow = fmt.Errorf("%w: last row is incomplete", ErrInvalidDocument)
)

// Serialize - returns the canonical text form of the state.
func Serialize(state *State) string {
	return state.String()
}

// Deserialize rebuilds a state from its canonical text form. Characters other
// than '.', 'x' and 'o' are skipped, so the row newlines are optional. The
// player to move follows from the mark counts; the history starts empty.
func Deserialize(text string) (*State, error) {
	state := NewState()

	xs, os := 0, 0
	row, col := Rows-1, 0

	for _, ch := range text {
		var cell CellState

		switch ch {
		case '.':
			cell = Empty
		case 'x':
			cell = Cross
			xs++
		case 'o':
			cell = Nought
			os++
		default:
			continue
		}

		if row < 0 {
			return nil, fmt.Errorf("%w: more than %d cells", ErrIncorrectRows, NumCells)
		}

		state.board.SetCell(row, col, cell)

		col++
		if col >= Cols {
			row--
			col = 0
		}
	}

	switch xs {
	case os:
		state.currentPlayer = 0
	case os + 1:
		state.currentPlayer = 1
	default:
		return nil, fmt.Errorf("%w: x=%d o=%d", ErrMarkCount, xs, os)
	}

	if col != 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrIncompleteRow, col)
	}

	if row != -1 {
		return nil, fmt.Errorf("%w: %d rows missing", ErrIncorrectRows, row+1)
	}

	return state, nil
}
