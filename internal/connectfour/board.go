package connectfour

import "fmt"

const (
	Rows       = 6
	Cols       = 7
	NumCells   = Rows * Cols
	CellStates = 3
	NumPlayers = 2

	// TerminalPlayer is returned by CurrentPlayer once nobody is to move.
	TerminalPlayer = -4
)

type CellState int8

// The order is part of the tensor encoding.
const (
	Empty CellState = iota
	Nought
	Cross
)

// String - returns the canonical character of the cell.
func (that CellState) String() string {
	switch that {
	case Empty:
		return "."
	case Nought:
		return "o"
	case Cross:
		return "x"
	default:
		panic(fmt.Sprintf("unknown cell state %d", int8(that)))
	}
}

// PlayerToState - returns the mark placed by player.
func PlayerToState(player int) CellState {
	switch player {
	case 0:
		return Cross
	case 1:
		return Nought
	default:
		panic(fmt.Sprintf("invalid player id %d", player))
	}
}

// Board holds the cells row by row, row 0 at the bottom.
// Callers keep 0 <= row < Rows and 0 <= col < Cols.
type Board [NumCells]CellState

func index(row, col int) int {
	return row*Cols + col
}

func (that *Board) CellAt(row, col int) CellState {
	return that[index(row, col)]
}

func (that *Board) SetCell(row, col int, state CellState) {
	that[index(row, col)] = state
}

// lowestEmpty returns the row a mark dropped into col lands on, or Rows if col is full.
func (that *Board) lowestEmpty(col int) int {
	row := 0
	for row < Rows && that.CellAt(row, col) != Empty {
		row++
	}

	return row
}
