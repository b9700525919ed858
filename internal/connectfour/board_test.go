package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_CellAt(t *testing.T) {
	t.Run("Empty board has only empty cells", func(t *testing.T) {
		// Given: a zero board
		var board Board

		// Then: every cell should be empty
		for row := 0; row < Rows; row++ {
			for col := 0; col < Cols; col++ {
				assert.Equal(t, Empty, board.CellAt(row, col))
			}
		}
	})

	t.Run("SetCell writes only the addressed cell", func(t *testing.T) {
		// Given: a zero board
		var board Board

		// When: writing the top right cell
		board.SetCell(Rows-1, Cols-1, Nought)

		// Then: the cell reads back and is the last flat index
		assert.Equal(t, Nought, board.CellAt(Rows-1, Cols-1))
		assert.Equal(t, Nought, board[NumCells-1])
		assert.Equal(t, Empty, board.CellAt(0, 0))
	})

	t.Run("Rows are stored bottom up", func(t *testing.T) {
		// Given: a board with a mark in row 1, column 0
		var board Board
		board.SetCell(1, 0, Cross)

		// Then: it sits right after the bottom row
		assert.Equal(t, Cross, board[Cols])
	})
}

func TestBoard_lowestEmpty(t *testing.T) {
	// Given: a board where column 2 holds two marks and column 6 is full
	var board Board
	board.SetCell(0, 2, Cross)
	board.SetCell(1, 2, Nought)
	for row := 0; row < Rows; row++ {
		board.SetCell(row, 6, Cross)
	}

	// Then: drops land on the first free row or report a full column
	assert.Equal(t, 0, board.lowestEmpty(0))
	assert.Equal(t, 2, board.lowestEmpty(2))
	assert.Equal(t, Rows, board.lowestEmpty(6))
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, ".", Empty.String())
	assert.Equal(t, "o", Nought.String())
	assert.Equal(t, "x", Cross.String())

	require.Panics(t, func() {
		_ = CellState(7).String()
	})
}

func TestPlayerToState(t *testing.T) {
	assert.Equal(t, Cross, PlayerToState(0))
	assert.Equal(t, Nought, PlayerToState(1))

	require.Panics(t, func() { PlayerToState(2) })
	require.Panics(t, func() { PlayerToState(TerminalPlayer) })
}
