package connectfour

import (
	"fmt"
	"strconv"
	"strings"
)

// lineLength is the number of consecutive marks that wins.
const lineLength = 4

// directions are the canonical line orientations scanned from every cell:
// horizontal, diagonal down-left, vertical down, diagonal down-right.
var directions = [4][2]int{
	{0, 1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

// State is a position of the game together with the player to move and the
// actions applied so far. A State is not safe for concurrent mutation; use
// Clone to hand a position to another goroutine.
type State struct {
	board         Board
	currentPlayer int
	history       []int
}

// NewState - returns the empty board with player 0 to move.
func NewState() *State {
	return &State{}
}

// Board returns a copy of the cells.
func (that *State) Board() Board {
	return that.board
}

// History returns a copy of the applied actions, oldest first.
func (that *State) History() []int {
	history := make([]int, len(that.history))
	copy(history, that.history)

	return history
}

// MoveNumber returns the number of marks on the board.
func (that *State) MoveNumber() int {
	marks := 0
	for _, cell := range that.board {
		if cell != Empty {
			marks++
		}
	}

	return marks
}

func (that *State) CurrentPlayer() int {
	if that.IsTerminal() {
		return TerminalPlayer
	}

	return that.currentPlayer
}

// LegalActions - returns the columns that are not full, in ascending order.
func (that *State) LegalActions() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if that.board.CellAt(Rows-1, col) == Empty {
			moves = append(moves, col)
		}
	}

	return moves
}

// ApplyAction drops the current player's mark into column and passes the turn.
// The column must be legal: a full or unknown column panics before anything changes.
func (that *State) ApplyAction(column int) {
	if column < 0 || column >= Cols {
		panic(fmt.Sprintf("action %d is not a column", column))
	}

	row := that.board.lowestEmpty(column)
	if row == Rows {
		panic(fmt.Sprintf("column %d is full", column))
	}

	that.board.SetCell(row, column, PlayerToState(that.currentPlayer))
	that.currentPlayer = 1 - that.currentPlayer
	that.history = append(that.history, column)
}

// UndoAction takes back the last mark dropped into column by player and gives
// player the turn again. Only the most recent action may be undone.
func (that *State) UndoAction(player, column int) {
	if column < 0 || column >= Cols {
		panic(fmt.Sprintf("action %d is not a column", column))
	}

	if n := len(that.history); n > 0 && that.history[n-1] != column {
		panic(fmt.Sprintf("last action was column %d, not %d", that.history[n-1], column))
	}

	row := that.board.lowestEmpty(column) - 1
	if row < 0 {
		panic(fmt.Sprintf("column %d has nothing to undo", column))
	}

	if that.board.CellAt(row, column) != PlayerToState(player) {
		panic(fmt.Sprintf("top of column %d does not belong to player %d", column, player))
	}

	that.board.SetCell(row, column, Empty)
	that.currentPlayer = player

	if len(that.history) > 0 {
		that.history = that.history[:len(that.history)-1]
	}
}

func (that *State) IsTerminal() bool {
	return that.HasLine(0) || that.HasLine(1) || that.IsFull()
}

// Returns - payoff per player; zero for draws and unfinished games.
func (that *State) Returns() []float64 {
	switch {
	case that.HasLine(0):
		return []float64{1.0, -1.0}
	case that.HasLine(1):
		return []float64{-1.0, 1.0}
	default:
		return []float64{0.0, 0.0}
	}
}

// HasLine reports whether player owns four consecutive cells in any direction.
func (that *State) HasLine(player int) bool {
	mark := PlayerToState(player)

	for col := 0; col < Cols; col++ {
		for row := 0; row < Rows; row++ {
			if that.board.CellAt(row, col) == mark && that.hasLineFrom(player, row, col) {
				return true
			}
		}
	}

	return false
}

func (that *State) hasLineFrom(player, row, col int) bool {
	for _, dir := range directions {
		if that.HasLineFromInDirection(player, row, col, dir[0], dir[1]) {
			return true
		}
	}

	return false
}

// HasLineFromInDirection reports whether the four cells starting at (row, col)
// and stepping by (drow, dcol) all belong to player.
func (that *State) HasLineFromInDirection(player, row, col, drow, dcol int) bool {
	lastRow := row + (lineLength-1)*drow
	lastCol := col + (lineLength-1)*dcol
	if lastRow < 0 || lastRow >= Rows || lastCol < 0 || lastCol >= Cols {
		return false
	}

	mark := PlayerToState(player)
	for i := 0; i < lineLength; i++ {
		if that.board.CellAt(row, col) != mark {
			return false
		}
		row += drow
		col += dcol
	}

	return true
}

// IsFull relies on gravity: a column is full once its top cell is taken.
func (that *State) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if that.board.CellAt(Rows-1, col) == Empty {
			return false
		}
	}

	return true
}

// Clone returns a copy that shares no memory with the original.
func (that *State) Clone() *State {
	clone := &State{
		board:         that.board,
		currentPlayer: that.currentPlayer,
	}
	if that.history != nil {
		clone.history = that.History()
	}

	return clone
}

// ActionToString - e.g. "x3" for player 0 dropping into column 3.
func (that *State) ActionToString(player, action int) string {
	return PlayerToState(player).String() + strconv.Itoa(action)
}

// String renders the board top row first, one line per row.
func (that *State) String() string {
	var sb strings.Builder
	sb.Grow(NumCells + Rows)

	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Cols; col++ {
			sb.WriteString(that.board.CellAt(row, col).String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// InformationState is the full board; the game has no hidden information.
func (that *State) InformationState(player int) string {
	checkPlayer(player)

	return that.String()
}

// InformationStateTensor one-hot encodes every cell: the value at
// NumCells*state + cell is 1 for the state the cell is in.
func (that *State) InformationStateTensor(player int) []float64 {
	checkPlayer(player)

	values := make([]float64, NumCells*CellStates)
	for cell, state := range that.board {
		values[NumCells*int(state)+cell] = 1.0
	}

	return values
}

func checkPlayer(player int) {
	if player < 0 || player >= NumPlayers {
		panic(fmt.Sprintf("player %d out of range [0, %d)", player, NumPlayers))
	}
}
