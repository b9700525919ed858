package connectfour

import "github.com/kamstrup/intmap"

// Key returns a number unique to the position and the player to move.
//
// Each column takes Rows+1 bits, bottom cell first; the extra bit keeps a full
// column from carrying into the next one. The key is the occupancy mask plus
// the stones of the player to move.
//
// The key is only defined for positions that obey gravity, which every
// position reached through ApplyAction does. Deserialize does not check
// gravity, and marks floating above an empty cell are left out of the key.
func (that *State) Key() uint64 {
	var mask, position uint64

	mine := PlayerToState(that.currentPlayer)
	for col := 0; col < Cols; col++ {
		for row := 0; row < Rows; row++ {
			cell := that.board.CellAt(row, col)
			if cell == Empty {
				break
			}

			bit := uint64(1) << uint(row+col*(Rows+1))
			mask |= bit
			if cell == mine {
				position |= bit
			}
		}
	}

	return position + mask
}

// Perft counts the action sequences of length depth from state. A terminal
// state reached earlier counts as one sequence.
func Perft(state *State, depth int) int {
	if depth == 0 || state.IsTerminal() {
		return 1
	}

	total := 0
	for _, action := range state.LegalActions() {
		player := state.currentPlayer
		state.ApplyAction(action)
		total += Perft(state, depth-1)
		state.UndoAction(player, action)
	}

	return total
}

// DistinctPositions counts the different positions exactly depth plies after
// state. Play stops at terminal positions.
func DistinctPositions(state *State, depth int) int {
	level := []*State{state.Clone()}

	for ply := 0; ply < depth; ply++ {
		seen := intmap.New[uint64, struct{}](len(level) * Cols)
		next := make([]*State, 0, len(level)*Cols)

		for _, parent := range level {
			if parent.IsTerminal() {
				continue
			}

			for _, action := range parent.LegalActions() {
				child := parent.Clone()
				child.ApplyAction(action)

				key := child.Key()
				if _, ok := seen.Get(key); ok {
					continue
				}

				seen.Put(key, struct{}{})
				next = append(next, child)
			}
		}

		level = next
	}

	return len(level)
}
