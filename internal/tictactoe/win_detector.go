package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Winner - returns the index of the first combo in entity.WinCombos fully held by mark.
func Winner(board *entity.Board, mark entity.Mark) (int, bool) {
	for i, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return i, true
		}
	}

	return entity.NoCombo, false
}

// HasWon - reports whether mark completed any line.
func HasWon(board *entity.Board, mark entity.Mark) bool {
	_, ok := Winner(board, mark)
	return ok
}

// IsTie - the board is full and neither player has a line.
func IsTie(board *entity.Board) bool {
	if !board.IsFull() {
		return false
	}

	return !HasWon(board, entity.PlayerX) && !HasWon(board, entity.PlayerO)
}
