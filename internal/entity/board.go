package entity

import (
	"iter"
	"strings"
)

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// BoardSize - number of cells on the board.
const BoardSize = 9

// WinCombos - the 8 winning lines: rows, then columns, then diagonals.
// The order is significant, callers report the index of the first match.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

type Board [BoardSize]Mark

// Cells - returns the cells in index order.
func (that *Board) Cells() [BoardSize]Mark {
	return *that
}

// EmptyCells - yields the indices of empty cells in ascending order.
func (that *Board) EmptyCells() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, cell := range that {
			if cell != EmptyCell {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Apply - places the move's mark. The target cell must be empty, the caller checks it.
func (that *Board) Apply(move Move) {
	that[move.Cell] = move.Mark
}

// Clear - empties a cell again.
func (that *Board) Clear(cell int) {
	that[cell] = EmptyCell
}

func (that *Board) IsFull() bool {
	for range that.EmptyCells() {
		return false
	}

	return true
}

func (that *Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

func (that *Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
