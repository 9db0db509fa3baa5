package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoCell - the cell of a search result taken on a finished board.
const NoCell = -1

const (
	ScoreWin  = 10
	ScoreLoss = -10
	ScoreDraw = 0
)

type SearchResult struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// Searcher - full-depth minimax without pruning. Scores are seen from the AI side:
// a finished line of the AI is worth ScoreWin, of the human ScoreLoss.
type Searcher struct {
	AI    entity.Mark
	Human entity.Mark
}

func NewSearcher(ai entity.Mark) *Searcher {
	return &Searcher{
		AI:    ai,
		Human: ai.Opponent(),
	}
}

// BestMove - returns the optimal move for toMove. The caller's board is not modified.
//
// Among equally scored moves the lowest cell wins, the choice of the AI depends on it.
func (that *Searcher) BestMove(board entity.Board, toMove entity.Mark) SearchResult {
	return that.minimax(&board, toMove)
}

func (that *Searcher) minimax(board *entity.Board, toMove entity.Mark) SearchResult {
	switch {
	case HasWon(board, that.Human):
		return SearchResult{Cell: NoCell, Score: ScoreLoss}
	case HasWon(board, that.AI):
		return SearchResult{Cell: NoCell, Score: ScoreWin}
	case board.IsFull():
		return SearchResult{Cell: NoCell, Score: ScoreDraw}
	}

	maximizing := toMove == that.AI

	best := SearchResult{Cell: NoCell, Score: math.MinInt}
	if !maximizing {
		best.Score = math.MaxInt
	}

	for cell := range board.EmptyCells() {
		board.Apply(entity.Move{Cell: cell, Mark: toMove})
		child := that.minimax(board, toMove.Opponent())
		board.Clear(cell)

		if (maximizing && child.Score > best.Score) || (!maximizing && child.Score < best.Score) {
			best = SearchResult{Cell: cell, Score: child.Score}
		}
	}

	return best
}
