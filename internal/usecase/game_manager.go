package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// aiMark - the AI always plays O, the human X moves first.
const aiMark = entity.PlayerO

type eventSink interface {
	Publish(ctx context.Context, event entity.Event) error
}

type searcher interface {
	BestMove(board entity.Board, toMove entity.Mark) tictactoe.SearchResult
}

// GameManager - drives one game session: turn order, mode, score tally and events.
// It is not safe for concurrent use.
type GameManager struct {
	logger   *slog.Logger
	searcher searcher
	sinks    []eventSink

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, mode entity.Mode, sinks ...eventSink) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		searcher: tictactoe.NewSearcher(aiMark),
		sinks:    sinks,

		game: entity.NewGame(mode),
	}
}

// Subscribe - adds a sink that receives every following event.
func (that *GameManager) Subscribe(sink eventSink) {
	that.sinks = append(that.sinks, sink)
}

// Snapshot - returns a copy of the current game.
func (that *GameManager) Snapshot() entity.Game {
	return *that.game
}

// CellActivated - plays the awaited mark on cell. Invalid requests are ignored and reported as false.
func (that *GameManager) CellActivated(ctx context.Context, cell int) bool {
	log := that.logger.With("method", "CellActivated", "cell", cell)

	if err := that.validateMove(cell); err != nil {
		log.Debug("move ignored", "reason", err)
		return false
	}

	mark := that.game.Turn
	if that.turn(ctx, mark, cell) {
		return true
	}

	if that.game.Mode == entity.ModePlayer {
		that.game.Turn = mark.Opponent()
		return true
	}

	result := that.searcher.BestMove(that.game.Board, aiMark)
	if result.Cell == tictactoe.NoCell {
		log.Error("search found no move on an open board", "board", that.game.Board.String())
		return true
	}

	log.Debug("ai move", "ai_cell", result.Cell, "score", result.Score)
	that.turn(ctx, aiMark, result.Cell)

	return true
}

// Reset - starts a new game. Scores are kept.
func (that *GameManager) Reset(ctx context.Context) {
	score := that.game.Score
	mode := that.game.Mode

	that.game = entity.NewGame(mode)
	that.game.Score = score

	that.emit(ctx, entity.GameReset(mode))
	that.emit(ctx, entity.ScoreChanged(score, that.game.ScoreVisible()))
}

// ChangeMode - switches between AI and two-player mode and starts a new game.
func (that *GameManager) ChangeMode(ctx context.Context, mode entity.Mode) error {
	if mode != entity.ModeAI && mode != entity.ModePlayer {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	that.logger.Info("mode changed", "from", that.game.Mode, "to", mode)

	that.game.Mode = mode
	that.Reset(ctx)

	return nil
}

func (that *GameManager) ToggleMode(ctx context.Context) {
	// toggling always yields a known mode
	_ = that.ChangeMode(ctx, that.game.Mode.Toggle())
}

// validateMove - checks if the move can be played.
func (that *GameManager) validateMove(cell int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return apperror.ErrInvalidCell
	}

	if !that.game.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// turn - applies the move and settles a finished game. Returns true when the game is over.
func (that *GameManager) turn(ctx context.Context, mark entity.Mark, cell int) bool {
	move := entity.Move{Cell: cell, Mark: mark}
	that.game.Board.Apply(move)
	that.emit(ctx, entity.CellFilled(move))

	if combo, ok := tictactoe.Winner(&that.game.Board, mark); ok {
		that.game.Status = entity.StatusWon
		that.game.Winner = mark
		that.game.Combo = combo
		that.game.Turn = entity.EmptyCell

		if mark == entity.PlayerX {
			that.game.Score.XWins++
		} else {
			that.game.Score.OWins++
		}

		that.logger.Info("game won", "mark", mark, "combo", combo, "board", that.game.Board.String())
		that.emit(ctx, entity.GameWon(mark, combo))
		that.emit(ctx, entity.ScoreChanged(that.game.Score, that.game.ScoreVisible()))

		return true
	}

	if tictactoe.IsTie(&that.game.Board) {
		that.game.Status = entity.StatusTied
		that.game.Turn = entity.EmptyCell
		that.game.Score.Ties++

		that.logger.Info("game tied", "board", that.game.Board.String())
		that.emit(ctx, entity.GameTied())
		that.emit(ctx, entity.ScoreChanged(that.game.Score, that.game.ScoreVisible()))

		return true
	}

	return false
}

func (that *GameManager) emit(ctx context.Context, event entity.Event) {
	for _, sink := range that.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			that.logger.Error("failed to publish event", "event", event.Kind, "error", err)
		}
	}
}
